package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/lexis/pkg/lexis"
	"github.com/cognicore/lexis/pkg/lexis/config"
	"github.com/cognicore/lexis/pkg/lexis/internalerr"
)

func main() {
	var (
		configPath = flag.String("config", "", "Optional: YAML configuration file")
		sourcePath = flag.String("source", "", "Path to the source text (overrides config)")
		topN       = flag.Int("top", 0, "Number of most frequent words to report (overrides config)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if *sourcePath != "" {
		cfg.SourcePath = *sourcePath
	}
	if *topN > 0 {
		cfg.TopN = *topN
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	analyzer := lexis.New(lexis.Options{TopN: cfg.TopN})

	rep, err := analyzer.AnalyzeFile(cfg.SourcePath)
	if err != nil {
		if errors.Is(err, internalerr.ErrSourceUnavailable) {
			fmt.Fprintf(os.Stderr, "lexis: cannot read %s: file not found or unreadable\n", cfg.SourcePath)
			os.Exit(1)
		}
		log.Fatalf("analyze: %v", err)
	}

	fmt.Print(rep.Render())
}
