package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alorle/iptv-catalog/catalog"
	"github.com/alorle/iptv-catalog/classify"
	"github.com/alorle/iptv-catalog/config"
	"github.com/alorle/iptv-catalog/liveness"
	"github.com/alorle/iptv-catalog/logging"
	"github.com/alorle/iptv-catalog/pipeline"
	"github.com/alorle/iptv-catalog/rules"
)

func main() {
	inputPath := flag.String("input", "-", "catalog JSON file to process ('-' for stdin)")
	live := flag.Bool("live", false, "treat the batch as a live collection (enables de-duplication)")
	categories := flag.Bool("categories", false, "treat the batch as categories (name tiebreak, category favorites)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger := logging.New(logging.ParseLogLevel(cfg.LogLevel), "[iptv-catalog]")

	ruleSet, err := rules.Load(cfg.RulesFile)
	if err != nil {
		log.Fatalf("Failed to load rules from %s: %v", cfg.RulesFile, err)
	}
	logger.LogRuleSetLoaded(cfg.RulesFile, !fileExists(cfg.RulesFile))

	records, err := readRecords(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read catalog: %v", err)
	}

	modes := pipeline.NewModeSet()
	for _, name := range cfg.Modes {
		mode, err := pipeline.ParseMode(name)
		if err != nil {
			log.Fatalf("Configuration error: %v", err)
		}
		modes[mode] = struct{}{}
	}

	favorites := catalog.Favorites{
		LiveCategories: catalog.NewIDSet(cfg.Favorites.LiveCategories...),
		LiveStreams:    catalog.NewIDSet(cfg.Favorites.LiveStreams...),
		VODCategories:  catalog.NewIDSet(cfg.Favorites.VODCategories...),
		VODStreams:     catalog.NewIDSet(cfg.Favorites.VODStreams...),
	}

	resolver, err := liveness.NewResolver(cfg.DisplayTimezone)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	resolver.OvertimeBuffer = cfg.Liveness.OvertimeBuffer
	resolver.FallbackWindow = cfg.Liveness.FallbackWindow

	classifier := classify.New(ruleSet)
	pipe := pipeline.New(classifier, ruleSet, resolver, logger, cfg.Workers)

	processed := pipe.Process(records, pipeline.Options{
		Modes:       modes,
		Favorites:   favorites.ForCollection(*live, *categories),
		Live:        *live,
		Categories:  *categories,
		AccountName: cfg.AccountName,
	})

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(processed); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

// readRecords decodes a provider catalog JSON array from a file or stdin.
func readRecords(path string) ([]catalog.Record, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var records []catalog.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode catalog JSON: %w", err)
	}
	return records, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
