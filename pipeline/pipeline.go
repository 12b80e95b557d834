package pipeline

import (
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alorle/iptv-catalog/catalog"
	"github.com/alorle/iptv-catalog/classify"
	"github.com/alorle/iptv-catalog/liveness"
	"github.com/alorle/iptv-catalog/logging"
	"github.com/alorle/iptv-catalog/metrics"
	"github.com/alorle/iptv-catalog/rules"
)

// AllPseudoID is the identifier of the synthetic "ALL" pseudo-category
// the rendering layer injects. It is always retained and always sorts
// first, regardless of filters and favorites.
const AllPseudoID = "ALL"

// Options configure a single pipeline run.
type Options struct {
	Modes       ModeSet
	Favorites   catalog.IDSet
	Live        bool
	Categories  bool
	AccountName string
}

// Pipeline applies configurable processing modes and favorite-based
// ordering across large record collections. All stages are deterministic
// given identical inputs.
type Pipeline struct {
	classifier *classify.Classifier
	rules      rules.Interface
	resolver   *liveness.Resolver
	logger     *logging.Logger
	workers    int
	now        func() time.Time
}

// New creates a Pipeline. A nil rule set uses built-in defaults, a nil
// resolver uses UTC with default boundaries; workers <= 0 uses one worker
// per CPU.
func New(classifier *classify.Classifier, r rules.Interface, resolver *liveness.Resolver, logger *logging.Logger, workers int) *Pipeline {
	if r == nil {
		r = rules.Defaults()
	}
	if resolver == nil {
		resolver, _ = liveness.NewResolver("")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = logging.New(logging.INFO, "[pipeline]")
	}
	return &Pipeline{
		classifier: classifier,
		rules:      r,
		resolver:   resolver,
		logger:     logger,
		workers:    workers,
		now:        time.Now,
	}
}

// Process filters, enriches and sorts a record batch in three ordered
// stages. Enrichment fields are written onto the surviving records; the
// returned slice is the filtered, sorted view.
func (p *Pipeline) Process(records []catalog.Record, opts Options) []catalog.Record {
	runID := uuid.NewString()
	started := time.Now()

	collection := collectionLabel(opts)
	metrics.RecordProcessed(collection, len(records))
	p.logger.LogRunStarted(runID, len(records), opts.Modes.Names())

	// Classification of each record is independent, so it fans out to a
	// bounded worker pool. Each worker writes only its own slots, so the
	// result is deterministic.
	parsed := p.classifyAll(records)

	kept, keptParsed := p.filter(records, parsed, opts)

	if opts.Live && !opts.Categories {
		kept, keptParsed = dedupe(kept, keptParsed)
	}

	p.enrich(kept, keptParsed, opts)
	p.sort(kept, opts)

	metrics.ObservePipelineDuration(time.Since(started).Seconds())
	p.logger.LogRunFinished(runID, len(kept), len(records)-len(kept), time.Since(started))

	return kept
}

// classifyAll runs the name classifier over every record in parallel.
func (p *Pipeline) classifyAll(records []catalog.Record) []classify.ParsedContent {
	parsed := make([]classify.ParsedContent, len(records))
	if len(records) == 0 {
		return parsed
	}

	workers := p.workers
	if workers > len(records) {
		workers = len(records)
	}

	var wg sync.WaitGroup
	indexes := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				parsed[i] = p.classifier.Classify(records[i].Name)
			}
		}()
	}

	for i := range records {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return parsed
}

// filter keeps records passing the conjunction of all active modes'
// predicates. The "ALL" pseudo-record is always retained.
func (p *Pipeline) filter(records []catalog.Record, parsed []classify.ParsedContent, opts Options) ([]catalog.Record, []classify.ParsedContent) {
	kept := make([]catalog.Record, 0, len(records))
	keptParsed := make([]classify.ParsedContent, 0, len(records))

	for i := range records {
		if isAllPseudo(&records[i]) || p.keep(&records[i], &parsed[i], opts) {
			kept = append(kept, records[i])
			keptParsed = append(keptParsed, parsed[i])
		}
	}
	return kept, keptParsed
}

// keep evaluates the AND of the active mode predicates for one record.
func (p *Pipeline) keep(rec *catalog.Record, parsed *classify.ParsedContent, opts Options) bool {
	if opts.Modes.Has(ModeMerica) {
		switch p.rules.AccountEffect(opts.AccountName, rec.Name) {
		case rules.EffectExclude:
			metrics.RecordFiltered(ModeMerica.String())
			return false
		case rules.EffectInclude:
			// Forced in; skip the domestic check.
		default:
			if parsed.IsForeign() {
				metrics.RecordFiltered(ModeMerica.String())
				return false
			}
		}
	}

	if opts.Modes.Has(ModeSports) {
		if parsed.SportsEvent == nil && !classify.HasSportsKeyword(rec.Name) {
			metrics.RecordFiltered(ModeSports.String())
			return false
		}
	}

	if opts.Modes.Has(ModeAllEnglish) {
		// Untagged records are neutral and retained; only records tagged
		// with a non-English region are dropped.
		if parsed.Country != nil && !parsed.Country.English {
			metrics.RecordFiltered(ModeAllEnglish.String())
			return false
		}
	}

	return true
}

// enrich computes clean_name and search_name for every surviving record,
// in parallel, plus the cosmetic league prefix under Sports mode.
func (p *Pipeline) enrich(records []catalog.Record, parsed []classify.ParsedContent, opts Options) {
	if len(records) == 0 {
		return
	}

	cleaning := opts.Modes.Has(ModeMerica) || opts.Modes.Has(ModeAllEnglish)
	sportsMode := opts.Modes.Has(ModeSports)
	now := p.now()

	workers := p.workers
	if workers > len(records) {
		workers = len(records)
	}

	var wg sync.WaitGroup
	indexes := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				rec := &records[i]
				pc := &parsed[i]

				clean := rec.Name
				if cleaning && pc.BaseName != "" {
					clean = pc.BaseName
				}
				if ev := pc.SportsEvent; ev != nil {
					_, _, state := p.resolver.Resolve(ev.RawStartTime, ev.RawStopTime, "", now)
					rec.Liveness = state.String()
					if state == liveness.StateEnded {
						clean = liveness.ScrubLiveBadges(clean)
					}
				}
				if sportsMode {
					if emoji := leagueEmoji(rec.Name); emoji != "" {
						clean = emoji + " " + clean
					}
				}

				rec.CleanName = clean
				rec.SearchName = strings.ToLower(clean)
				rec.IsSports = pc.SportsEvent != nil || classify.HasSportsKeyword(rec.Name)
				rec.IsDomestic = pc.IsDomestic()
			}
		}()
	}

	for i := range records {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
}

// leagueEmoji returns the cosmetic prefix for a detected league signal.
func leagueEmoji(name string) string {
	upper := strings.ToUpper(name)
	switch {
	case strings.Contains(upper, "NBA") || strings.Contains(upper, "BASKETBALL"):
		return "🏀"
	case strings.Contains(upper, "NFL") || strings.Contains(upper, "FOOTBALL"):
		return "🏈"
	case strings.Contains(upper, "MLB") || strings.Contains(upper, "BASEBALL"):
		return "⚾"
	case strings.Contains(upper, "NHL") || strings.Contains(upper, "HOCKEY"):
		return "🏒"
	case strings.Contains(upper, "SOCCER") || strings.Contains(upper, "MLS") ||
		strings.Contains(upper, "UEFA") || strings.Contains(upper, "EPL") ||
		strings.Contains(upper, "FIFA"):
		return "⚽"
	default:
		return ""
	}
}

// isAllPseudo identifies the synthetic "ALL" record.
func isAllPseudo(rec *catalog.Record) bool {
	return rec.ID.String() == AllPseudoID || rec.Name == "ALL"
}

func collectionLabel(opts Options) string {
	switch {
	case opts.Live && opts.Categories:
		return "live_categories"
	case opts.Live:
		return "live_streams"
	case opts.Categories:
		return "vod_categories"
	default:
		return "vod_streams"
	}
}
