package pipeline

import (
	"github.com/alorle/iptv-catalog/catalog"
	"github.com/alorle/iptv-catalog/classify"
	"github.com/alorle/iptv-catalog/metrics"
)

// dedupe drops duplicate records from a live-stream batch, keeping the
// first occurrence. The normalized-ID check runs first because it is
// cheaper and catches provider-side ID collisions; the exact-name check
// then catches true content duplicates published under different IDs.
func dedupe(records []catalog.Record, parsed []classify.ParsedContent) ([]catalog.Record, []classify.ParsedContent) {
	seenIDs := make(map[string]bool, len(records))
	seenNames := make(map[string]bool, len(records))

	kept := records[:0]
	keptParsed := parsed[:0]

	for i := range records {
		id := records[i].ID.String()
		if id != "" {
			if seenIDs[id] {
				metrics.RecordDeduplicated("id")
				continue
			}
			seenIDs[id] = true
		}

		if name := records[i].Name; name != "" {
			if seenNames[name] {
				metrics.RecordDeduplicated("name")
				continue
			}
			seenNames[name] = true
		}

		kept = append(kept, records[i])
		keptParsed = append(keptParsed, parsed[i])
	}

	return kept, keptParsed
}
