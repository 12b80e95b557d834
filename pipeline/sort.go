package pipeline

import (
	"sort"

	"github.com/alorle/iptv-catalog/catalog"
)

// sort orders the batch with a stable multi-key sort: the "ALL"
// pseudo-record first, sports-tagged records before the rest under Sports
// mode, favorited records before non-favorited, then ascending channel
// ordinal for streams or case-sensitive name for categories. Stability
// preserves provider order on full ties. Runs after enrich so the sports
// tag is already stamped on each record.
func (p *Pipeline) sort(records []catalog.Record, opts Options) {
	sportsMode := opts.Modes.Has(ModeSports)
	favorites := opts.Favorites

	sort.SliceStable(records, func(i, j int) bool {
		ri, rj := &records[i], &records[j]

		allI, allJ := isAllPseudo(ri), isAllPseudo(rj)
		if allI != allJ {
			return allI
		}

		if sportsMode && ri.IsSports != rj.IsSports {
			return ri.IsSports
		}

		if favorites != nil {
			fi := favorites.Contains(ri.ID.String())
			fj := favorites.Contains(rj.ID.String())
			if fi != fj {
				return fi
			}
		}

		if opts.Categories {
			return ri.Name < rj.Name
		}
		return ri.ChannelOrdinal() < rj.ChannelOrdinal()
	})
}
