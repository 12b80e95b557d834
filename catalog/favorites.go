package catalog

// IDSet is a set of normalized record identifiers.
type IDSet map[string]struct{}

// NewIDSet builds a set from a list of identifiers.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set.
func (s IDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Favorites holds the four independent favorite ID sets. They are owned by
// the settings layer and read-only inputs to the sort stage.
type Favorites struct {
	LiveCategories IDSet
	LiveStreams    IDSet
	VODCategories  IDSet
	VODStreams     IDSet
}

// ForCollection selects the set matching the batch being processed.
func (f *Favorites) ForCollection(live, categories bool) IDSet {
	switch {
	case live && categories:
		return f.LiveCategories
	case live:
		return f.LiveStreams
	case categories:
		return f.VODCategories
	default:
		return f.VODStreams
	}
}
