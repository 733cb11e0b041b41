package nucleo

// Merger holds the globally-sorted view of the matches of one scan. The
// per-partition lists are merged eagerly at construction so that a Merger
// is immutable afterwards and can be shared by any number of readers.
type Merger struct {
	pattern    *Pattern
	merged     []Match
	chunks     *[]*Chunk
	pass       bool
	count      int
	itemCount  int
	generation int
}

// EmptyMerger is a Merger with no data
func EmptyMerger(generation int) *Merger {
	return NewMerger(nil, nil, generation, 0)
}

// PassMerger returns a new Merger that simply returns the items in the
// original order. It is used when the pattern is empty and everything
// matches with zero score.
func PassMerger(chunks *[]*Chunk, generation int) *Merger {
	mg := Merger{
		chunks:     chunks,
		pass:       true,
		generation: generation}

	for _, chunk := range *mg.chunks {
		mg.count += chunk.count
	}
	mg.itemCount = mg.count
	return &mg
}

// NewMerger merges the individually sorted lists into a single sorted list
func NewMerger(pattern *Pattern, lists [][]Match, generation int, itemCount int) *Merger {
	total := 0
	for _, list := range lists {
		total += len(list)
	}

	mg := Merger{
		pattern:    pattern,
		merged:     make([]Match, 0, total),
		count:      total,
		itemCount:  itemCount,
		generation: generation}

	cursors := make([]int, len(lists))
	for len(mg.merged) < total {
		minIdx := -1
		var min Match
		for listIdx, list := range lists {
			cursor := cursors[listIdx]
			if cursor == len(list) {
				continue
			}
			if minIdx < 0 || compareRanks(list[cursor], min) {
				min = list[cursor]
				minIdx = listIdx
			}
		}
		mg.merged = append(mg.merged, min)
		cursors[minIdx]++
	}
	return &mg
}

// Generation returns the pattern generation the scan ran under
func (mg *Merger) Generation() int {
	return mg.generation
}

// Length returns the number of matches
func (mg *Merger) Length() int {
	return mg.count
}

// Get returns the Match at the given rank
func (mg *Merger) Get(idx int) Match {
	if mg.pass {
		chunk := (*mg.chunks)[idx/chunkSize]
		return Match{item: &chunk.items[idx%chunkSize]}
	}
	return mg.merged[idx]
}

func (mg *Merger) cacheable() bool {
	return mg.count < mergerCacheMax
}

// withGeneration returns a shallow copy of the Merger tagged with another
// generation. Used when a cached scan result is served for a re-issued
// pattern.
func (mg *Merger) withGeneration(generation int) *Merger {
	ret := *mg
	ret.generation = generation
	return &ret
}
