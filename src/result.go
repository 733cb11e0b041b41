package nucleo

// Match pairs an item with its score under the pattern of one scan.
type Match struct {
	item  *Item
	score int
}

// Item returns the matched Item
func (m Match) Item() *Item {
	return m.item
}

// Score returns the match score
func (m Match) Score() int {
	return m.score
}

// ItemIndex returns the id of the matched Item
func (m Match) ItemIndex() int32 {
	return m.item.index
}

// compareRanks orders by score descending, then by item id ascending so
// that the final order is total and deterministic.
func compareRanks(irank Match, jrank Match) bool {
	if irank.score != jrank.score {
		return irank.score > jrank.score
	}
	return irank.item.index < jrank.item.index
}

// ByRelevance is for sorting Matches
type ByRelevance []Match

func (a ByRelevance) Len() int {
	return len(a)
}

func (a ByRelevance) Swap(i, j int) {
	a[i], a[j] = a[j], a[i]
}

func (a ByRelevance) Less(i, j int) bool {
	return compareRanks(a[i], a[j])
}
