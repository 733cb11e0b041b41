package nucleo

import "github.com/helix-editor/nucleo/src/util"

// Item represents one pushed candidate. It is created once per push, owned
// by the streaming core, and dropped with the chunk that holds it.
type Item struct {
	text     util.Chars
	origText string
	index    int32
}

// Index returns the id assigned to the Item when it was pushed
func (item *Item) Index() int32 {
	return item.index
}

// Chars returns the haystack view of the Item. Read-only.
func (item *Item) Chars() *util.Chars {
	return &item.text
}

// AsString returns the original string
func (item *Item) AsString() string {
	if len(item.origText) > 0 {
		return item.origText
	}
	return item.text.ToString()
}
