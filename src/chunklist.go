package nucleo

import "sync"

// Chunk holds up to chunkSize Items. A full chunk is never mutated again.
type Chunk struct {
	items [chunkSize]Item
	count int
}

// ItemBuilder is a closure type that fills an Item from the pushed bytes
type ItemBuilder func(*Item, []byte) bool

// ChunkList is the append-only store of every pushed Item. Producers
// contend only on the short append lock; the matcher works on immutable
// snapshots of the chunk pointers.
type ChunkList struct {
	chunks []*Chunk
	count  int
	mutex  sync.Mutex
	trans  ItemBuilder
}

// NewChunkList returns a new ChunkList
func NewChunkList(trans ItemBuilder) *ChunkList {
	return &ChunkList{
		chunks: []*Chunk{},
		count:  0,
		trans:  trans}
}

func (c *Chunk) push(trans ItemBuilder, data []byte) bool {
	if trans(&c.items[c.count], data) {
		c.count++
		return true
	}
	return false
}

// IsFull returns true if the Chunk is full
func (c *Chunk) IsFull() bool {
	return c.count == chunkSize
}

func (cl *ChunkList) lastChunk() *Chunk {
	return cl.chunks[len(cl.chunks)-1]
}

// CountItems returns the total number of Items
func CountItems(cs []*Chunk) int {
	if len(cs) == 0 {
		return 0
	}
	if len(cs) == 1 {
		return cs[0].count
	}

	// First chunks are guaranteed to be full
	return chunkSize*(len(cs)-1) + cs[len(cs)-1].count
}

// Push adds the item to the list and returns the id assigned to it
func (cl *ChunkList) Push(data []byte) (int32, bool) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	if len(cl.chunks) == 0 || cl.lastChunk().IsFull() {
		cl.chunks = append(cl.chunks, &Chunk{})
	}

	chunk := cl.lastChunk()
	if chunk.push(cl.trans, data) {
		index := int32(cl.count)
		chunk.items[chunk.count-1].index = index
		cl.count++
		return index, true
	}
	return 0, false
}

// Count returns the number of Items pushed so far
func (cl *ChunkList) Count() int {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	return cl.count
}

// Snapshot returns an immutable snapshot of the ChunkList
func (cl *ChunkList) Snapshot() ([]*Chunk, int) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ret := make([]*Chunk, len(cl.chunks))
	copy(ret, cl.chunks)

	// Duplicate the last chunk so that the producers can keep appending to
	// the original while the matcher reads the copy
	if cnt := len(ret); cnt > 0 {
		newChunk := *ret[cnt-1]
		ret[cnt-1] = &newChunk
	}
	return ret, cl.count
}
