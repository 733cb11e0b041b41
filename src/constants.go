package nucleo

import (
	"time"

	"github.com/helix-editor/nucleo/src/util"
)

const (
	// Maximum number of items in a single Chunk
	chunkSize = 100

	// Sizes of the scratch arena owned by each matcher worker
	slab16Size = 100 * 1024 // 200KB * 32 = 6.4MB
	slab32Size = 2048       // 8KB * 32 = 256KB

	// Cache only mergers with fewer matches than this
	mergerCacheMax = 100000

	// Sleep interval between the polls of an unfinished scan during a tick
	coordinatorDelayStep = 10 * time.Millisecond
)

// Matcher events
const (
	// EvtSearchFin carries a *Merger for the controller to publish
	EvtSearchFin util.EventType = iota
)
