/*
Package nucleo implements a fuzzy matching engine for interactive filtering
of large item lists.

Producers push candidate strings through reference-counted Injectors into a
chunked item store. A matcher goroutine scans immutable snapshots of the
store against the current pattern with a partitioned worker pool, sorts the
per-partition survivors and merges them into a single ranked list. The
controller — driven by Tick at the caller's redraw cadence — publishes the
merged result as an immutable Snapshot via an atomic pointer swap.

	Injector.Push  -> ChunkList
	SetPattern     -> Matcher (restart)
	Matcher        -> EvtSearchFin -> Tick (publish snapshot)
*/
package nucleo

import (
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/helix-editor/nucleo/src/util"
)

// TickStatus is returned by Tick
type TickStatus struct {
	// Changed is set when a new snapshot was published during the tick
	Changed bool
	// Running is set when the published snapshot does not yet reflect the
	// current pattern and item set
	Running bool
}

// Nucleo is the streaming coordinator. Injectors may push from any
// goroutine and Snapshot may be read from any goroutine, but SetPattern,
// Tick and Positions must be called from a single controller goroutine.
type Nucleo struct {
	chunkList    *ChunkList
	matcher      *Matcher
	eventBox     *util.EventBox
	cache        ChunkCache
	patternCache map[string]*Pattern
	snapshot     atomic.Pointer[Snapshot]
	generation   atomic.Int32
	injectors    atomic.Int32
	patternMutex sync.Mutex
	pattern      *Pattern
	caseMode     Case
	normalize    bool
	preferPrefix bool
	posSlab      *util.Slab
	lastReqGen   int
	lastReqCount int
}

// New returns a new Nucleo. workerCount of zero or less selects the
// hardware parallelism. notify, when not nil, is invoked whenever a scan
// finishes and a tick would publish a new snapshot.
func New(workerCount int, notify func(), caseMode Case, normalize bool, preferPrefix bool) *Nucleo {
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	n := &Nucleo{
		eventBox:     util.NewEventBox(),
		cache:        NewChunkCache(),
		patternCache: make(map[string]*Pattern),
		caseMode:     caseMode,
		normalize:    normalize,
		preferPrefix: preferPrefix,
		posSlab:      util.MakeSlab(slab16Size, slab32Size),
	}
	n.chunkList = NewChunkList(func(item *Item, data []byte) bool {
		item.text = util.ToChars(data)
		if !item.text.IsBytes() {
			item.origText = string(data)
		}
		return true
	})
	n.pattern = BuildPattern(&n.cache, n.patternCache, true, caseMode, normalize, preferPrefix, nil)
	n.matcher = NewMatcher(n.eventBox, workerCount, notify)
	go n.matcher.Loop()

	// Queue the initial pass so that an empty-query snapshot becomes
	// available on the first tick even if no item ever arrives
	chunks, _ := n.chunkList.Snapshot()
	n.matcher.Reset(chunks, n.pattern, 0, false)
	return n
}

// SetPattern reparses the query into a new pattern, bumps the generation
// counter and restarts the scan. Results of the previous generation that
// are still in flight are discarded; every item is rematched against the
// new pattern. The appending hint is accepted but does not change the
// rescan; the chunk cache only reuses the per-chunk results of a query
// string that was matched before.
func (n *Nucleo) SetPattern(text string, appending bool) error {
	n.patternMutex.Lock()
	defer n.patternMutex.Unlock()

	pattern := BuildPattern(&n.cache, n.patternCache, true,
		n.caseMode, n.normalize, n.preferPrefix, []rune(text))
	if pattern.IsEmpty() && len(strings.TrimSpace(text)) > 0 {
		return errors.Wrapf(ErrBadPattern, "%q", text)
	}
	n.pattern = pattern

	generation := int(n.generation.Add(1))
	chunks, count := n.chunkList.Snapshot()
	n.lastReqGen, n.lastReqCount = generation, count
	n.matcher.Reset(chunks, pattern, generation, true)
	return nil
}

// Pattern returns the current pattern
func (n *Nucleo) Pattern() *Pattern {
	n.patternMutex.Lock()
	defer n.patternMutex.Unlock()
	return n.pattern
}

// Snapshot returns the last published snapshot. Safe to call from any
// goroutine; the returned value is immutable.
func (n *Nucleo) Snapshot() *Snapshot {
	if s := n.snapshot.Load(); s != nil {
		return s
	}
	return &Snapshot{merger: EmptyMerger(-1), generation: -1}
}

// Positions recomputes the matched grapheme indices of the item under the
// current pattern. Fuzzy positions are in reverse order.
func (n *Nucleo) Positions(item *Item) []int {
	pattern := n.Pattern()
	if pattern.IsEmpty() {
		return nil
	}
	_, pos := pattern.MatchItem(item, true, n.posSlab)
	if pos == nil {
		return nil
	}
	return *pos
}

// Tick drives the controller. It publishes any finished scan, re-requests
// a scan when the published snapshot is stale, and waits for the result in
// small delay steps until the deadline elapses. The remainder of the work
// is picked up by subsequent ticks.
func (n *Nucleo) Tick(deadline time.Duration) TickStatus {
	changed := n.collect()
	started := time.Now()
	for n.dirty() {
		n.request()
		if time.Since(started) >= deadline {
			break
		}
		time.Sleep(util.DurWithin(deadline-time.Since(started), 0, coordinatorDelayStep))
		if n.collect() {
			changed = true
		}
	}
	return TickStatus{Changed: changed, Running: n.dirty()}
}

// collect publishes a finished scan, discarding results that were matched
// under a stale generation
func (n *Nucleo) collect() bool {
	val, ok := n.eventBox.Take(EvtSearchFin)
	if !ok {
		return false
	}
	merger := val.(*Merger)
	if merger.Generation() != int(n.generation.Load()) {
		// Matched under a stale pattern; the items are re-requested
		// against the current one by the tick loop
		return false
	}
	n.snapshot.Store(&Snapshot{
		merger:     merger,
		totalCount: merger.itemCount,
		generation: merger.generation,
	})
	return true
}

// dirty reports whether the published snapshot is missing or lags behind
// the current pattern generation or item count
func (n *Nucleo) dirty() bool {
	s := n.snapshot.Load()
	return s == nil ||
		s.generation != int(n.generation.Load()) ||
		s.totalCount != n.chunkList.Count()
}

// request queues a scan for the current state unless one is already queued
func (n *Nucleo) request() {
	generation := int(n.generation.Load())
	count := n.chunkList.Count()
	if n.lastReqGen == generation && n.lastReqCount == count {
		return
	}
	chunks, snapshotCount := n.chunkList.Snapshot()
	n.lastReqGen, n.lastReqCount = generation, snapshotCount
	n.matcher.Reset(chunks, n.Pattern(), generation, false)
}

// TotalCount returns the number of items pushed so far
func (n *Nucleo) TotalCount() int {
	return n.chunkList.Count()
}
