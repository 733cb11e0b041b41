package nucleo

import (
	"fmt"
	"sort"
	"sync"

	"github.com/asticode/go-astilog"
	parallel "github.com/kovidgoyal/go-parallel"
	"github.com/pkg/errors"

	"github.com/helix-editor/nucleo/src/util"
)

// MatchRequest represents a search request: a frozen snapshot of the chunk
// list, the pattern to run, and the generation the pattern was set under
type MatchRequest struct {
	chunks     []*Chunk
	pattern    *Pattern
	generation int
}

// Matcher is responsible for performing search
type Matcher struct {
	eventBox    *util.EventBox
	reqBox      *util.EventBox
	notify      func()
	partitions  int
	slabs       []*util.Slab
	mergerCache map[string]*Merger
}

const (
	reqRetry util.EventType = iota
	reqReset
)

// NewMatcher returns a new Matcher
func NewMatcher(eventBox *util.EventBox, partitions int, notify func()) *Matcher {
	return &Matcher{
		eventBox:    eventBox,
		reqBox:      util.NewEventBox(),
		notify:      notify,
		partitions:  partitions,
		slabs:       make([]*util.Slab, partitions),
		mergerCache: make(map[string]*Merger)}
}

// Loop puts Matcher in action
func (m *Matcher) Loop() {
	prevCount := 0

	for {
		var request MatchRequest

		m.reqBox.Wait(func(events *util.Events) {
			for _, val := range *events {
				switch val := val.(type) {
				case MatchRequest:
					// A retry and a reset may be pending at once; the
					// newest generation with the fullest snapshot wins
					if request.pattern == nil ||
						val.generation > request.generation ||
						val.generation == request.generation &&
							CountItems(val.chunks) > CountItems(request.chunks) {
						request = val
					}
				default:
					panic(fmt.Sprintf("Unexpected type: %T", val))
				}
			}
			events.Clear()
		})

		// Restart search
		patternString := request.pattern.AsString()
		var merger *Merger
		cancelled := false
		count := CountItems(request.chunks)

		foundCache := false
		if count == prevCount {
			// Look up mergerCache
			if cached, found := m.mergerCache[patternString]; found {
				foundCache = true
				merger = cached.withGeneration(request.generation)
			}
		} else {
			// Invalidate mergerCache
			prevCount = count
			m.mergerCache = make(map[string]*Merger)
		}

		if !foundCache {
			var panicked bool
			merger, cancelled, panicked = m.scan(request)
			if panicked && !cancelled {
				// Replace the dead workers and re-run the request
				merger, cancelled, _ = m.scan(request)
			}
		}

		if !cancelled {
			if merger.cacheable() {
				m.mergerCache[patternString] = merger
			}
			m.eventBox.Set(EvtSearchFin, merger)
			if m.notify != nil {
				m.notify()
			}
		}
	}
}

func (m *Matcher) sliceChunks(chunks []*Chunk) [][]*Chunk {
	perSlice := len(chunks) / m.partitions

	// No need to parallelize
	if perSlice == 0 {
		return [][]*Chunk{chunks}
	}

	slices := make([][]*Chunk, m.partitions)
	for i := 0; i < m.partitions; i++ {
		start := i * perSlice
		end := start + perSlice
		if i == m.partitions-1 {
			end = len(chunks)
		}
		slices[i] = chunks[start:end]
	}
	return slices
}

type partialResult struct {
	index   int
	matches []Match
}

func (m *Matcher) scan(request MatchRequest) (*Merger, bool, bool) {
	numChunks := len(request.chunks)
	itemCount := CountItems(request.chunks)
	pattern := request.pattern
	if numChunks == 0 || pattern.IsEmpty() {
		return PassMerger(&request.chunks, request.generation), false, false
	}

	cancelled := util.NewAtomicBool(false)
	panicked := util.NewAtomicBool(false)

	slices := m.sliceChunks(request.chunks)
	numSlices := len(slices)
	resultChan := make(chan partialResult, numSlices)
	countChan := make(chan int, numChunks)
	waitGroup := sync.WaitGroup{}

	for idx, chunks := range slices {
		waitGroup.Add(1)
		if m.slabs[idx] == nil {
			m.slabs[idx] = util.MakeSlab(slab16Size, slab32Size)
		}
		go func(idx int, chunks []*Chunk, slab *util.Slab) {
			defer waitGroup.Done()
			processed := 0
			defer func() {
				if r := recover(); r != nil {
					panicked.Set(true)
					astilog.Error(errors.Wrap(parallel.Format_stacktrace_on_panic(r, 1), "matcher worker died"))
					for i := processed; i < len(chunks); i++ {
						countChan <- 0
					}
					resultChan <- partialResult{idx, nil}
				}
			}()
			sliceMatches := []Match{}
			for _, chunk := range chunks {
				matches := pattern.Match(chunk, slab)
				sliceMatches = append(sliceMatches, matches...)
				if cancelled.Get() {
					return
				}
				countChan <- len(matches)
				processed++
			}
			sort.Sort(ByRelevance(sliceMatches))
			resultChan <- partialResult{idx, sliceMatches}
		}(idx, chunks, m.slabs[idx])
	}

	wait := func() bool {
		cancelled.Set(true)
		waitGroup.Wait()
		return true
	}

	count := 0
	for range countChan {
		count++
		if count == numChunks {
			break
		}

		// A reset request has arrived; abandon this scan
		if m.reqBox.Peek(reqReset) {
			return nil, wait(), false
		}
	}

	partialResults := make([][]Match, numSlices)
	for range slices {
		partialResult := <-resultChan
		partialResults[partialResult.index] = partialResult.matches
	}
	return NewMerger(pattern, partialResults, request.generation, itemCount), false, panicked.Get()
}

// Reset is called to interrupt/signal the ongoing search
func (m *Matcher) Reset(chunks []*Chunk, pattern *Pattern, generation int, cancel bool) {
	var event util.EventType
	if cancel {
		event = reqReset
	} else {
		event = reqRetry
	}
	m.reqBox.Set(event, MatchRequest{chunks, pattern, generation})
}
