package resilience

import "sync"

// SingleFlight deduplicates concurrent calls for the same key. The
// zero value is ready to use.
type SingleFlight struct {
	mu       sync.Mutex
	inflight map[string]*flightResult
}

type flightResult struct {
	done  chan struct{}
	value any
	err   error
}

// Do runs fn once per key among concurrent callers. The bool reports
// whether the result was shared from another caller's run.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.inflight == nil {
		g.inflight = make(map[string]*flightResult)
	}

	if r, ok := g.inflight[key]; ok {
		g.mu.Unlock()
		<-r.done
		return r.value, r.err, true
	}

	r := &flightResult{done: make(chan struct{})}
	g.inflight[key] = r
	g.mu.Unlock()

	r.value, r.err = fn()
	close(r.done)

	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()

	return r.value, r.err, false
}
