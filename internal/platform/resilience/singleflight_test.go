package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlightCollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	var leader sync.WaitGroup
	leader.Add(1)
	go func() {
		defer leader.Done()
		g.Do("key", func() (any, error) {
			calls.Add(1)
			close(started)
			<-release
			return "value", nil
		})
	}()
	<-started

	// Followers join while the leader is still inside fn.
	const followers = 9
	var wg sync.WaitGroup
	shared := make([]bool, followers)
	values := make([]any, followers)
	for i := 0; i < followers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			values[i], _, shared[i] = g.Do("key", func() (any, error) {
				calls.Add(1)
				return "late", nil
			})
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	leader.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one call, got %d", got)
	}
	for i := range values {
		if values[i] != "value" {
			t.Fatalf("unexpected value: %v", values[i])
		}
		if !shared[i] {
			t.Fatalf("expected follower %d to share the leader's result", i)
		}
	}
}

func TestSingleFlightPropagatesError(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	wantErr := errors.New("boom")

	_, err, _ := g.Do("key", func() (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected error propagated, got %v", err)
	}
}

func TestSingleFlightRunsAgainAfterCompletion(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	calls := 0
	fn := func() (any, error) {
		calls++
		return calls, nil
	}

	g.Do("key", fn)
	value, _, shared := g.Do("key", fn)
	if shared {
		t.Fatalf("expected a fresh run after completion")
	}
	if value != 2 {
		t.Fatalf("expected second call result, got %v", value)
	}
}
