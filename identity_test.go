package chromez

import (
	"os"
	"sync"
	"testing"
)

func TestGoidStableWithinGoroutine(t *testing.T) {
	first := goid()
	second := goid()

	if first == 0 {
		t.Fatal("Expected nonzero goroutine id")
	}
	if first != second {
		t.Errorf("Expected stable goroutine id, got %d then %d", first, second)
	}
}

func TestGoidDistinctAcrossGoroutines(t *testing.T) {
	main := goid()

	ids := make(map[uint64]bool)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := goid()
			mu.Lock()
			ids[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(ids) != 10 {
		t.Errorf("Expected 10 distinct goroutine ids, got %d", len(ids))
	}
	if ids[main] {
		t.Error("Expected child goroutine ids to differ from the caller's")
	}
	if ids[0] {
		t.Error("Expected no parse failures")
	}
}

func TestPidMatchesProcess(t *testing.T) {
	if pid != os.Getpid() {
		t.Errorf("Expected pid %d, got %d", os.Getpid(), pid)
	}
}
