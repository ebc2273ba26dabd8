package loadbalancer

import (
	"sync"
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestRoundRobinCyclesInstances(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a", "http://b", "http://c"})

	got := []string{rr.Next(), rr.Next(), rr.Next(), rr.Next()}
	check.Equal(t, []string{"http://a", "http://b", "http://c", "http://a"}, got)
}

func TestRoundRobinEmpty(t *testing.T) {
	rr := NewRoundRobin(nil)
	check.Equal(t, "", rr.Next())
}

func TestRoundRobinConcurrentDistribution(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a", "http://b"})

	var (
		mu     sync.Mutex
		counts = map[string]int{}
		wg     sync.WaitGroup
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := rr.Next()
			mu.Lock()
			counts[s]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	check.Equal(t, 50, counts["http://a"])
	check.Equal(t, 50, counts["http://b"])
}
