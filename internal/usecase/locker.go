package usecase

import (
	"sort"
	"sync"
)

// AccountLocker serializes operations that touch the same account while
// letting operations on disjoint account sets proceed concurrently. Both
// movement services must share one instance.
type AccountLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewAccountLocker creates a new AccountLocker.
func NewAccountLocker() *AccountLocker {
	return &AccountLocker{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the locks for the given account IDs and returns the matching
// unlock function. IDs are deduplicated and acquired in sorted order so two
// overlapping acquisitions cannot deadlock.
func (l *AccountLocker) Lock(ids ...string) func() {
	unique := make(map[string]bool, len(ids))

	var sorted []string
	for _, id := range ids {
		if id != "" && !unique[id] {
			unique[id] = true
			sorted = append(sorted, id)
		}
	}

	sort.Strings(sorted)

	for _, id := range sorted {
		l.forID(id).Lock()
	}

	return func() {
		for i := len(sorted) - 1; i >= 0; i-- {
			l.forID(sorted[i]).Unlock()
		}
	}
}

func (l *AccountLocker) forID(id string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}

	return m
}
