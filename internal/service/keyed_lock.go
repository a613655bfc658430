package service

import "sync"

// keyedLock serializes critical sections per key. The spreadsheet backend
// offers no transactions, so locate-then-write and max+1 ID allocation are
// made atomic within this process by holding the key's lock across both
// round-trips. Entries are reference-counted and removed when idle.
type keyedLock struct {
	mu   sync.Mutex
	held map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedLock() *keyedLock {
	return &keyedLock{held: make(map[string]*lockEntry)}
}

// Lock acquires the lock for key and returns its release function.
func (k *keyedLock) Lock(key string) func() {
	k.mu.Lock()
	entry, ok := k.held[key]
	if !ok {
		entry = &lockEntry{}
		k.held[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()
		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.held, key)
		}
		k.mu.Unlock()
	}
}
