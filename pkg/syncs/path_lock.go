package syncs

import (
	"path/filepath"
	"sync"
)

// PathLocker provides per-path mutual exclusion.
// See [PathLock] for an implementation.
type PathLocker interface {
	Lock(path string)
	Unlock(path string)
}

// PathLock serializes access to the same file path while letting distinct
// paths proceed concurrently. Paths are compared after [filepath.Clean], so
// "a/b.html" and "a/./b.html" share a lock. The zero value is ready to use.
type PathLock struct {
	locks map[string]*sync.Mutex
	mu    sync.Mutex
}

// NewPathLock creates a new [PathLock].
func NewPathLock() *PathLock {
	return &PathLock{
		locks: make(map[string]*sync.Mutex),
	}
}

func (pl *PathLock) get(path string) *sync.Mutex {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	if pl.locks == nil {
		pl.locks = make(map[string]*sync.Mutex)
	}

	key := filepath.Clean(path)

	l, ok := pl.locks[key]
	if !ok {
		l = &sync.Mutex{}
		pl.locks[key] = l
	}

	return l
}

// Lock acquires the mutex for path, blocking while another caller holds it.
func (pl *PathLock) Lock(path string) {
	pl.get(path).Lock()
}

// Unlock releases the mutex for path.
func (pl *PathLock) Unlock(path string) {
	pl.get(path).Unlock()
}

// Do runs fn while holding the lock for path.
func (pl *PathLock) Do(path string, fn func() error) error {
	pl.Lock(path)
	defer pl.Unlock(path)

	return fn()
}
