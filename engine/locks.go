package engine

import "sync"

// EmployeeLocks serializes recompute operations per employee. Concurrent
// recomputes across different employees share no mutable state, but two
// interleaved time-bank resyncs for the same employee can overwrite each
// other with a stale sum.
type EmployeeLocks struct {
	mu    sync.Mutex
	locks map[int32]*sync.Mutex
}

func NewEmployeeLocks() *EmployeeLocks {
	return &EmployeeLocks{locks: make(map[int32]*sync.Mutex)}
}

// Acquire blocks until the employee's lock is held and returns the release
// function. Locks live for the process lifetime; the map is bounded by the
// number of employees seen.
func (l *EmployeeLocks) Acquire(employeeID int32) func() {
	l.mu.Lock()
	m, ok := l.locks[employeeID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[employeeID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
