package services

import "sync"

// gameLocks serializes operations per game id. Two concurrent submissions to
// the same game could otherwise both observe one unanswered question and
// both write an answer against it.
type gameLocks struct {
	mu    sync.Mutex
	locks map[int64]*gameLock
}

type gameLock struct {
	mu   sync.Mutex
	refs int
}

func newGameLocks() *gameLocks {
	return &gameLocks{locks: make(map[int64]*gameLock)}
}

func (g *gameLocks) lock(id int64) {
	g.mu.Lock()
	l, ok := g.locks[id]
	if !ok {
		l = &gameLock{}
		g.locks[id] = l
	}
	l.refs++
	g.mu.Unlock()

	l.mu.Lock()
}

func (g *gameLocks) unlock(id int64) {
	g.mu.Lock()
	l := g.locks[id]
	l.refs--
	if l.refs == 0 {
		delete(g.locks, id)
	}
	g.mu.Unlock()

	l.mu.Unlock()
}
