package room

import (
	"sync"

	"github.com/mcoot/werewolfgame-go/internal/model"
)

// lockTable holds one mutex per room code so mutations on a room are
// serialized while operations on different rooms never contend. The table's
// own map is synchronized independently of the per-room mutexes.
type lockTable struct {
	mu    sync.Mutex
	locks map[model.RoomCode]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[model.RoomCode]*sync.Mutex)}
}

// get returns the mutex for a room code, creating it on first use
func (t *lockTable) get(code model.RoomCode) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[code]
	if !ok {
		l = &sync.Mutex{}
		t.locks[code] = l
	}
	return l
}

// remove drops the mutex for a deleted room. A goroutine still holding the
// old mutex is harmless: any operation it performs will find the room gone
// and no-op.
func (t *lockTable) remove(code model.RoomCode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.locks, code)
}
