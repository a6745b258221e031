package services

import (
	"sort"
	"sync"
)

// RoomLocker serialises transitions per room number within this process.
type RoomLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRoomLocker() *RoomLocker {
	return &RoomLocker{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires every named room in sorted order and returns the release func.
func (l *RoomLocker) Lock(rooms ...string) func() {
	keys := make([]string, 0, len(rooms))
	seen := make(map[string]bool, len(rooms))
	for _, r := range rooms {
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		keys = append(keys, r)
	}
	sort.Strings(keys)

	held := make([]*sync.Mutex, 0, len(keys))
	for _, k := range keys {
		m := l.get(k)
		m.Lock()
		held = append(held, m)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func (l *RoomLocker) get(room string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[room]
	if !ok {
		m = &sync.Mutex{}
		l.locks[room] = m
	}
	return m
}
