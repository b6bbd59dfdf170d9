package util

import (
	"sort"
	"sync"
)

// EnumSet assigns a stable index to every distinct string added to it
type EnumSet struct {
	mu    sync.RWMutex
	Enum  map[string]int
	Index []string
}

func (e *EnumSet) Add(value string) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	enum, exists := e.Enum[value]
	if exists {
		return enum, false
	}
	enum = len(e.Index)
	e.Enum[value] = enum
	e.Index = append(e.Index, value)
	return enum, true
}

func (e *EnumSet) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.Index)
}

// Sorted returns the values in lexicographic order
func (e *EnumSet) Sorted() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	retval := make([]string, len(e.Index))
	copy(retval, e.Index)
	sort.Strings(retval)
	return retval
}

func NewEnumSet(capacity int) *EnumSet {
	return &EnumSet{
		Enum:  make(map[string]int, capacity),
		Index: make([]string, 0, capacity),
	}
}
