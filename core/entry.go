package core

import "sync"

// Entry is a single log call before it is rendered for the sinks
type Entry struct {
	Level     Level
	ClassName string
	Message   string
	Err       error
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	return entryPool.Get().(*Entry)
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	*e = Entry{}
	entryPool.Put(e)
}
