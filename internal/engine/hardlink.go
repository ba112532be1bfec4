package engine

// inodeTracker deduplicates entries that share a storage object, so
// ownership mutation is attempted at most once per inode. It is owned by
// a single run and never shared across runs; the engine is
// single-threaded, so a plain map suffices.
type inodeTracker struct {
	seen map[DevIno]string // first path observed for each inode
}

func newInodeTracker() *inodeTracker {
	return &inodeTracker{seen: make(map[DevIno]string)}
}

// ShouldProcess reports whether the entry's inode has not been processed
// yet, recording it on first observation. Entries with a single link are
// always processed and never tracked: they cannot recur, and tracking
// them would only grow the map.
func (t *inodeTracker) ShouldProcess(e Entry) bool {
	if e.Nlink <= 1 {
		return true
	}
	if _, ok := t.seen[e.DevIno]; ok {
		return false
	}
	t.seen[e.DevIno] = e.Path
	return true
}

// FirstPath returns the path under which the inode was first observed.
func (t *inodeTracker) FirstPath(key DevIno) (string, bool) {
	p, ok := t.seen[key]
	return p, ok
}
