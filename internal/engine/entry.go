package engine

// NodeKind identifies the kind of filesystem entry.
type NodeKind int

const (
	Regular NodeKind = iota
	Dir
	Symlink
	Other // socket, fifo, device
)

var kindNames = [...]string{
	Regular: "regular",
	Dir:     "directory",
	Symlink: "symlink",
	Other:   "other",
}

func (k NodeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// DevIno uniquely identifies an inode for hardlink deduplication.
type DevIno struct {
	Dev uint64
	Ino uint64
}

// Entry describes a single filesystem entry produced by the scanner.
type Entry struct {
	Path    string // absolute path
	RelPath string // relative to the base directory, used for exclusion
	DevIno  DevIno
	Nlink   uint64
	UID     uint32
	GID     uint32
	Kind    NodeKind
}
