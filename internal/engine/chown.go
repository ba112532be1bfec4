package engine

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// lchown changes the ownership of the entry itself, never the target of a
// symlink. IDs that should stay untouched are passed as -1, which the
// kernel treats as "leave unchanged".
func lchown(path string, uid, gid int) error {
	if err := unix.Fchownat(unix.AT_FDCWD, path, uid, gid, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return fmt.Errorf("chown %s: %w", path, err)
	}
	return nil
}
