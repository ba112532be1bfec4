package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// ScannerConfig controls scanner behavior.
type ScannerConfig struct {
	Root string
}

// Scanner traverses a directory tree sequentially and produces an Entry
// for every reachable node, including the root itself. Symlinks are
// visited as entries in their own right and never followed for descent.
type Scanner struct {
	cfg ScannerConfig
}

// NewScanner creates a scanner with the given config.
func NewScanner(cfg ScannerConfig) *Scanner {
	return &Scanner{cfg: cfg}
}

// Walk visits every entry under Root exactly once, calling visit for each.
// When a node cannot be stat'd or a directory cannot be listed, fail is
// called for that path and traversal continues with siblings. The only
// error Walk itself returns is ctx.Err() on cancellation.
func (s *Scanner) Walk(ctx context.Context, visit func(Entry), fail func(path string, err error)) error {
	e, err := s.statEntry(s.cfg.Root)
	if err != nil {
		// Root vanished between validation and traversal.
		fail(s.cfg.Root, err)
		return nil
	}
	visit(e)
	if e.Kind != Dir {
		return nil
	}
	return s.walkDir(ctx, s.cfg.Root, visit, fail)
}

func (s *Scanner) walkDir(ctx context.Context, dir string, visit func(Entry), fail func(path string, err error)) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fail(dir, fmt.Errorf("readdir %s: %w", dir, err))
		return nil
	}

	for _, de := range entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		path := filepath.Join(dir, de.Name())
		e, err := s.statEntry(path)
		if err != nil {
			fail(path, err)
			continue
		}
		visit(e)

		// Descend into real directories only. A symlink to a directory is
		// an entry, never a subtree.
		if e.Kind == Dir {
			if err := s.walkDir(ctx, path, visit, fail); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Scanner) statEntry(path string) (Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Entry{}, fmt.Errorf("lstat %s: %w", path, err)
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return Entry{}, fmt.Errorf("unsupported stat type for %s", path)
	}

	relPath, err := filepath.Rel(s.cfg.Root, path)
	if err != nil {
		return Entry{}, fmt.Errorf("rel path for %s: %w", path, err)
	}

	mode := info.Mode()
	kind := Other
	switch {
	case mode.IsDir():
		kind = Dir
	case mode&os.ModeSymlink != 0:
		kind = Symlink
	case mode.IsRegular():
		kind = Regular
	}

	return Entry{
		Path:    path,
		RelPath: relPath,
		DevIno:  DevIno{Dev: devFromStat(stat), Ino: stat.Ino},
		Nlink:   nlinkFromStat(stat),
		UID:     stat.Uid,
		GID:     stat.Gid,
		Kind:    kind,
	}, nil
}
