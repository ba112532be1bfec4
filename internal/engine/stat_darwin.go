//go:build darwin

package engine

import "syscall"

// devFromStat returns the device number from a syscall.Stat_t.
func devFromStat(stat *syscall.Stat_t) uint64 {
	return uint64(stat.Dev) //nolint:gosec // G115: dev_t is int32 on darwin, always non-negative
}

// nlinkFromStat returns the hard-link count from a syscall.Stat_t.
func nlinkFromStat(stat *syscall.Stat_t) uint64 {
	return uint64(stat.Nlink) // nlink_t is uint16 on darwin
}
