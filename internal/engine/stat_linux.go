//go:build linux

package engine

import "syscall"

// devFromStat returns the device number from a syscall.Stat_t.
func devFromStat(stat *syscall.Stat_t) uint64 {
	return stat.Dev
}

// nlinkFromStat returns the hard-link count from a syscall.Stat_t.
func nlinkFromStat(stat *syscall.Stat_t) uint64 {
	return uint64(stat.Nlink) //nolint:unconvert // Nlink width varies by arch
}
