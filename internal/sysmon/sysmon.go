// Package sysmon samples system-wide CPU and memory usage so that harness
// timings can be read against the load the machine was under.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample reads current system-wide usage. CPU is the utilisation since the
// previous cpu.Percent call in this process; a failed read leaves its field
// at zero.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemPercent = vm.UsedPercent
	}
	return s
}

// Measure runs fn and returns the CPU utilisation over its execution and
// the memory usage once it returns. Measurements must not overlap since
// the CPU baseline is process-wide.
func Measure(fn func()) Stats {
	_, _ = cpu.Percent(0, false)
	fn()
	return Sample()
}
