package monitor

import "time"

// ProcessSample is one row of the process table. It is rebuilt from scratch
// every cycle; only the delta calculator carries anything across cycles.
type ProcessSample struct {
	PID        int
	Name       string
	State      string // single-letter code from proc(5), or "-"
	Threads    int
	RSSKB      int64
	CPUPercent float64
}

// ProcTicks holds the cumulative CPU counters for one process, in clock ticks.
type ProcTicks struct {
	User      uint64
	System    uint64
	StartTime uint64 // distinguishes a reused pid from the original process
}

// Total returns user plus system ticks.
func (t ProcTicks) Total() uint64 {
	return t.User + t.System
}

// CPUSnapshot is the CPU accounting captured in one cycle.
type CPUSnapshot struct {
	Procs      map[int]ProcTicks
	TotalTicks uint64
	Cycle      uint64 // stamped by the delta calculator
}

// MemoryInfo holds system memory totals in kB.
type MemoryInfo struct {
	TotalKB     int64
	AvailableKB int64
}

// UsedKB returns total minus available, never negative.
func (m MemoryInfo) UsedKB() int64 {
	used := m.TotalKB - m.AvailableKB
	if used < 0 {
		return 0
	}
	return used
}

// Snapshot is everything a collector gathers in one cycle. Processes are in
// enumeration order with CPUPercent unset. A snapshot is not modified after
// it leaves the collector.
type Snapshot struct {
	Processes   []ProcessSample
	CPU         CPUSnapshot
	Memory      MemoryInfo
	CollectedAt time.Time

	// Err is set when the process list could not be enumerated at all. The
	// rest of the snapshot is still usable.
	Err error
}

func newSnapshot() *Snapshot {
	return &Snapshot{
		CPU:         CPUSnapshot{Procs: make(map[int]ProcTicks)},
		CollectedAt: time.Now(),
	}
}
