package monitor

// DeltaCalculator turns cumulative tick counters into utilization
// percentages by comparing each snapshot with the one before it.
//
// It retains exactly one previous CPUSnapshot. Every Apply replaces it
// wholesale, so pids that disappear from the enumeration are dropped and the
// retained map never outgrows the live process set.
type DeltaCalculator struct {
	prev   *CPUSnapshot
	cycles uint64
}

// NewDeltaCalculator creates a calculator with no baseline.
func NewDeltaCalculator() *DeltaCalculator {
	return &DeltaCalculator{}
}

// Apply computes CPUPercent for every process in snap and then makes snap's
// counters the new baseline. The returned slice is a copy; snap is not modified.
//
// A process reports 0 when:
//   - this is the first cycle,
//   - system ticks did not advance (total delta <= 0),
//   - the pid has no baseline, or its baseline belongs to an earlier process
//     that held the same pid (start times differ),
//   - its own counter went backwards.
func (d *DeltaCalculator) Apply(snap *Snapshot) []ProcessSample {
	if snap == nil {
		return nil
	}

	out := make([]ProcessSample, len(snap.Processes))
	copy(out, snap.Processes)

	var totalDelta float64
	if d.prev != nil && snap.CPU.TotalTicks > d.prev.TotalTicks {
		totalDelta = float64(snap.CPU.TotalTicks - d.prev.TotalTicks)
	}

	for i := range out {
		out[i].CPUPercent = 0
		if totalDelta > 0 {
			out[i].CPUPercent = d.percent(out[i].PID, snap.CPU.Procs, totalDelta)
		}
	}

	d.cycles++
	curr := snap.CPU
	curr.Cycle = d.cycles
	d.prev = &curr

	return out
}

func (d *DeltaCalculator) percent(pid int, curr map[int]ProcTicks, totalDelta float64) float64 {
	before, ok := d.prev.Procs[pid]
	if !ok {
		return 0
	}
	after, ok := curr[pid]
	if !ok || after.StartTime != before.StartTime {
		return 0
	}
	if after.Total() <= before.Total() {
		return 0
	}

	pct := 100 * float64(after.Total()-before.Total()) / totalDelta
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Baseline returns the retained snapshot, or nil before the first Apply.
func (d *DeltaCalculator) Baseline() *CPUSnapshot {
	return d.prev
}

// Cycles returns how many snapshots have been applied.
func (d *DeltaCalculator) Cycles() uint64 {
	return d.cycles
}
