package monitor

import (
	"context"
	"sort"

	"github.com/rileyhilliard/ptop/internal/errors"
	"github.com/rileyhilliard/ptop/internal/logger"
	"github.com/rileyhilliard/ptop/internal/monitor/parsers"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// TicksPerSecond converts gopsutil's CPU seconds into ticks. The delta
// calculator only uses ratios, so any fixed rate works; 100 matches USER_HZ.
const TicksPerSecond = 100

// GopsutilCollector gathers the same data as ProcCollector through gopsutil,
// for hosts without a Linux-style /proc.
type GopsutilCollector struct {
	log logger.Logger
}

// NewGopsutilCollector creates a gopsutil-backed collector.
func NewGopsutilCollector(log logger.Logger) *GopsutilCollector {
	if log == nil {
		log = logger.Noop()
	}
	return &GopsutilCollector{log: log}
}

// Collect takes one snapshot. A process whose name can't be read is treated
// as exited and skipped; any other missing field falls back to "-" or 0.
func (c *GopsutilCollector) Collect(ctx context.Context) *Snapshot {
	snap := newSnapshot()

	if times, err := cpu.TimesWithContext(ctx, false); err == nil && len(times) > 0 {
		snap.CPU.TotalTicks = secondsToTicks(totalCPUSeconds(times[0]))
	} else {
		c.log.Warn("cpu times unavailable: %v", err)
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil && vm != nil {
		snap.Memory = MemoryInfo{
			TotalKB:     int64(vm.Total / 1024),
			AvailableKB: int64(vm.Available / 1024),
		}
	} else {
		c.log.Warn("virtual memory unavailable: %v", err)
	}

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		c.log.Warn("cannot enumerate processes: %v", err)
		snap.Err = errors.Wrap(err, "Cannot enumerate processes")
		return snap
	}
	sort.Slice(procs, func(i, j int) bool { return procs[i].Pid < procs[j].Pid })

	for _, p := range procs {
		if p == nil || p.Pid <= 0 {
			continue
		}

		name, err := p.NameWithContext(ctx)
		if err != nil {
			c.log.Debug("skipping pid %d: %v", p.Pid, err)
			continue
		}
		if name == "" {
			name = parsers.Placeholder
		}

		sample := ProcessSample{PID: int(p.Pid), Name: name, State: parsers.Placeholder}
		if status, err := p.StatusWithContext(ctx); err == nil && len(status) > 0 {
			sample.State = stateCode(status[0])
		}
		if n, err := p.NumThreadsWithContext(ctx); err == nil {
			sample.Threads = int(n)
		}
		if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
			sample.RSSKB = int64(mi.RSS / 1024)
		}

		var ticks ProcTicks
		if t, err := p.TimesWithContext(ctx); err == nil && t != nil {
			ticks.User = secondsToTicks(t.User)
			ticks.System = secondsToTicks(t.System)
		}
		if created, err := p.CreateTimeWithContext(ctx); err == nil && created > 0 {
			ticks.StartTime = uint64(created)
		}

		snap.Processes = append(snap.Processes, sample)
		snap.CPU.Procs[sample.PID] = ticks
	}

	return snap
}

// totalCPUSeconds sums every accounted CPU state. Guest time is already
// included in user time on Linux, so it is left out.
func totalCPUSeconds(t cpu.TimesStat) float64 {
	return t.User + t.System + t.Idle + t.Nice + t.Iowait + t.Irq + t.Softirq + t.Steal
}

func secondsToTicks(seconds float64) uint64 {
	if seconds <= 0 {
		return 0
	}
	return uint64(seconds * TicksPerSecond)
}

// stateCode maps gopsutil's state names back to proc(5) letters.
func stateCode(state string) string {
	switch state {
	case process.Running:
		return "R"
	case process.Sleep:
		return "S"
	case process.Blocked:
		return "D"
	case process.Stop:
		return "T"
	case process.Zombie:
		return "Z"
	case process.Idle:
		return "I"
	case process.Wait:
		return "W"
	case process.Lock:
		return "L"
	case "":
		return parsers.Placeholder
	default:
		return state[:1]
	}
}
