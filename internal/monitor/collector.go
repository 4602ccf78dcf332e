package monitor

import (
	"context"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/rileyhilliard/ptop/internal/config"
	"github.com/rileyhilliard/ptop/internal/errors"
	"github.com/rileyhilliard/ptop/internal/logger"
	"github.com/rileyhilliard/ptop/internal/monitor/parsers"
	"github.com/spf13/afero"
)

// Collector gathers one Snapshot of process and memory accounting.
//
// Collect never fails as a whole: unreadable processes are skipped and
// unreadable system files degrade to zero values. When the process list
// itself can't be enumerated, Snapshot.Err carries a COLLECT error. It makes
// a single attempt; the next cycle is the retry.
type Collector interface {
	Collect(ctx context.Context) *Snapshot
}

// NewCollector returns the collector selected by cfg.Source.
func NewCollector(cfg *config.Config, log logger.Logger) Collector {
	if log == nil {
		log = logger.Noop()
	}
	if cfg.Source == config.SourceGopsutil {
		return NewGopsutilCollector(log)
	}
	return NewProcCollector(afero.NewReadOnlyFs(afero.NewOsFs()), cfg.ProcRoot, log)
}

// ProcCollector reads a Linux proc filesystem.
type ProcCollector struct {
	fs   afero.Fs
	root string
	log  logger.Logger
}

// NewProcCollector creates a collector reading the proc tree at root on fs.
func NewProcCollector(fs afero.Fs, root string, log logger.Logger) *ProcCollector {
	if root == "" {
		root = config.DefaultProcRoot
	}
	if log == nil {
		log = logger.Noop()
	}
	return &ProcCollector{fs: fs, root: root, log: log}
}

// Collect enumerates every pid under the proc root in ascending order.
// It is not cancelable mid-cycle; ctx is accepted for interface symmetry.
func (c *ProcCollector) Collect(_ context.Context) *Snapshot {
	snap := newSnapshot()

	if text, err := c.read("stat"); err == nil {
		snap.CPU.TotalTicks = parsers.ParseSystemStat(text)
	} else {
		c.log.Warn("system stat unavailable: %v", err)
	}

	if text, err := c.read("meminfo"); err == nil {
		info := parsers.ParseMeminfo(text)
		snap.Memory = MemoryInfo{TotalKB: info.TotalKB, AvailableKB: info.AvailableKB}
	} else {
		c.log.Warn("meminfo unavailable: %v", err)
	}

	pids, err := c.pids()
	if err != nil {
		c.log.Warn("cannot enumerate %s: %v", c.root, err)
		snap.Err = errors.Wrap(err, "Cannot enumerate processes under "+c.root)
	}

	for _, pid := range pids {
		sample, ticks, ok := c.readProcess(pid)
		if !ok {
			continue
		}
		snap.Processes = append(snap.Processes, sample)
		snap.CPU.Procs[pid] = ticks
	}

	return snap
}

// pids lists numeric entries of the proc root, sorted numerically.
func (c *ProcCollector) pids() ([]int, error) {
	entries, err := afero.ReadDir(c.fs, c.root)
	if err != nil {
		return nil, err
	}

	pids := make([]int, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if pid, ok := parsers.ParsePID(entry.Name()); ok {
			pids = append(pids, pid)
		}
	}
	sort.Ints(pids)
	return pids, nil
}

// readProcess reads status and stat for one pid. A missing status file means
// the process exited after enumeration, so it is skipped. A missing stat
// file only zeroes the tick counters.
func (c *ProcCollector) readProcess(pid int) (ProcessSample, ProcTicks, bool) {
	dir := strconv.Itoa(pid)

	statusText, err := c.read(filepath.Join(dir, "status"))
	if err != nil {
		c.log.Debug("skipping pid %d: %v", pid, err)
		return ProcessSample{}, ProcTicks{}, false
	}
	status := parsers.ParseProcStatus(statusText)

	var stat parsers.ProcStat
	if statText, err := c.read(filepath.Join(dir, "stat")); err == nil {
		stat = parsers.ParseProcStat(statText)
	} else {
		c.log.Debug("no stat for pid %d: %v", pid, err)
	}

	sample := ProcessSample{
		PID:     pid,
		Name:    status.Name,
		State:   status.State,
		Threads: status.Threads,
		RSSKB:   status.RSSKB,
	}
	ticks := ProcTicks{
		User:      stat.UTime,
		System:    stat.STime,
		StartTime: stat.StartTime,
	}
	return sample, ticks, true
}

func (c *ProcCollector) read(rel string) (string, error) {
	data, err := afero.ReadFile(c.fs, filepath.Join(c.root, rel))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
