// Package parsers turns the text of Linux proc accounting files into typed
// records. Every parser is total: missing keys, truncated lines, and
// non-numeric fields produce placeholder values instead of errors, because
// the files race with process exit and the next cycle supersedes this one.
package parsers

import (
	"bufio"
	"strconv"
	"strings"
)

// Placeholder is shown for text fields that could not be read.
const Placeholder = "-"

// ProcStatus holds the fields ptop reads from /proc/<pid>/status.
type ProcStatus struct {
	Name    string
	State   string
	Threads int
	RSSKB   int64
}

// ProcStat holds the cumulative CPU counters from /proc/<pid>/stat, in clock ticks.
type ProcStat struct {
	UTime     uint64
	STime     uint64
	StartTime uint64
}

// Ticks returns user plus system ticks.
func (s ProcStat) Ticks() uint64 {
	return s.UTime + s.STime
}

// Meminfo holds the system memory totals from /proc/meminfo, in kB.
type Meminfo struct {
	TotalKB     int64
	AvailableKB int64
}

// ParseProcStatus parses /proc/<pid>/status.
//
// Example input:
//
//	Name:	bash
//	State:	S (sleeping)
//	Threads:	1
//	VmRSS:	    5120 kB
func ParseProcStatus(text string) ProcStatus {
	status := ProcStatus{Name: Placeholder, State: Placeholder}

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch key {
		case "Name":
			if value != "" {
				status.Name = value
			}
		case "State":
			// "S (sleeping)" -> "S"
			if fields := strings.Fields(value); len(fields) > 0 {
				status.State = fields[0]
			}
		case "Threads":
			status.Threads = int(parseInt(value))
		case "VmRSS":
			// "5120 kB" -> 5120
			if fields := strings.Fields(value); len(fields) > 0 {
				status.RSSKB = parseInt(fields[0])
			}
		}
	}

	return status
}

// ParseProcStat parses /proc/<pid>/stat. The comm field (2) may contain
// spaces and parentheses, so fields are counted from after the last ')'.
func ParseProcStat(text string) ProcStat {
	var stat ProcStat

	r := strings.LastIndexByte(text, ')')
	if r < 0 {
		return stat
	}
	fields := strings.Fields(text[r+1:])

	// fields[0] is field 3 (state) in proc(5) numbering.
	field := func(n int) string {
		i := n - 3
		if i < 0 || i >= len(fields) {
			return ""
		}
		return fields[i]
	}

	stat.UTime = parseUint(field(14))
	stat.STime = parseUint(field(15))
	stat.StartTime = parseUint(field(22))
	return stat
}

// systemStatColumns is the number of tick columns summed from the "cpu "
// line: user, nice, system, idle, iowait, irq, softirq, steal. The guest
// columns that follow are already included in user and nice.
const systemStatColumns = 8

// ParseSystemStat returns the total ticks on the aggregate "cpu " line of
// /proc/stat, or 0 if the line is missing.
func ParseSystemStat(text string) uint64 {
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu ") {
			continue
		}

		cols := strings.Fields(line)[1:]
		if len(cols) > systemStatColumns {
			cols = cols[:systemStatColumns]
		}

		var total uint64
		for _, tok := range cols {
			total += parseUint(tok)
		}
		return total
	}
	return 0
}

// ParseMeminfo parses /proc/meminfo. Kernels older than 3.14 lack
// MemAvailable; for those it is estimated as MemFree + Buffers + Cached.
func ParseMeminfo(text string) Meminfo {
	var (
		info                   Meminfo
		free, buffers, cached  int64
		haveAvailable, haveAny bool
	)

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		val := parseInt(parts[1])
		switch strings.TrimSuffix(parts[0], ":") {
		case "MemTotal":
			info.TotalKB = val
		case "MemAvailable":
			info.AvailableKB = val
			haveAvailable = true
		case "MemFree":
			free = val
			haveAny = true
		case "Buffers":
			buffers = val
			haveAny = true
		case "Cached":
			cached = val
			haveAny = true
		}
	}

	if !haveAvailable && haveAny {
		info.AvailableKB = free + buffers + cached
	}
	if !haveAvailable && !haveAny {
		// Without any availability figure, report nothing used rather than everything.
		info.AvailableKB = info.TotalKB
	}

	return info
}

// ParsePID reports whether a /proc directory entry names a process.
func ParsePID(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return 0, false
		}
	}
	pid, err := strconv.Atoi(name)
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

func parseInt(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseUint(s string) uint64 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
