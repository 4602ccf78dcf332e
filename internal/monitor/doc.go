// Package monitor implements ptop's process and memory dashboard.
//
// # Architecture
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Model: owns all mutable state (latest processes, CPU baseline, memory
//     history, scroll offset)
//   - Update: the single consumer of timer ticks and key presses, and the
//     only caller of the Collector
//   - View: a pure Render of the state into a Frame, then lipgloss styling
//
// # Key Components
//
//	Collector       - samples /proc (ProcCollector) or gopsutil (GopsutilCollector)
//	DeltaCalculator - converts cumulative CPU ticks into per-cycle percentages
//	MemoryHistory   - fixed-capacity FIFO of used-memory samples
//	ScrollState     - first visible process row, always clamped
//	Render          - builds the table page and graph bars from read-only inputs
//
// # Message Flow
//
//  1. tickMsg fires immediately from Init, then every interval (default 1s)
//  2. Update runs the Collector, applies deltas, pushes memory, clamps scroll
//  3. Update schedules the next tick once the cycle is done
//  4. View re-renders
//
// Key presses never trigger collection. Up and Down move the scroll offset,
// q or Ctrl+C quits.
package monitor
