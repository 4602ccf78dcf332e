package monitor

// DefaultHistorySize is the default number of memory samples retained,
// which is also the graph width.
const DefaultHistorySize = 80

// MemoryHistory is a fixed-capacity FIFO of used-memory samples in kB.
// When full, each push evicts the oldest sample. It is owned by the update
// loop and has no locking.
type MemoryHistory struct {
	data  []int64
	head  int
	count int
	size  int
}

// NewMemoryHistory creates a history with the given capacity.
// Non-positive sizes fall back to DefaultHistorySize.
func NewMemoryHistory(size int) *MemoryHistory {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &MemoryHistory{
		data: make([]int64, size),
		size: size,
	}
}

// Push appends a sample, evicting the oldest when at capacity.
func (h *MemoryHistory) Push(usedKB int64) {
	h.data[h.head] = usedKB
	h.head = (h.head + 1) % h.size
	if h.count < h.size {
		h.count++
	}
}

// Values returns the samples oldest first, most recent last.
// Returns nil when empty.
func (h *MemoryHistory) Values() []int64 {
	if h.count == 0 {
		return nil
	}

	result := make([]int64, h.count)

	// head is the next write position, so the oldest value sits count slots behind it.
	start := (h.head - h.count + h.size) % h.size
	for i := 0; i < h.count; i++ {
		result[i] = h.data[(start+i)%h.size]
	}
	return result
}

// Len returns the number of stored samples.
func (h *MemoryHistory) Len() int {
	return h.count
}

// Cap returns the capacity.
func (h *MemoryHistory) Cap() int {
	return h.size
}
