package session

// History is a fixed-capacity ring of population samples.
type History struct {
	buf  []int
	next int
	full bool
}

// NewHistory returns a ring holding up to capacity samples. A non-positive
// capacity records nothing.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{buf: make([]int, capacity)}
}

// Push records a sample, evicting the oldest when full.
func (h *History) Push(v int) {
	if len(h.buf) == 0 {
		return
	}
	h.buf[h.next] = v
	h.next++
	if h.next == len(h.buf) {
		h.next = 0
		h.full = true
	}
}

// Len returns the number of recorded samples.
func (h *History) Len() int {
	if h.full {
		return len(h.buf)
	}
	return h.next
}

// Clear drops every sample.
func (h *History) Clear() {
	h.next = 0
	h.full = false
}

// Values returns the samples oldest first.
func (h *History) Values() []float64 {
	out := make([]float64, 0, h.Len())
	if h.full {
		for _, v := range h.buf[h.next:] {
			out = append(out, float64(v))
		}
	}
	for _, v := range h.buf[:h.next] {
		out = append(out, float64(v))
	}
	return out
}
