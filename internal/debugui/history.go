package debugui

import "time"

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	next    int
	filled  int
}

func NewFrameHistory(size int) *FrameHistory {
	if size < 1 {
		size = 1
	}
	return &FrameHistory{samples: make([]float32, size)}
}

// Add records one frame.
func (h *FrameHistory) Add(d time.Duration) {
	h.samples[h.next] = float32(d.Seconds() * 1000)
	h.next = (h.next + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// Average returns the mean of the recorded frames, in milliseconds.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}

	var sum float32
	for _, s := range h.samples[:h.filled] {
		sum += s
	}
	return sum / float32(h.filled)
}

// FPS derives frames per second from Average.
func (h *FrameHistory) FPS() float32 {
	avg := h.Average()
	if avg <= 0 {
		return 0
	}
	return 1000 / avg
}

// Samples returns the ring buffer, oldest slot first once it has wrapped.
func (h *FrameHistory) Samples() []float32 {
	if h.filled < len(h.samples) {
		return h.samples[:h.filled]
	}

	out := make([]float32, 0, len(h.samples))
	out = append(out, h.samples[h.next:]...)
	return append(out, h.samples[:h.next]...)
}

// FrameTimer measures the time between successive calls to Delta.
type FrameTimer struct {
	last time.Time
	now  func() time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{last: time.Now(), now: time.Now}
}

func (t *FrameTimer) Delta() time.Duration {
	now := t.now()
	d := now.Sub(t.last)
	t.last = now
	return d
}
