package telemetry

const historySize = 128

// FrameSample records one render frame's timing as seen by the demo loop.
type FrameSample struct {
	Alpha float64 // interpolation alpha used for the frame
	Steps int     // logic steps simulated before the frame
	DT    float64 // frame delta in seconds
}

// FrameHistory is a fixed-size ring buffer of recent frame samples, used by
// the HUD to plot pacing. Old entries are silently overwritten.
type FrameHistory struct {
	samples [historySize]FrameSample
	nextSeq uint64
}

// Push appends a sample, overwriting the oldest once the ring is full.
func (h *FrameHistory) Push(alpha float64, steps int, dt float64) {
	idx := h.nextSeq % historySize
	h.samples[idx] = FrameSample{
		Alpha: alpha,
		Steps: steps,
		DT:    dt,
	}
	h.nextSeq++
}

// Len returns how many samples are currently held.
func (h *FrameHistory) Len() int {
	if h.nextSeq < historySize {
		return int(h.nextSeq)
	}
	return historySize
}

// At returns the i-th most recent sample, 0 being the newest. Returns false
// when i is out of range.
func (h *FrameHistory) At(i int) (FrameSample, bool) {
	if i < 0 || i >= h.Len() {
		return FrameSample{}, false
	}
	seq := h.nextSeq - 1 - uint64(i)
	return h.samples[seq%historySize], true
}

// AvgDT returns the mean frame delta over the held samples, in seconds.
// Returns 0 when empty.
func (h *FrameHistory) AvgDT() float64 {
	n := h.Len()
	if n == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		s, _ := h.At(i)
		sum += s.DT
	}
	return sum / float64(n)
}
