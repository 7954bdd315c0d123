package timewin

// Point is one labelled bucket of a dense timeline
type Point struct {
	Label string
	Count int
}

// Counter is a dense ordered bucket map pre-seeded with zeros.
// Adds outside the seeded labels are dropped, preserving window alignment
type Counter struct {
	labels []string
	counts map[string]int
}

// NewCounter seeds a counter with the given bucket labels, in order
func NewCounter(labels []string) *Counter {
	c := &Counter{labels: labels, counts: make(map[string]int, len(labels))}
	for _, l := range labels {
		c.counts[l] = 0
	}
	return c
}

// Add bumps the bucket for label and reports whether it was in the window
func (c *Counter) Add(label string) bool {
	if _, ok := c.counts[label]; !ok {
		return false
	}
	c.counts[label]++
	return true
}

// Total sums all buckets
func (c *Counter) Total() int {
	n := 0
	for _, v := range c.counts {
		n += v
	}
	return n
}

// Points returns the buckets oldest first
func (c *Counter) Points() []Point {
	out := make([]Point, 0, len(c.labels))
	for _, l := range c.labels {
		out = append(out, Point{Label: l, Count: c.counts[l]})
	}
	return out
}
