package detector

// ring is a fixed-capacity circular buffer of multichannel readings. When
// full, each push overwrites the oldest reading.
type ring struct {
	data     [][]float64 // capacity x channels
	capacity int
	size     int
	writePos int
}

func newRing(capacity, channels int) *ring {
	if capacity < 1 {
		capacity = 1
	}

	data := make([][]float64, capacity)
	for i := range data {
		data[i] = make([]float64, channels)
	}
	return &ring{data: data, capacity: capacity}
}

// push stores a copy of reading.
func (r *ring) push(reading []float64) {
	copy(r.data[r.writePos], reading)
	r.writePos = (r.writePos + 1) % r.capacity
	if r.size < r.capacity {
		r.size++
	}
}

func (r *ring) full() bool {
	return r.size == r.capacity
}

// at returns the i-th reading counted back from the newest (0 is newest).
func (r *ring) at(i int) []float64 {
	return r.data[(r.writePos-1-i+2*r.capacity)%r.capacity]
}

// channels returns the buffered readings oldest first, channel-major, with
// room for extra more readings per channel.
func (r *ring) channels(extra int) [][]float64 {
	n := len(r.data[0])
	out := make([][]float64, n)
	for c := range out {
		out[c] = make([]float64, 0, r.size+extra)
	}
	for i := r.size - 1; i >= 0; i-- {
		reading := r.at(i)
		for c := range out {
			out[c] = append(out[c], reading[c])
		}
	}
	return out
}

func (r *ring) clear() {
	r.size = 0
	r.writePos = 0
}
