package game

// scriptedRand replays fixed draws in order, cycling when exhausted.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

func newTestCourt(floats ...float64) *Court {
	return NewCourt(StandardPhysics(), &scriptedRand{floats: floats})
}
