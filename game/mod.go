package game

// Rand is the source of randomness for contact perturbation and action sampling.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Reward is the outcome of a single time step.
type Reward int

const (
	None    Reward = 0  // Ball still in flight
	Contact Reward = 1  // Ball struck the paddle
	Miss    Reward = -1 // Ball passed the paddle, game over
)

func (r Reward) Terminal() bool {
	return r == Miss
}

func (r Reward) String() string {
	switch r {
	case None:
		return "none"
	case Contact:
		return "contact"
	case Miss:
		return "miss"
	default:
		return "unknown"
	}
}

// Uniform draws a float uniformly from [low, high).
func Uniform(rng Rand, low, high float64) float64 {
	return low + (high-low)*rng.Float64()
}
