package game

import (
	"fmt"
	"math"

	"pong/utils"
)

// State is the continuous state of one rally. It is a plain value: copying it
// yields an independent state, which the learner relies on for lookahead.
type State struct {
	BallX     float64 `yaml:"ball_x" json:"ball_x"`
	BallY     float64 `yaml:"ball_y" json:"ball_y"`
	VelocityX float64 `yaml:"velocity_x" json:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y" json:"velocity_y"`
	PaddleY   float64 `yaml:"paddle_y" json:"paddle_y"`
}

func (s State) String() string {
	return fmt.Sprintf("ball=(%.3f, %.3f) velocity=(%.3f, %.3f) paddle=%.3f",
		s.BallX, s.BallY, s.VelocityX, s.VelocityY, s.PaddleY)
}

// Court advances states under a fixed set of physics.
type Court struct {
	physics *Physics
	rng     Rand
}

func NewCourt(physics *Physics, rng Rand) *Court {
	if physics == nil {
		physics = StandardPhysics()
	}
	if err := physics.Validate(); err != nil {
		panic(fmt.Sprintf("invalid physics: %v", err))
	}
	if rng == nil {
		panic("court needs a random source")
	}
	return &Court{physics: physics, rng: rng}
}

func (c *Court) Physics() *Physics {
	return c.physics
}

// Serve returns the state every game starts from.
func (c *Court) Serve() State {
	return c.physics.Serve
}

// Step applies action a to s in place and reports what happened to the ball.
// A Miss is terminal: the ball is left past the paddle line.
func (c *Court) Step(s *State, a Action) Reward {
	c.movePaddle(s, c.physics.delta(a))
	s.BallX += s.VelocityX
	s.BallY += s.VelocityY
	return c.resolve(s)
}

// Next is the hypothetical version of Step: s is left untouched.
func (c *Court) Next(s State, a Action) (State, Reward) {
	reward := c.Step(&s, a)
	return s, reward
}

// Covers reports whether the paddle span contains the ball's height.
func (c *Court) Covers(s State) bool {
	return s.PaddleY <= s.BallY && s.BallY <= s.PaddleY+c.physics.PaddleHeight
}

// Missed reports whether the ball has crossed the paddle line unopposed.
func (c *Court) Missed(s State) bool {
	return s.BallX > 1 && !c.Covers(s)
}

func (c *Court) movePaddle(s *State, dy float64) {
	s.PaddleY = utils.Clamp(s.PaddleY+dy, 0, c.physics.PaddleMax)
}

func (c *Court) resolve(s *State) Reward {
	reflectY(s)

	if s.BallX < 0 { // Far wall
		s.BallX = -s.BallX
		s.VelocityX = -s.VelocityX
	} else if s.BallX >= 1 {
		if !c.Covers(*s) {
			return Miss
		}
		c.bounce(s)
		return Contact
	}
	return None
}

func reflectY(s *State) {
	if s.BallY < 0 {
		s.BallY = -s.BallY
		s.VelocityY = -s.VelocityY
	} else if s.BallY > 1 {
		s.BallY = 2 - s.BallY
		s.VelocityY = -s.VelocityY
	}
}

// bounce sends the ball back with a perturbed velocity.
func (c *Court) bounce(s *State) {
	p := c.physics
	s.VelocityX = -s.VelocityX + Uniform(c.rng, -p.JitterX, p.JitterX)
	s.VelocityY = s.VelocityY + Uniform(c.rng, -p.JitterY, p.JitterY)

	if math.Abs(s.VelocityX) < p.MinVelocityX {
		s.VelocityX = math.Copysign(p.MinVelocityX, s.VelocityX)
	}
	if math.Abs(s.VelocityX) > p.MaxVelocity {
		s.VelocityX = math.Copysign(p.MaxVelocity, s.VelocityX)
	}
	if math.Abs(s.VelocityY) > p.MaxVelocity {
		s.VelocityY = math.Copysign(p.MaxVelocity, s.VelocityY)
	}
}
