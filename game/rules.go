package game

import (
	"errors"
	"fmt"
)

// Physics holds the constants of the court. Positions live in the unit square,
// the paddle sits on the line x = 1 and extends PaddleHeight upwards from PaddleY.
type Physics struct {
	PaddleHeight float64 `yaml:"paddle_height"`
	PaddleMax    float64 `yaml:"paddle_max"`  // Paddle position is clamped to [0, PaddleMax]
	PaddleStep   float64 `yaml:"paddle_step"` // Distance moved by Up and Down

	JitterX      float64 `yaml:"jitter_x"` // Contact perturbation of vx is drawn from [-JitterX, JitterX]
	JitterY      float64 `yaml:"jitter_y"` // Contact perturbation of vy is drawn from [-JitterY, JitterY]
	MinVelocityX float64 `yaml:"min_velocity_x"`
	MaxVelocity  float64 `yaml:"max_velocity"`

	GridSize      int     `yaml:"grid_size"`      // Cells per axis for ball position
	PaddleBuckets int     `yaml:"paddle_buckets"` // Buckets for paddle position
	Deadband      float64 `yaml:"deadband"`       // |vy| at or below it discretizes to 0

	Serve State `yaml:"serve"`
}

func (p *Physics) delta(a Action) float64 {
	switch a {
	case Up:
		return p.PaddleStep
	case Down:
		return -p.PaddleStep
	default:
		return 0
	}
}

// StateSpace is the number of distinct discretized states.
func (p *Physics) StateSpace() int {
	return p.GridSize * p.GridSize * 2 * 3 * p.PaddleBuckets
}

func (p *Physics) Validate() error {
	var errs []error
	if p.PaddleHeight <= 0 || p.PaddleHeight > 1 {
		errs = append(errs, fmt.Errorf("paddle height %v outside (0, 1]", p.PaddleHeight))
	}
	if p.PaddleMax < 0 || p.PaddleMax > 1 {
		errs = append(errs, fmt.Errorf("paddle max %v outside [0, 1]", p.PaddleMax))
	}
	if p.MinVelocityX <= 0 || p.MinVelocityX > p.MaxVelocity {
		errs = append(errs, fmt.Errorf("min velocity x %v outside (0, %v]", p.MinVelocityX, p.MaxVelocity))
	}
	if p.MaxVelocity > 1 {
		// Larger steps could leave the unit square after a single reflection
		errs = append(errs, fmt.Errorf("max velocity %v above 1", p.MaxVelocity))
	}
	if p.GridSize <= 0 || p.PaddleBuckets <= 0 {
		errs = append(errs, fmt.Errorf("grid size %d and paddle buckets %d must be positive", p.GridSize, p.PaddleBuckets))
	}
	if p.JitterX < 0 || p.JitterY < 0 || p.Deadband < 0 {
		errs = append(errs, errors.New("jitter and deadband must not be negative"))
	}
	if p.Serve.VelocityX == 0 {
		errs = append(errs, errors.New("serve velocity x must not be zero"))
	}
	return errors.Join(errs...)
}
