package game

import (
	"fmt"
	"math"

	"pong/utils"
)

// DiscreteState is the grid cell a continuous State falls into. It is
// comparable and serves as the value table key.
type DiscreteState struct {
	BallX     int `json:"bx"` // 1..GridSize
	BallY     int `json:"by"` // 1..GridSize
	VelocityX int `json:"vx"` // -1 or 1
	VelocityY int `json:"vy"` // -1, 0 or 1
	Paddle    int `json:"py"` // 0..PaddleBuckets-1
}

func (d DiscreteState) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d, %d)", d.BallX, d.BallY, d.VelocityX, d.VelocityY, d.Paddle)
}

func (c *Court) Discretize(s State) DiscreteState {
	p := c.physics
	return DiscreteState{
		BallX:     p.cell(s.BallX),
		BallY:     p.cell(s.BallY),
		VelocityX: signBucket(s.VelocityX),
		VelocityY: p.velocityBucket(s.VelocityY),
		Paddle:    p.paddleBucket(s.PaddleY),
	}
}

// cell saturates: positions at or below 0 fall into cell 1, above 1 into the last cell.
func (p *Physics) cell(pos float64) int {
	if pos <= 0 {
		return 1
	}
	if pos > 1 {
		return p.GridSize
	}
	width := 1.0 / float64(p.GridSize)
	return utils.Clamp(int(math.Ceil(pos/width)), 1, p.GridSize)
}

func signBucket(vx float64) int {
	if vx >= 0 {
		return 1
	}
	return -1
}

func (p *Physics) velocityBucket(vy float64) int {
	switch {
	case vy > p.Deadband:
		return 1
	case vy < -p.Deadband:
		return -1
	default:
		return 0
	}
}

func (p *Physics) paddleBucket(py float64) int {
	top := p.PaddleBuckets - 1
	if py >= p.PaddleMax {
		return top
	}
	bucket := int(math.Floor(float64(p.PaddleBuckets) * py / p.PaddleMax))
	return utils.Clamp(bucket, 0, top)
}
