package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscretize(t *testing.T) {
	court := newTestCourt()

	t.Run("serve state", func(t *testing.T) {
		got := court.Discretize(court.Serve())
		require.Equal(t, DiscreteState{BallX: 6, BallY: 6, VelocityX: 1, VelocityY: 0, Paddle: 7}, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		state := State{BallX: 0.37, BallY: 0.81, VelocityX: -0.2, VelocityY: 0.4, PaddleY: 0.33}
		require.Equal(t, court.Discretize(state), court.Discretize(state))
	})
}

func TestPositionCell(t *testing.T) {
	physics := StandardPhysics()

	t.Run("edges saturate", func(t *testing.T) {
		require.Equal(t, 1, physics.cell(0), "Exactly 0 should be the first cell")
		require.Equal(t, 12, physics.cell(1), "Exactly 1 should be the last cell")
		require.Equal(t, 12, physics.cell(1.4), "Anything above 1 should be the last cell")
		require.Equal(t, 1, physics.cell(-0.2), "Negative positions should be the first cell")
	})

	t.Run("cells partition the court", func(t *testing.T) {
		width := 1.0 / 12
		for i := 1; i <= 12; i++ {
			low := float64(i-1) * width
			high := float64(i) * width
			require.Equal(t, i, physics.cell(low+width*0.01), "just above the lower edge of cell %d", i)
			require.Equal(t, i, physics.cell((low+high)/2), "middle of cell %d", i)
			require.Equal(t, i, physics.cell(high-width*0.01), "just below the upper edge of cell %d", i)
		}
	})
}

func TestVelocityBuckets(t *testing.T) {
	physics := StandardPhysics()

	require.Equal(t, 1, signBucket(0), "Zero horizontal velocity counts as positive")
	require.Equal(t, 1, signBucket(0.03))
	require.Equal(t, -1, signBucket(-0.001))

	require.Equal(t, 0, physics.velocityBucket(0.015), "Deadband edge should be 0")
	require.Equal(t, 0, physics.velocityBucket(-0.015), "Deadband edge should be 0")
	require.Equal(t, 0, physics.velocityBucket(0))
	require.Equal(t, 1, physics.velocityBucket(0.016))
	require.Equal(t, -1, physics.velocityBucket(-0.016))
}

func TestPaddleBucket(t *testing.T) {
	physics := StandardPhysics()

	require.Equal(t, 11, physics.paddleBucket(0.8), "Top position should be the top bucket")
	require.Equal(t, 11, physics.paddleBucket(0.95), "Above the top should still be the top bucket")
	require.Equal(t, 0, physics.paddleBucket(0))
	require.Equal(t, 6, physics.paddleBucket(0.45))
	require.Equal(t, 11, physics.paddleBucket(0.79))

	for py := 0.0; py <= 1.0; py += 0.005 {
		bucket := physics.paddleBucket(py)
		require.GreaterOrEqual(t, bucket, 0)
		require.LessOrEqual(t, bucket, 11)
	}
}

func TestPhysics(t *testing.T) {
	t.Run("standard physics is valid", func(t *testing.T) {
		physics := StandardPhysics()
		require.NoError(t, physics.Validate())
		require.Equal(t, 10368, physics.StateSpace())
	})

	t.Run("invalid values are all reported", func(t *testing.T) {
		physics := StandardPhysics()
		physics.PaddleHeight = 0
		physics.GridSize = 0

		err := physics.Validate()

		require.Error(t, err)
		require.Contains(t, err.Error(), "paddle height")
		require.Contains(t, err.Error(), "grid size")
	})
}

func TestRender(t *testing.T) {
	court := newTestCourt()

	out := court.Render(court.Serve())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 12+3, "Board should have a border, one line per row and a status line")
	require.Contains(t, out, "o", "Ball should be drawn")
	require.Contains(t, out, "#", "Paddle should be drawn")
	require.Contains(t, out, "paddle=0.500")
}
