package game

// StandardPhysics returns the court of the original assignment.
func StandardPhysics() *Physics {
	return &Physics{
		PaddleHeight:  0.2,
		PaddleMax:     0.8,
		PaddleStep:    0.04,
		JitterX:       0.015,
		JitterY:       0.03,
		MinVelocityX:  0.03,
		MaxVelocity:   1,
		GridSize:      12,
		PaddleBuckets: 12,
		Deadband:      0.015,
		Serve: State{
			BallX:     0.5,
			BallY:     0.5,
			VelocityX: 0.03,
			VelocityY: 0.01,
			PaddleY:   0.5,
		},
	}
}
