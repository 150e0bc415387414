package ecs_test

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Health struct {
	Current, Max int
}

type Label string
