package io

import "context"

type Sensor interface {
	Name() string
	Read(ctx context.Context) ([]float64, error)
}

// ScalarSensorSetter is an optional sensor capability used by the bench to
// drive scalar observations into concrete rig components.
type ScalarSensorSetter interface {
	Set(value float64)
}

type Actuator interface {
	Name() string
	Write(ctx context.Context, values []float64) error
}

// SnapshotActuator is an optional actuator capability used by the bench to
// inspect the most recent actuator output.
type SnapshotActuator interface {
	Last() []float64
}
