package io

import (
	"context"
	"fmt"
	"sync"
)

const (
	TiltAngleSensorName     = "tilt_angle"
	TiltRateSensorName      = "tilt_rate"
	MotorTorqueActuatorName = "motor_torque"
)

// ScalarInputSensor is a single-value sensor the bench can set between ticks.
type ScalarInputSensor struct {
	name string

	mu    sync.RWMutex
	value float64
}

func NewScalarInputSensor(name string, initial float64) *ScalarInputSensor {
	return &ScalarInputSensor{name: name, value: initial}
}

func (s *ScalarInputSensor) Name() string {
	return s.name
}

func (s *ScalarInputSensor) Read(_ context.Context) ([]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return []float64{s.value}, nil
}

func (s *ScalarInputSensor) Set(value float64) {
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
}

// ScalarOutputActuator records the last written values for snapshotting.
type ScalarOutputActuator struct {
	name string

	mu   sync.RWMutex
	last []float64
}

func NewScalarOutputActuator(name string) *ScalarOutputActuator {
	return &ScalarOutputActuator{name: name}
}

func (a *ScalarOutputActuator) Name() string {
	return a.name
}

func (a *ScalarOutputActuator) Write(_ context.Context, values []float64) error {
	a.mu.Lock()
	a.last = append([]float64(nil), values...)
	a.mu.Unlock()
	return nil
}

func (a *ScalarOutputActuator) Last() []float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]float64(nil), a.last...)
}

func init() {
	initializeDefaultComponents()
}

func initializeDefaultComponents() {
	balanceBenchOnly := func(env string) error {
		if env != BalanceBenchEnvName {
			return fmt.Errorf("unsupported env: %s", env)
		}
		return nil
	}

	for _, name := range []string{TiltAngleSensorName, TiltRateSensorName} {
		err := RegisterSensorWithSpec(SensorSpec{
			Name:          name,
			Factory:       func() Sensor { return NewScalarInputSensor(name, 0) },
			SchemaVersion: SupportedSchemaVersion,
			CodecVersion:  SupportedCodecVersion,
			Compatible:    balanceBenchOnly,
		})
		if err != nil {
			panic(err)
		}
	}

	err := RegisterActuatorWithSpec(ActuatorSpec{
		Name:          MotorTorqueActuatorName,
		Factory:       func() Actuator { return NewScalarOutputActuator(MotorTorqueActuatorName) },
		SchemaVersion: SupportedSchemaVersion,
		CodecVersion:  SupportedCodecVersion,
		Compatible:    balanceBenchOnly,
	})
	if err != nil {
		panic(err)
	}
}
