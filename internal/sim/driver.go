package sim

import (
	"context"
	"fmt"

	"balancebot/internal/io"
	"balancebot/internal/policy"
	"balancebot/internal/rig"
)

// Driver maps one observation to one wheel torque. Implementations used with
// multi-worker benches must be safe for concurrent use.
type Driver interface {
	Drive(ctx context.Context, angle, rate float64) (float64, error)
}

// DriverFactory builds a fresh driver per episode worker.
type DriverFactory func() (Driver, error)

// NetworkDriver runs the control policy directly, without the component
// registry in the loop. It is stateless and safe for concurrent use.
type NetworkDriver struct {
	net *policy.Network
}

func NewNetworkDriver(net *policy.Network) *NetworkDriver {
	return &NetworkDriver{net: net}
}

func (d *NetworkDriver) Drive(_ context.Context, angle, rate float64) (float64, error) {
	action := d.net.SelectAction(float32(angle), float32(rate))
	return float64(policy.SafeTorque(action)), nil
}

// RigDriver runs the policy through the registered sensor and actuator
// components, exercising the same tick path a hardware deployment would.
// It holds per-instance component state and is not safe for concurrent use.
type RigDriver struct {
	net *policy.Network

	angleSensor io.Sensor
	rateSensor  io.Sensor
	torqueOut   io.Actuator

	angleSet io.ScalarSensorSetter
	rateSet  io.ScalarSensorSetter
}

func NewRigDriver(net *policy.Network, r rig.Rig, env string) (*RigDriver, error) {
	if err := rig.ValidateRegisteredComponents(r, env); err != nil {
		return nil, err
	}

	sensors := r.Sensors()
	if len(sensors) != 2 {
		return nil, fmt.Errorf("rig %s: expected 2 sensors, got %d", r.Name(), len(sensors))
	}
	actuators := r.Actuators()
	if len(actuators) != 1 {
		return nil, fmt.Errorf("rig %s: expected 1 actuator, got %d", r.Name(), len(actuators))
	}

	angleSensor, err := io.ResolveSensor(sensors[0], env)
	if err != nil {
		return nil, err
	}
	rateSensor, err := io.ResolveSensor(sensors[1], env)
	if err != nil {
		return nil, err
	}
	torqueOut, err := io.ResolveActuator(actuators[0], env)
	if err != nil {
		return nil, err
	}

	angleSet, ok := angleSensor.(io.ScalarSensorSetter)
	if !ok {
		return nil, fmt.Errorf("sensor %s is not settable", angleSensor.Name())
	}
	rateSet, ok := rateSensor.(io.ScalarSensorSetter)
	if !ok {
		return nil, fmt.Errorf("sensor %s is not settable", rateSensor.Name())
	}

	return &RigDriver{
		net:         net,
		angleSensor: angleSensor,
		rateSensor:  rateSensor,
		torqueOut:   torqueOut,
		angleSet:    angleSet,
		rateSet:     rateSet,
	}, nil
}

func (d *RigDriver) Drive(ctx context.Context, angle, rate float64) (float64, error) {
	d.angleSet.Set(angle)
	d.rateSet.Set(rate)

	angleValues, err := d.angleSensor.Read(ctx)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", d.angleSensor.Name(), err)
	}
	rateValues, err := d.rateSensor.Read(ctx)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", d.rateSensor.Name(), err)
	}
	if len(angleValues) != 1 || len(rateValues) != 1 {
		return 0, fmt.Errorf("unexpected sensor arity: angle=%d rate=%d", len(angleValues), len(rateValues))
	}

	action := d.net.SelectAction(float32(angleValues[0]), float32(rateValues[0]))
	torque := float64(policy.SafeTorque(action))

	if err := d.torqueOut.Write(ctx, []float64{torque}); err != nil {
		return 0, fmt.Errorf("write %s: %w", d.torqueOut.Name(), err)
	}
	return torque, nil
}
