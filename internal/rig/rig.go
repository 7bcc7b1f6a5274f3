package rig

import (
	"fmt"

	"balancebot/internal/io"
)

// Rig describes the physical interface of a robot body: which sensors feed
// the policy and which actuators it drives.
type Rig interface {
	Name() string
	Sensors() []string
	Actuators() []string
	Compatible(env string) error
}

const TwoWheelBalancerRigName = "two-wheel-balancer-v1"

// TwoWheelBalancerRig is the shipped balancing robot body: a tilt angle
// sensor, a tilt rate sensor, and a single wheel torque actuator.
type TwoWheelBalancerRig struct{}

func NewTwoWheelBalancerRig() *TwoWheelBalancerRig {
	return &TwoWheelBalancerRig{}
}

func (r *TwoWheelBalancerRig) Name() string {
	return TwoWheelBalancerRigName
}

func (r *TwoWheelBalancerRig) Sensors() []string {
	return []string{io.TiltAngleSensorName, io.TiltRateSensorName}
}

func (r *TwoWheelBalancerRig) Actuators() []string {
	return []string{io.MotorTorqueActuatorName}
}

func (r *TwoWheelBalancerRig) Compatible(env string) error {
	if env != io.BalanceBenchEnvName {
		return fmt.Errorf("rig %s does not support env %s", r.Name(), env)
	}
	return nil
}

// ValidateRegisteredComponents checks that every sensor and actuator the rig
// names can be resolved from the component registry for the given env.
func ValidateRegisteredComponents(r Rig, env string) error {
	if err := r.Compatible(env); err != nil {
		return err
	}
	for _, name := range r.Sensors() {
		if _, err := io.ResolveSensor(name, env); err != nil {
			return fmt.Errorf("rig %s: %w", r.Name(), err)
		}
	}
	for _, name := range r.Actuators() {
		if _, err := io.ResolveActuator(name, env); err != nil {
			return fmt.Errorf("rig %s: %w", r.Name(), err)
		}
	}
	return nil
}
