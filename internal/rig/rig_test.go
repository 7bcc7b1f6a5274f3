package rig

import (
	"testing"

	"balancebot/internal/io"
)

func TestTwoWheelBalancerRigShape(t *testing.T) {
	r := NewTwoWheelBalancerRig()

	if r.Name() != TwoWheelBalancerRigName {
		t.Fatalf("unexpected rig name: %s", r.Name())
	}

	sensors := r.Sensors()
	if len(sensors) != 2 || sensors[0] != io.TiltAngleSensorName || sensors[1] != io.TiltRateSensorName {
		t.Fatalf("unexpected sensors: %v", sensors)
	}

	actuators := r.Actuators()
	if len(actuators) != 1 || actuators[0] != io.MotorTorqueActuatorName {
		t.Fatalf("unexpected actuators: %v", actuators)
	}
}

func TestRigCompatibility(t *testing.T) {
	r := NewTwoWheelBalancerRig()

	if err := r.Compatible(io.BalanceBenchEnvName); err != nil {
		t.Fatalf("expected bench compatibility, got=%v", err)
	}
	if err := r.Compatible("cartpole-classic"); err == nil {
		t.Fatal("expected foreign env to be rejected")
	}
}

func TestValidateRegisteredComponents(t *testing.T) {
	r := NewTwoWheelBalancerRig()

	if err := ValidateRegisteredComponents(r, io.BalanceBenchEnvName); err != nil {
		t.Fatalf("expected shipped components to validate, got=%v", err)
	}
	if err := ValidateRegisteredComponents(r, "cartpole-classic"); err == nil {
		t.Fatal("expected validation to fail for foreign env")
	}
}
