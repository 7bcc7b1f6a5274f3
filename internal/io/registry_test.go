package io

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestDefaultComponentsRegistered(t *testing.T) {
	resetRegistriesForTests()

	sensors := ListSensorsForEnv(BalanceBenchEnvName)
	wantSensors := []string{TiltAngleSensorName, TiltRateSensorName}
	if !reflect.DeepEqual(sensors, wantSensors) {
		t.Fatalf("sensors: got=%v want=%v", sensors, wantSensors)
	}

	actuators := ListActuatorsForEnv(BalanceBenchEnvName)
	wantActuators := []string{MotorTorqueActuatorName}
	if !reflect.DeepEqual(actuators, wantActuators) {
		t.Fatalf("actuators: got=%v want=%v", actuators, wantActuators)
	}
}

func TestResolveSensorReturnsFreshInstances(t *testing.T) {
	resetRegistriesForTests()

	first, err := ResolveSensor(TiltAngleSensorName, BalanceBenchEnvName)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := ResolveSensor(TiltAngleSensorName, BalanceBenchEnvName)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct sensor instances per resolve")
	}

	setter, ok := first.(ScalarSensorSetter)
	if !ok {
		t.Fatalf("sensor %T does not support Set", first)
	}
	setter.Set(0.25)

	values, err := first.Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(values) != 1 || values[0] != 0.25 {
		t.Fatalf("unexpected read: %v", values)
	}

	// The second instance must not see the first instance's value.
	values, err = second.Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(values) != 1 || values[0] != 0 {
		t.Fatalf("instances share state: %v", values)
	}
}

func TestResolveUnknownComponents(t *testing.T) {
	resetRegistriesForTests()

	if _, err := ResolveSensor("no-such-sensor", BalanceBenchEnvName); !errors.Is(err, ErrSensorNotFound) {
		t.Fatalf("expected sensor not-found, got=%v", err)
	}
	if _, err := ResolveActuator("no-such-actuator", BalanceBenchEnvName); !errors.Is(err, ErrActuatorNotFound) {
		t.Fatalf("expected actuator not-found, got=%v", err)
	}
	if _, err := ResolveActuator("", BalanceBenchEnvName); !errors.Is(err, ErrActuatorNotFound) {
		t.Fatalf("expected empty-name lookup to fail, got=%v", err)
	}
}

func TestResolveRejectsForeignEnv(t *testing.T) {
	resetRegistriesForTests()

	if _, err := ResolveSensor(TiltAngleSensorName, "cartpole-classic"); !errors.Is(err, ErrIncompatible) {
		t.Fatalf("expected incompatibility error, got=%v", err)
	}
	if _, err := ResolveActuator(MotorTorqueActuatorName, "cartpole-classic"); !errors.Is(err, ErrIncompatible) {
		t.Fatalf("expected incompatibility error, got=%v", err)
	}
	if names := ListSensorsForEnv("cartpole-classic"); len(names) != 0 {
		t.Fatalf("expected no sensors for foreign env, got=%v", names)
	}
}

func TestActuatorAliasResolution(t *testing.T) {
	resetRegistriesForTests()

	for _, alias := range []string{"torque", "wheel_torque", "MOTOR", " motor_torque "} {
		actuator, err := ResolveActuator(alias, BalanceBenchEnvName)
		if err != nil {
			t.Fatalf("resolve alias %q: %v", alias, err)
		}
		if actuator.Name() != MotorTorqueActuatorName {
			t.Fatalf("alias %q: got=%s want=%s", alias, actuator.Name(), MotorTorqueActuatorName)
		}
	}
}

func TestRegisterValidation(t *testing.T) {
	resetRegistriesForTests()

	if err := RegisterSensorWithSpec(SensorSpec{}); err == nil {
		t.Fatal("expected missing name error")
	}
	if err := RegisterSensorWithSpec(SensorSpec{Name: "x"}); err == nil {
		t.Fatal("expected missing factory error")
	}

	badVersion := SensorSpec{
		Name:          "x",
		Factory:       func() Sensor { return NewScalarInputSensor("x", 0) },
		SchemaVersion: SupportedSchemaVersion + 1,
		CodecVersion:  SupportedCodecVersion,
	}
	if err := RegisterSensorWithSpec(badVersion); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected version mismatch, got=%v", err)
	}

	duplicate := SensorSpec{
		Name:          TiltAngleSensorName,
		Factory:       func() Sensor { return NewScalarInputSensor(TiltAngleSensorName, 0) },
		SchemaVersion: SupportedSchemaVersion,
		CodecVersion:  SupportedCodecVersion,
	}
	if err := RegisterSensorWithSpec(duplicate); !errors.Is(err, ErrSensorExists) {
		t.Fatalf("expected duplicate error, got=%v", err)
	}

	dupActuator := ActuatorSpec{
		Name:          MotorTorqueActuatorName,
		Factory:       func() Actuator { return NewScalarOutputActuator(MotorTorqueActuatorName) },
		SchemaVersion: SupportedSchemaVersion,
		CodecVersion:  SupportedCodecVersion,
	}
	if err := RegisterActuatorWithSpec(dupActuator); !errors.Is(err, ErrActuatorExists) {
		t.Fatalf("expected duplicate error, got=%v", err)
	}
}

func TestActuatorSnapshot(t *testing.T) {
	resetRegistriesForTests()

	actuator, err := ResolveActuator(MotorTorqueActuatorName, BalanceBenchEnvName)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	snap, ok := actuator.(SnapshotActuator)
	if !ok {
		t.Fatalf("actuator %T does not support Last", actuator)
	}
	if last := snap.Last(); len(last) != 0 {
		t.Fatalf("expected empty initial snapshot, got=%v", last)
	}

	if err := actuator.Write(context.Background(), []float64{-1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := actuator.Write(context.Background(), []float64{1}); err != nil {
		t.Fatalf("write: %v", err)
	}

	last := snap.Last()
	if len(last) != 1 || last[0] != 1 {
		t.Fatalf("unexpected snapshot: %v", last)
	}

	// The snapshot is a copy; mutating it must not leak back.
	last[0] = 42
	if again := snap.Last(); again[0] != 1 {
		t.Fatalf("snapshot aliases internal state: %v", again)
	}
}

func TestEnvScopedRegistration(t *testing.T) {
	resetRegistriesForTests()

	spec := SensorSpec{
		Name:          "test_probe",
		Factory:       func() Sensor { return NewScalarInputSensor("test_probe", 0) },
		SchemaVersion: SupportedSchemaVersion,
		CodecVersion:  SupportedCodecVersion,
		Compatible: func(env string) error {
			if env != "lab-rig" {
				return fmt.Errorf("unsupported env: %s", env)
			}
			return nil
		},
	}
	if err := RegisterSensorWithSpec(spec); err != nil {
		t.Fatalf("register: %v", err)
	}
	t.Cleanup(resetRegistriesForTests)

	if _, err := ResolveSensor("test_probe", "lab-rig"); err != nil {
		t.Fatalf("resolve for lab-rig: %v", err)
	}
	if _, err := ResolveSensor("test_probe", BalanceBenchEnvName); !errors.Is(err, ErrIncompatible) {
		t.Fatalf("expected incompatibility error, got=%v", err)
	}
}
