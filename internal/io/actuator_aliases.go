package io

import "strings"

// actuatorAliases maps legacy and shorthand actuator names onto the
// registered canonical names.
var actuatorAliases = map[string]string{
	"torque":       MotorTorqueActuatorName,
	"wheel_torque": MotorTorqueActuatorName,
	"motor":        MotorTorqueActuatorName,
}

// CanonicalActuatorName resolves aliases to the registered actuator name.
// Unknown names pass through unchanged.
func CanonicalActuatorName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := actuatorAliases[key]; ok {
		return canonical
	}
	return key
}
