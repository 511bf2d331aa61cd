package config

import (
	"log/slog"
	"os"
	"strings"
)

// Missing-requirement policy for the school score filter. A school that does
// not list a requirement for the filtered score type either stays in the
// result set (PASS) or is dropped (FAIL).
const (
	MissingRequirementPass = "PASS"
	MissingRequirementFail = "FAIL"
)

var MissingRequirementPolicy = MissingRequirementPass

// LoadFilterPolicy reads MISSING_REQUIREMENT_POLICY from the environment.
// Anything other than FAIL keeps the permissive default.
func LoadFilterPolicy() {
	v := strings.ToUpper(strings.TrimSpace(os.Getenv("MISSING_REQUIREMENT_POLICY")))
	if v == MissingRequirementFail {
		MissingRequirementPolicy = MissingRequirementFail
	} else if v != "" && v != MissingRequirementPass {
		slog.Warn("Unknown MISSING_REQUIREMENT_POLICY value, falling back to PASS", "value", v)
	}
	slog.Info("School filter policy loaded", "missing_requirement", MissingRequirementPolicy)
}
