package validation

import (
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle("Morning run"); err != nil {
		t.Errorf("ValidateTitle(valid) = %v", err)
	}
	if err := ValidateTitle("   "); err == nil {
		t.Error("ValidateTitle(blank) = nil, want error")
	}
	if err := ValidateTitle(strings.Repeat("a", 201)); err == nil {
		t.Error("ValidateTitle(too long) = nil, want error")
	}
}

func TestValidatePriority(t *testing.T) {
	for _, p := range []string{"", "high", "medium", "low"} {
		if err := ValidatePriority(p); err != nil {
			t.Errorf("ValidatePriority(%q) = %v", p, err)
		}
	}
	if err := ValidatePriority("urgent"); err == nil {
		t.Error("ValidatePriority(urgent) = nil, want error")
	}
}

func TestValidateGoalType(t *testing.T) {
	for _, g := range []string{"", "percentage", "number"} {
		if err := ValidateGoalType(g); err != nil {
			t.Errorf("ValidateGoalType(%q) = %v", g, err)
		}
	}
	if err := ValidateGoalType("steps"); err == nil {
		t.Error("ValidateGoalType(steps) = nil, want error")
	}
}

func TestValidateMetricType(t *testing.T) {
	for _, m := range []string{"sleep", "steps", "water", "weight", "calories", "heart_rate"} {
		if err := ValidateMetricType(m); err != nil {
			t.Errorf("ValidateMetricType(%q) = %v", m, err)
		}
	}
	if err := ValidateMetricType(""); err == nil {
		t.Error("ValidateMetricType(empty) = nil, want error")
	}
	if err := ValidateMetricType("mood"); err == nil {
		t.Error("ValidateMetricType(mood) = nil, want error")
	}
}
