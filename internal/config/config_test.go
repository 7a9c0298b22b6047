package config

import (
	"testing"
)

func TestEnvString(t *testing.T) {
	t.Setenv("PULSE_TEST_KEY", "set")

	if got := envString("PULSE_TEST_KEY", "def"); got != "set" {
		t.Errorf("envString: got %q, want %q", got, "set")
	}
	if got := envString("PULSE_TEST_MISSING", "def"); got != "def" {
		t.Errorf("envString default: got %q, want %q", got, "def")
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"true", false, true},
		{"false", true, false},
		{"1", false, true},
		{"0", true, false},
		{"", true, true},
		{"nonsense", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("PULSE_TEST_BOOL", tt.value)
			if got := envBool("PULSE_TEST_BOOL", tt.def); got != tt.want {
				t.Errorf("envBool(%q, %v): got %v, want %v", tt.value, tt.def, got, tt.want)
			}
		})
	}
}

func TestEnvironmentPredicates(t *testing.T) {
	dev := &Config{AppEnv: "development"}
	if !dev.IsDevelopment() || dev.IsProduction() {
		t.Error("development env misclassified")
	}

	prod := &Config{AppEnv: "production"}
	if !prod.IsProduction() || prod.IsDevelopment() {
		t.Error("production env misclassified")
	}
}
