package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "arcadehub" {
		t.Errorf("CLIName() = %q, want %q", got, "arcadehub")
	}
	if got := DisplayName(); got != "Arcade Hub" {
		t.Errorf("DisplayName() = %q, want %q", got, "Arcade Hub")
	}
	if got := TeamName(); got != "Arcade Hub Team" {
		t.Errorf("TeamName() = %q, want %q", got, "Arcade Hub Team")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("root"); got != "ARCADEHUB_ROOT" {
		t.Errorf("EnvVar(%q) = %q, want %q", "root", got, "ARCADEHUB_ROOT")
	}
}
