package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/programmerjake/quick-shell/internal/pretty"
)

func TestNewStylesNoColorIsUnstyled(t *testing.T) {
	styles := pretty.NewStyles(false)
	if got, want := styles.Error.Render("x"), "x"; got != want {
		t.Errorf("no-color Error.Render(%q) = %q, want %q", "x", got, want)
	}
	if got, want := styles.Bold.Render("x"), "x"; got != want {
		t.Errorf("no-color Bold.Render(%q) = %q, want %q", "x", got, want)
	}
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		name string
		mode string
		w    *bytes.Buffer
		noColorEnv string
		want bool
	}{
		{"always wins over non-tty", "always", &buf, "", true},
		{"never disables color", "never", &buf, "", false},
		{"auto on non-tty is disabled", "auto", &buf, "", false},
		{"unknown mode behaves like auto", "bogus", &buf, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColorEnv)
			if got := pretty.IsColorEnabled(tt.mode, tt.w); got != tt.want {
				t.Errorf("IsColorEnabled(%q, buf) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestIsColorEnabledAutoRespectsNoColorEvenOnATerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if pretty.IsColorEnabled("auto", os.Stdout) {
		t.Error("auto mode with NO_COLOR set should disable color even when the writer is a terminal")
	}
}
