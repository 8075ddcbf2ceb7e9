package dictmatch_test

import (
	"testing"

	"github.com/AndreyAkinshin/dictmatch/internal/errors"
	"github.com/AndreyAkinshin/dictmatch/pkg/dictmatch"
)

// TestExitCodeConsistency verifies that public exit code constants match
// the internal errors package constants.
func TestExitCodeConsistency(t *testing.T) {
	tests := []struct {
		name     string
		public   int
		internal int
	}{
		{"Success", dictmatch.ExitSuccess, errors.ExitSuccess},
		{"AssertionFailed", dictmatch.ExitAssertionFailed, errors.ExitAssertionFailed},
		{"ConfigError", dictmatch.ExitConfigError, errors.ExitConfigError},
		{"RuntimeError", dictmatch.ExitRuntimeError, errors.ExitRuntimeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.public != tt.internal {
				t.Errorf("exit code mismatch: dictmatch constant = %d, errors constant = %d",
					tt.public, tt.internal)
			}
		})
	}
}
