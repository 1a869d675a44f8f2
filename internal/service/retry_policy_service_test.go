package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateRetryPolicy(t *testing.T) {
	policy := NewRetryPolicyService()

	tests := []struct {
		name     string
		score    float64
		passed   bool
		cooldown int
	}{
		{"exactly passing", 70.0, true, 0},
		{"perfect score", 100.0, true, 0},
		{"just below passing", 69.99, false, 7},
		{"mid-range failure", 50.0, false, 7},
		{"just below the low boundary", 49.99, false, 14},
		{"zero score", 0.0, false, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := policy.Evaluate(tt.score)
			assert.Equal(t, tt.passed, outcome.Passed)
			assert.Equal(t, tt.cooldown, outcome.CooldownDays)
		})
	}
}
