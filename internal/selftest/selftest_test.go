// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package selftest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAllChecksPass(t *testing.T) {
	var buf bytes.Buffer
	res := Run(&buf)

	require.True(t, res.OK(), "self-test output:\n%s", buf.String())
	assert.Equal(t, len(checks), res.Passed)
	assert.Zero(t, res.Failed)
	assert.Equal(t, len(checks), res.Total())
}

func TestRunOutput(t *testing.T) {
	var buf bytes.Buffer
	res := Run(&buf)
	out := buf.String()

	assert.Equal(t, res.Total(), strings.Count(out, "ok   ")+strings.Count(out, "FAIL "))
	assert.Contains(t, out, "ok   pressure 100 psi -> bar")
	assert.Contains(t, out, "ok   temperature 212 f -> c")
	assert.Contains(t, out, "ok   flow 1 gpm -> lpm")
	assert.Contains(t, out, "Self-test summary: 9 passed, 0 failed (total: 9)")
	assert.NotContains(t, out, "FAIL")
}

func TestResultCounters(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		ok   bool
	}{
		{"all passed", Result{Passed: 9}, true},
		{"one failure", Result{Passed: 8, Failed: 1}, false},
		{"empty run", Result{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.res.OK())
			assert.Equal(t, tt.res.Passed+tt.res.Failed, tt.res.Total())
		})
	}
}
