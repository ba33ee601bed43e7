package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input  string
		want   Severity
		wantOK bool
	}{
		{"off", SeverityOff, true},
		{"0", SeverityOff, true},
		{"warn", SeverityWarn, true},
		{"Warning", SeverityWarn, true},
		{"1", SeverityWarn, true},
		{"ERROR", SeverityError, true},
		{" 2 ", SeverityError, true},
		{"fatal", SeverityOff, false},
		{"", SeverityOff, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSeverity(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverityText(t *testing.T) {
	text, err := SeverityWarn.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "warn", string(text))

	_, err = Severity(7).MarshalText()
	require.Error(t, err)

	var s Severity
	require.NoError(t, s.UnmarshalText([]byte("error")))
	assert.Equal(t, SeverityError, s)

	err = s.UnmarshalText([]byte("loud"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestSeverityFromInt(t *testing.T) {
	s, ok := SeverityFromInt(2)
	assert.True(t, ok)
	assert.Equal(t, SeverityError, s)

	_, ok = SeverityFromInt(3)
	assert.False(t, ok)
	_, ok = SeverityFromInt(-1)
	assert.False(t, ok)
}

func TestRuleSettingString(t *testing.T) {
	assert.Equal(t, "off", Off().String())
	assert.Equal(t, "warn", Warn().String())

	withOpts := RuleSetting{Severity: SeverityError, Options: []any{"always"}}
	assert.Equal(t, "error [always]", withOpts.String())
}
