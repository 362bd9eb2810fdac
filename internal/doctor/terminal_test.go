package doctor

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLayoutWidthCheck(t *testing.T) {
	path := writeConfig(t, "steps: 4\n")

	tests := []struct {
		name  string
		width int
		want  CheckStatus
	}{
		{name: "not a terminal", width: 0, want: StatusWarn},
		{name: "roomy", width: 80, want: StatusPass},
		// (12-2)/3-2 = 1
		{name: "cramped", width: 12, want: StatusWarn},
		// (8-2)/3-2 = 0
		{name: "too narrow", width: 8, want: StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := (&LayoutWidthCheck{ConfigPath: path, Width: tt.width}).Run()
			assert.Equal(t, tt.want, result.Status, result.Message)
		})
	}
}

func TestLayoutWidthCheckInvalidConfig(t *testing.T) {
	path := writeConfig(t, "steps: 1\n")

	result := (&LayoutWidthCheck{ConfigPath: path, Width: 80}).Run()
	assert.Equal(t, StatusFail, result.Status)
}

func TestColorCheck(t *testing.T) {
	assert.Equal(t, StatusWarn, (&ColorCheck{Profile: termenv.Ascii}).Run().Status)

	result := (&ColorCheck{Profile: termenv.TrueColor}).Run()
	assert.Equal(t, StatusPass, result.Status)
	assert.Contains(t, result.Message, "true color")
}
