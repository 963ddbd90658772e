package country

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     string
		expected string
	}{
		{code: "FR", expected: "France"},
		{code: "DE", expected: "Germany"},
		{code: "US", expected: "United States"},
		{code: "XX", expected: Unknown},
		{code: "fr", expected: Unknown},
		{code: "", expected: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.expected, Name(tt.code))
		})
	}
}
