package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUSD(t *testing.T) {
	tests := []struct {
		name string
		vnd  int64
		want float64
	}{
		{name: "exact division", vnd: 240000, want: 10.00},
		{name: "rounds to two decimals", vnd: 100000, want: 4.17},
		{name: "rounds up", vnd: 35000, want: 1.46},
		{name: "zero", vnd: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, USD(tt.vnd))
		})
	}
}
