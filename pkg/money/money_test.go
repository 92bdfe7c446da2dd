package money

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{100, "1.00"},
		{2000, "20.00"},
		{22997, "229.97"},
		{-1850, "-18.50"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Format(tc.cents))
	}
}
