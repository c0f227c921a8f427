package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/wanderlist/internal/destination"
)

func TestClosestByName(t *testing.T) {
	items := destination.Defaults()
	tests := []struct {
		query string
		want  int
	}{
		{"", -1},
		{"   ", -1},
		{"scotland", 0},
		{"CHARLES", 1},
		{"brige climb", 2},
		{"australia prk", 3},
		{"park", 3},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			require.Equal(t, tt.want, closestByName(items, tt.query))
		})
	}
	require.Equal(t, -1, closestByName(nil, "bridge"))
}

func TestClosestByNamePrefersEarlierOnTie(t *testing.T) {
	items := []destination.Destination{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Alpha"},
	}
	require.Equal(t, 0, closestByName(items, "alpha"))
}
