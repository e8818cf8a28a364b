package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitExt(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"a.txt", ".txt"},
		{"a.tar.gz", ".gz"},
		{".bashrc", ""},
		{"..hidden.conf", ".conf"},
		{"README", ""},
		{"trailing.", "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitExt(tt.name))
		})
	}
}

func TestOrderMode(t *testing.T) {
	assert.Equal(t, OrderModified, OrderName.Next())
	assert.Equal(t, OrderNatural, OrderModified.Next())
	assert.Equal(t, OrderName, OrderNatural.Next())
	assert.Equal(t, "Modified", OrderModified.Label())

	mode, err := ParseOrderMode("Natural")
	require.NoError(t, err)
	assert.Equal(t, OrderNatural, mode)

	mode, err = ParseOrderMode("modified")
	require.NoError(t, err)
	assert.Equal(t, OrderModified, mode)

	_, err = ParseOrderMode("size")
	assert.Error(t, err)
}

func TestDirection(t *testing.T) {
	d, err := ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, Down, d)
	assert.Equal(t, "down", d.String())

	_, err = ParseDirection("left")
	assert.Error(t, err)
}

func TestSpan(t *testing.T) {
	s := Span{Start: 2, End: 4}
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))
}

func TestRenamePlan(t *testing.T) {
	plan := RenamePlan{
		Dir: "/shows",
		Pairs: []RenamePair{
			{OldName: "b.txt", NewName: "Episode 01.txt"},
			{OldName: "Episode 02.txt", NewName: "Episode 02.txt"},
		},
	}
	assert.Equal(t, 2, plan.Len())
	assert.Len(t, plan.Changes(), 1)
	assert.Equal(t, "b.txt", plan.Changes()[0].OldName)
}
