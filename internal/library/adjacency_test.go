package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrValue(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func TestAdjacent(t *testing.T) {
	root := buildLibrary(t,
		"Series/ch1/01.jpg",
		"Series/ch2/01.jpg",
		"Series/ch3/01.jpg",
		"Series/extras/",
		"Series/Vol 1/ch1/01.jpg",
		"solo/01.jpg",
	)

	testCases := []struct {
		chapter  string
		previous string
		next     string
	}{
		{"Series/ch2", "Series/ch1", "Series/ch3"},
		{"Series/ch1", "<nil>", "Series/ch2"},
		{"Series/ch3", "Series/ch2", "<nil>"},
		{"Series/extras", "<nil>", "<nil>"},
		{"Series/missing", "<nil>", "<nil>"},
		{"solo", "<nil>", "<nil>"},
		{"Gone/ch1", "<nil>", "<nil>"},
	}
	for _, tc := range testCases {
		adj := Adjacent(root, tc.chapter)
		if got := ptrValue(adj.Previous); got != tc.previous {
			t.Errorf("Adjacent(%q).Previous = %q; want %q", tc.chapter, got, tc.previous)
		}
		if got := ptrValue(adj.Next); got != tc.next {
			t.Errorf("Adjacent(%q).Next = %q; want %q", tc.chapter, got, tc.next)
		}
	}
}

func TestAdjacentOrdersByPlainName(t *testing.T) {
	root := buildLibrary(t, "S/ch10/1.jpg", "S/ch2/1.jpg", "S/ch1/1.jpg")

	adj := Adjacent(root, "S/ch10")
	require.NotNil(t, adj.Previous)
	require.NotNil(t, adj.Next)
	assert.Equal(t, "S/ch1", *adj.Previous)
	assert.Equal(t, "S/ch2", *adj.Next)
}

func TestAdjacentEmptyParentReturnsBareNames(t *testing.T) {
	root := buildLibrary(t, "a/1.jpg", "b/1.jpg", "c/1.jpg")

	adj := Adjacent(root, "/b")
	require.NotNil(t, adj.Previous)
	require.NotNil(t, adj.Next)
	assert.Equal(t, "a", *adj.Previous)
	assert.Equal(t, "c", *adj.Next)
}

func TestAdjacentIdempotent(t *testing.T) {
	root := buildLibrary(t, "S/ch1/1.jpg", "S/ch2/1.jpg")
	assert.Equal(t, Adjacent(root, "S/ch1"), Adjacent(root, "S/ch1"))
}
