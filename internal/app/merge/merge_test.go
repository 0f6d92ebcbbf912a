package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newer(a, b int) bool { return a > b }

func TestNewest(t *testing.T) {
	var testCases = []struct {
		name        string
		fresh, prev []int
		want        []int
	}{
		{"prepends and drops oldest", []int{6}, []int{5, 4, 3}, []int{6, 5, 4}},
		{"more fresh than prev", []int{9, 8, 7, 6}, []int{5, 4, 3}, []int{9, 8, 7, 6}},
		{"nothing fresh", nil, []int{5, 4, 3}, []int{5, 4, 3}},
		{"empty prev", []int{2, 1}, nil, []int{2, 1}},
		{"duplicates kept", []int{5}, []int{5, 4, 3}, []int{5, 5, 4}},
	}

	for _, c := range testCases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Newest(c.fresh, c.prev))
		})
	}
}

func TestNewerThan(t *testing.T) {
	assert.Equal(t, []int{8, 7}, NewerThan([]int{8, 7, 6, 5}, 6, newer))
	assert.Empty(t, NewerThan([]int{6, 5}, 6, newer))
	assert.Equal(t, []int{8}, NewerThan([]int{8}, 6, newer))
}

func TestPoll(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, Poll([]int{3, 2, 1}, nil, newer))
	assert.Equal(t, []int{6, 5, 4}, Poll([]int{6, 5, 4}, []int{5, 4, 3}, newer))
	assert.Equal(t, []int{5, 4, 3}, Poll([]int{5, 4, 3}, []int{5, 4, 3}, newer))
}
