package reactive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue_Subscribe(t *testing.T) {
	v := NewValue(1)

	var got []int
	cancel := v.Subscribe(func(x int) { got = append(got, x) })

	v.Set(2)
	v.Set(3)
	require.Equal(t, []int{2, 3}, got)
	require.Equal(t, 3, v.Get())

	cancel()
	cancel()
	v.Set(4)
	require.Equal(t, []int{2, 3}, got)
}

func TestDerive(t *testing.T) {
	src := NewValue("a")

	calls := 0
	d, cancel := Derive[string, int](src, func(s string) int {
		calls++
		return len(s)
	})
	require.Equal(t, 1, d.Get())
	require.Equal(t, 1, calls)

	src.Set("abc")
	require.Equal(t, 3, d.Get())
	require.Equal(t, 2, calls)

	cancel()
	src.Set("abcdef")
	require.Equal(t, 3, d.Get())
	require.Equal(t, 2, calls)
}
