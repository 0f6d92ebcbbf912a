package reactive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublisher_Reentrant(t *testing.T) {
	var (
		p     Publisher
		state = 1
		out   = NewValue(0)
		seen  []int
	)

	publish := func() {
		p.Publish(func() { out.Set(state) })
	}
	out.Subscribe(func(x int) {
		seen = append(seen, x)
		if x == 1 {
			state = 2
			publish() // folded into the running publication
		}
	})

	publish()
	require.Equal(t, []int{1, 2}, seen)
	require.Equal(t, 2, out.Get())
}
