package runtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresence_MarkOnlineIsIdempotent(t *testing.T) {
	req := require.New(t)
	presence := NewPresence()
	t1 := token("a")

	// Given an empty presence set
	req.False(presence.IsOnline(t1))
	req.Zero(presence.Count())

	// When the token is marked online twice
	req.True(presence.MarkOnline(t1))
	req.False(presence.MarkOnline(t1))

	// Then it is listed once
	req.True(presence.IsOnline(t1))
	req.Equal(1, presence.Count())
}

func TestPresence_MarkOffline(t *testing.T) {
	req := require.New(t)
	presence := NewPresence()
	t1, t2 := token("a"), token("b")

	presence.MarkOnline(t1)
	presence.MarkOnline(t2)

	presence.MarkOffline(t1)
	req.False(presence.IsOnline(t1))
	req.True(presence.IsOnline(t2))

	// Absent token is a no-op
	presence.MarkOffline(t1)
	presence.MarkOffline(token("z"))
	req.Equal(1, presence.Count())
}

func TestPresence_ConcurrentMarkOnlineSingleWinner(t *testing.T) {
	req := require.New(t)
	presence := NewPresence()
	t1 := token("a")

	var wg sync.WaitGroup
	wins := make(chan bool, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- presence.MarkOnline(t1)
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for win := range wins {
		if win {
			count++
		}
	}
	req.Equal(1, count)
}
