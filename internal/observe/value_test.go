package observe

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsInitial(t *testing.T) {
	v := NewValue([]string{"a"})
	assert.Equal(t, []string{"a"}, v.Get())
}

func TestPostNotifiesSubscribers(t *testing.T) {
	v := NewValue(0)

	var got []int
	unsubscribe := v.Subscribe(func(n int) {
		got = append(got, n)
	})

	v.Post(1)
	v.Post(2)
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 2, v.Get())

	unsubscribe()
	unsubscribe()
	v.Post(3)
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 0, v.Subscribers())
}

func TestSubscribersRunInOrder(t *testing.T) {
	v := NewValue("")

	var calls []string
	v.Subscribe(func(string) { calls = append(calls, "first") })
	unsubscribeSecond := v.Subscribe(func(string) { calls = append(calls, "second") })
	v.Subscribe(func(string) { calls = append(calls, "third") })

	unsubscribeSecond()
	v.Post("x")
	assert.Equal(t, []string{"first", "third"}, calls)
}

func TestSubscriberMayReadValue(t *testing.T) {
	v := NewValue(0)

	var seen int
	v.Subscribe(func(int) {
		seen = v.Get()
	})
	v.Post(5)
	assert.Equal(t, 5, seen)
}

func TestUpdate(t *testing.T) {
	v := NewValue(10)

	var notified int
	v.Subscribe(func(n int) { notified = n })

	v.Update(func(n int) int { return n + 1 })
	assert.Equal(t, 11, v.Get())
	assert.Equal(t, 11, notified)
}

func TestConcurrentUpdateKeepsEveryChange(t *testing.T) {
	v := NewValue(0)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.Update(func(n int) int { return n + 1 })
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, v.Get())
}

func TestConcurrentPost(t *testing.T) {
	v := NewValue(0)

	var mu sync.Mutex
	count := 0
	v.Subscribe(func(int) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			v.Post(n)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 50, count)
}
