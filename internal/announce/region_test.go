package announce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegion_AnnounceAndClear(t *testing.T) {
	r := NewRegion(20 * time.Millisecond)
	r.Announce("Loaded 5 more items")
	assert.Equal(t, "Loaded 5 more items", r.Current())

	assert.Eventually(t, func() bool { return r.Current() == "" }, time.Second, 5*time.Millisecond)
}

func TestRegion_NewerMessageSurvivesOldTimer(t *testing.T) {
	r := NewRegion(30 * time.Millisecond)
	r.Announce("first")
	time.Sleep(20 * time.Millisecond)
	r.Announce("second")
	time.Sleep(15 * time.Millisecond)

	// first timer fired but must not clear the second message
	assert.Equal(t, "second", r.Current())
}

func TestRegion_NoAutoClear(t *testing.T) {
	r := NewRegion(0)
	r.Announce("sticky")
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, "sticky", r.Current())

	r.Clear()
	assert.Empty(t, r.Current())
}

func TestRegion_OnChange(t *testing.T) {
	var mu sync.Mutex
	var seen []string
	r := NewRegion(0, OnChange(func(msg string) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, msg)
	}))

	r.Announce("Sorted by popular")
	r.Clear()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Sorted by popular", ""}, seen)
}

func TestFunc(t *testing.T) {
	var got string
	var a Announcer = Func(func(msg string) { got = msg })
	a.Announce("Refreshed")
	assert.Equal(t, "Refreshed", got)
}
