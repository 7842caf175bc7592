package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigate(t *testing.T) {
	r := New(Notes)
	assert.Equal(t, Notes, r.Current())

	var seen []Screen
	unsubscribe := r.Screen().Subscribe(func(s Screen) { seen = append(seen, s) })
	defer unsubscribe()

	r.NavigateTo(SaveNote)
	r.NavigateTo(Trash)
	assert.Equal(t, Trash, r.Current())
	assert.Equal(t, []Screen{SaveNote, Trash}, seen)
}

func TestRoutersAreIndependent(t *testing.T) {
	a := New(Notes)
	b := New(Contacts)

	a.NavigateTo(Trash)
	assert.Equal(t, Contacts, b.Current())
}

func TestParseScreen(t *testing.T) {
	for _, s := range All() {
		got, ok := ParseScreen(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}

	_, ok := ParseScreen("settings")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Screen(99).String())
}
