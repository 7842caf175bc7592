package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNote(t *testing.T) {
	n := NewNote()

	assert.True(t, n.IsNew())
	assert.False(t, n.CanBeCheckedOff())
	assert.Equal(t, DefaultColor(), n.Color)
	assert.False(t, n.IsInTrash)
}

func TestNewContact(t *testing.T) {
	c := NewContact()

	assert.True(t, c.IsNew())
	assert.Equal(t, int64(-1), c.ID)
	assert.Equal(t, DefaultColor(), c.Color)
}

func TestCheckedFlag(t *testing.T) {
	n := NewNote()
	assert.False(t, n.Checked())

	checked := n.WithChecked(true)
	assert.True(t, checked.CanBeCheckedOff())
	assert.True(t, checked.Checked())
	assert.Nil(t, n.IsCheckedOff, "original note must not change")

	unchecked := checked.WithChecked(false)
	assert.True(t, unchecked.CanBeCheckedOff())
	assert.False(t, unchecked.Checked())

	plain := unchecked.WithoutCheckbox()
	assert.False(t, plain.CanBeCheckedOff())
}

func TestContactCheckedFlag(t *testing.T) {
	c := NewContact().WithChecked(true)
	assert.True(t, c.Checked())
	assert.False(t, c.WithoutCheckbox().CanBeCheckedOff())
}
