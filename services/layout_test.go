package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLayoutBreakpoints(t *testing.T) {
	mobile := NewLayout(500)
	assert.True(t, mobile.Mobile)
	assert.False(t, mobile.SidebarOpen)

	tablet := NewLayout(900)
	assert.False(t, tablet.Mobile)
	assert.True(t, tablet.Collapsed)
	assert.True(t, tablet.SidebarOpen)

	desktop := NewLayout(1280)
	assert.False(t, desktop.Collapsed)
	assert.True(t, desktop.SidebarOpen)

	assert.True(t, NewLayout(767).Mobile)
	assert.True(t, NewLayout(768).Collapsed)
	assert.False(t, NewLayout(1024).Collapsed)
}

func TestResizeTransitions(t *testing.T) {
	l := NewLayout(1280).Resize(600)
	assert.True(t, l.Mobile)
	assert.False(t, l.SidebarOpen, "desktop to mobile closes the sidebar")

	l = l.Toggle()
	assert.True(t, l.SidebarOpen)
	l = l.Resize(700)
	assert.True(t, l.SidebarOpen, "staying mobile keeps the user's choice")

	l = l.Toggle().Resize(1400)
	assert.True(t, l.SidebarOpen, "mobile to desktop opens the sidebar")

	l = l.Toggle().Resize(900)
	assert.False(t, l.SidebarOpen, "desktop to collapsed keeps the state")
}

func TestCloseOnNavigate(t *testing.T) {
	desktop := NewLayout(1280).CloseOnNavigate()
	assert.True(t, desktop.SidebarOpen)

	mobile := NewLayout(400).Toggle().CloseOnNavigate()
	assert.False(t, mobile.SidebarOpen)
}
