package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionDefaultsToToday(t *testing.T) {
	hub := NewSessionHub()

	s := hub.Get(1)
	require.Equal(t, time.Now().Format("2006-01-02"), s.ActiveDate)
	require.False(t, s.MenuVisible)
}

func TestSelectDate(t *testing.T) {
	hub := NewSessionHub()

	s := hub.SelectDate(1, "2024-03-15")
	require.Equal(t, "2024-03-15", s.ActiveDate)
	require.Equal(t, "2024-03-15", hub.Get(1).ActiveDate)

	// another user is untouched
	require.NotEqual(t, "2024-03-15", hub.Get(2).ActiveDate)
}

func TestSetMenuVisiblePreservesDate(t *testing.T) {
	hub := NewSessionHub()
	hub.SelectDate(1, "2024-03-15")

	s := hub.SetMenuVisible(1, true)
	require.True(t, s.MenuVisible)
	require.Equal(t, "2024-03-15", s.ActiveDate)

	s = hub.SetMenuVisible(1, false)
	require.False(t, s.MenuVisible)
}

func TestSessionListenersNotified(t *testing.T) {
	hub := NewSessionHub()

	var gotUser uint
	var got []Session
	hub.Subscribe(func(userID uint, s Session) {
		gotUser = userID
		got = append(got, s)
	})

	hub.SelectDate(7, "2024-03-15")
	hub.SetMenuVisible(7, true)

	require.Equal(t, uint(7), gotUser)
	require.Len(t, got, 2)
	require.Equal(t, "2024-03-15", got[0].ActiveDate)
	require.True(t, got[1].MenuVisible)
}
