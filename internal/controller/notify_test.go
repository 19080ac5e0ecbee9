package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextEvent(t *testing.T, ch <-chan ToastEvent) ToastEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no toast event")
		return ToastEvent{}
	}
}

func TestToaster(t *testing.T) {
	t.Run("dismisses after the delay", func(t *testing.T) {
		toast := NewToaster(20*time.Millisecond, 4)
		defer toast.Close()

		toast.Notify(Notification{Level: LevelSuccess, Message: "Saved"})
		shown := nextEvent(t, toast.Events())
		assert.False(t, shown.Dismissed)
		assert.Equal(t, "Saved", shown.Notification.Message)
		assert.False(t, shown.Notification.At.IsZero())

		cur, ok := toast.Current()
		require.True(t, ok)
		assert.Equal(t, "Saved", cur.Message)

		gone := nextEvent(t, toast.Events())
		assert.True(t, gone.Dismissed)
		_, ok = toast.Current()
		assert.False(t, ok)
	})

	t.Run("a newer notification replaces the visible one", func(t *testing.T) {
		toast := NewToaster(50*time.Millisecond, 8)
		defer toast.Close()

		toast.Notify(Notification{Level: LevelError, Message: "first"})
		toast.Notify(Notification{Level: LevelError, Message: "second"})

		assert.Equal(t, "first", nextEvent(t, toast.Events()).Notification.Message)
		assert.Equal(t, "second", nextEvent(t, toast.Events()).Notification.Message)

		ev := nextEvent(t, toast.Events())
		assert.True(t, ev.Dismissed)
		assert.Equal(t, "second", ev.Notification.Message)

		select {
		case extra := <-toast.Events():
			t.Fatalf("unexpected event %+v", extra)
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("manual dismiss", func(t *testing.T) {
		toast := NewToaster(time.Hour, 4)
		defer toast.Close()

		toast.Notify(Notification{Message: "Deleted"})
		nextEvent(t, toast.Events())
		toast.Dismiss()
		assert.True(t, nextEvent(t, toast.Events()).Dismissed)
		toast.Dismiss()
	})

	t.Run("close ends the stream", func(t *testing.T) {
		toast := NewToaster(0, 1)
		toast.Close()
		toast.Notify(Notification{Message: "ignored"})
		_, open := <-toast.Events()
		assert.False(t, open)
		toast.Close()
	})

	t.Run("levels", func(t *testing.T) {
		assert.Equal(t, "success", LevelSuccess.String())
		assert.Equal(t, "error", LevelError.String())
	})
}
