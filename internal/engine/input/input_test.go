package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{
			name:  "quit",
			event: &sdl.QuitEvent{Type: sdl.QUIT},
			want:  Event{Type: EventQuit},
			ok:    true,
		},
		{
			name:  "resize",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			want:  Event{Type: EventWindowResize, Width: 800, Height: 600},
			ok:    true,
		},
		{
			name:  "window focus ignored",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED},
			ok:    false,
		},
		{
			name:  "key down repeat",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}},
			want:  Event{Type: EventKeyDown, Key: sdl.SCANCODE_SPACE, Repeat: true},
			ok:    true,
		},
		{
			name:  "key up",
			event: &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}},
			want:  Event{Type: EventKeyUp, Key: sdl.SCANCODE_W},
			ok:    true,
		},
		{
			name:  "motion",
			event: &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 10, Y: 20, XRel: -3, YRel: 4},
			want:  Event{Type: EventMouseMove, MouseX: 10, MouseY: 20, DeltaX: -3, DeltaY: 4},
			ok:    true,
		},
		{
			name:  "button down",
			event: &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 5, Y: 6},
			want:  Event{Type: EventMouseDown, Button: sdl.BUTTON_LEFT, MouseX: 5, MouseY: 6},
			ok:    true,
		},
		{
			name:  "wheel",
			event: &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2},
			want:  Event{Type: EventMouseWheel, Wheel: 2},
			ok:    true,
		},
		{
			name:  "flipped wheel",
			event: &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED},
			want:  Event{Type: EventMouseWheel, Wheel: -1},
			ok:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.event)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPushTracksButtons(t *testing.T) {
	in := New()

	in.Push(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT})
	assert.True(t, in.IsButtonHeld(sdl.BUTTON_LEFT))
	assert.False(t, in.IsButtonHeld(sdl.BUTTON_RIGHT))

	in.Push(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT})
	assert.False(t, in.IsButtonHeld(sdl.BUTTON_LEFT))
	assert.Len(t, in.Events(), 2)
}

func TestPushQuitAndKeys(t *testing.T) {
	in := New()
	assert.False(t, in.Push(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F12}}))
	assert.True(t, in.IsKeyPressed(sdl.SCANCODE_F12))
	assert.False(t, in.IsKeyPressed(sdl.SCANCODE_ESCAPE))
	assert.True(t, in.Push(&sdl.QuitEvent{Type: sdl.QUIT}))
}
