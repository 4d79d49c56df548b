package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/catalog"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/config"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/engine/shader"
)

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionNext
	ActionPrev
	ActionToggleWireframe
	ActionToggleGrid
	ActionToggleBounds
	ActionCycleShading
	ActionTogglePause
	ActionResetCamera
	ActionScreenshot
)

var keyActions = map[sdl.Scancode]Action{
	sdl.SCANCODE_ESCAPE: ActionQuit,
	sdl.SCANCODE_RIGHT:  ActionNext,
	sdl.SCANCODE_N:      ActionNext,
	sdl.SCANCODE_LEFT:   ActionPrev,
	sdl.SCANCODE_P:      ActionPrev,
	sdl.SCANCODE_W:      ActionToggleWireframe,
	sdl.SCANCODE_G:      ActionToggleGrid,
	sdl.SCANCODE_B:      ActionToggleBounds,
	sdl.SCANCODE_L:      ActionCycleShading,
	sdl.SCANCODE_SPACE:  ActionTogglePause,
	sdl.SCANCODE_F:      ActionResetCamera,
	sdl.SCANCODE_F12:    ActionScreenshot,
}

// KeyAction returns the action bound to a key.
func KeyAction(key sdl.Scancode) Action {
	return keyActions[key]
}

var shadingNames = map[int32]string{
	shader.ModeUnlit:    "unlit",
	shader.ModeLit:      "lit",
	shader.ModeNormals:  "normals",
	shader.ModeTangents: "tangents",
	shader.ModeUV:       "uv",
}

// State is the GL-independent part of the viewer: which shape is shown and
// how it is drawn.
type State struct {
	items   []catalog.Item
	current int

	Shading    int32
	Wireframe  bool
	ShowGrid   bool
	ShowBounds bool
	Paused     bool
}

// NewState starts at the first item with the display toggles from cfg.
func NewState(items []catalog.Item, cfg config.ViewerConfig) *State {
	return &State{
		items:      items,
		Shading:    shader.ModeLit,
		Wireframe:  cfg.Wireframe,
		ShowGrid:   cfg.ShowGrid,
		ShowBounds: cfg.ShowBounds,
	}
}

// Len returns the number of items.
func (s *State) Len() int { return len(s.items) }

// Index returns the current item index.
func (s *State) Index() int { return s.current }

// Current returns the item on display. It must not be called on an empty state.
func (s *State) Current() *catalog.Item {
	return &s.items[s.current]
}

// Next advances to the following item, wrapping at the end.
func (s *State) Next() {
	if len(s.items) > 0 {
		s.current = (s.current + 1) % len(s.items)
	}
}

// Prev steps back to the previous item, wrapping at the start.
func (s *State) Prev() {
	if len(s.items) > 0 {
		s.current = (s.current + len(s.items) - 1) % len(s.items)
	}
}

// ShadingName returns the name of the current shading mode.
func (s *State) ShadingName() string {
	return shadingNames[s.Shading]
}

// Apply performs the state part of an action. It reports whether the
// displayed item changed.
func (s *State) Apply(a Action) bool {
	switch a {
	case ActionNext:
		prev := s.current
		s.Next()
		return s.current != prev
	case ActionPrev:
		prev := s.current
		s.Prev()
		return s.current != prev
	case ActionToggleWireframe:
		s.Wireframe = !s.Wireframe
	case ActionToggleGrid:
		s.ShowGrid = !s.ShowGrid
	case ActionToggleBounds:
		s.ShowBounds = !s.ShowBounds
	case ActionCycleShading:
		s.Shading = (s.Shading + 1) % int32(len(shadingNames))
	case ActionTogglePause:
		s.Paused = !s.Paused
	}
	return false
}
