package component

import (
	"dungeoncrawl/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 2

// RenderOrder resolves draw overlap on a shared tile; higher draws on top.
type RenderOrder uint8

const (
	OrderItems RenderOrder = iota
	OrderNPC
	OrderPlayer
	OrderParticle
)

type Renderable struct {
	Glyph  string
	FG, BG tcell.Color
	Render bool
	// AlwaysVisible draws the entity even outside the player's view.
	AlwaysVisible bool
	Order         RenderOrder
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
