package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/floater/ecs/system"
)

var keyBindings = map[system.Action][]ebiten.Key{
	system.ActionForward:   {ebiten.KeyW, ebiten.KeyArrowUp},
	system.ActionBack:      {ebiten.KeyS, ebiten.KeyArrowDown},
	system.ActionLeft:      {ebiten.KeyA, ebiten.KeyArrowLeft},
	system.ActionRight:     {ebiten.KeyD, ebiten.KeyArrowRight},
	system.ActionJump:      {ebiten.KeySpace},
	system.ActionCrouch:    {ebiten.KeyControlLeft, ebiten.KeyC},
	system.ActionTurnLeft:  {ebiten.KeyQ},
	system.ActionTurnRight: {ebiten.KeyE},
	system.ActionReload:    {ebiten.KeyR},
}

// ebitenKeys polls the keyboard through ebiten.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(a system.Action) bool {
	for _, k := range keyBindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (ebitenKeys) JustPressed(a system.Action) bool {
	for _, k := range keyBindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
