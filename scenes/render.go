package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/symbiotic/components"
	cfg "github.com/automoto/symbiotic/config"
	"github.com/automoto/symbiotic/shared/orbs"
	"github.com/automoto/symbiotic/systems"
	"github.com/automoto/symbiotic/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// viewOffset returns the world-to-screen translation of the camera.
func viewOffset(e *ecs.ECS) (float64, float64) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	cam := components.Camera.Get(entry)
	return cam.Viewport.X/2 - cam.Position.X, cam.Viewport.Y/2 - cam.Position.Y
}

func fillObject(screen *ebiten.Image, ox, oy float64, obj *resolv.Object, c color.Color) {
	vector.FillRect(screen, float32(obj.X+ox), float32(obj.Y+oy), float32(obj.W), float32(obj.H), c, false)
}

func drawGround(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := viewOffset(e)
	tags.Ground.Each(e.World, func(entry *donburi.Entry) {
		fillObject(screen, ox, oy, components.Object.Get(entry).Object, cfg.Ground)
	})
}

func drawWater(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := viewOffset(e)
	tags.WaterZone.Each(e.World, func(entry *donburi.Entry) {
		fillObject(screen, ox, oy, components.Object.Get(entry).Object, cfg.Water)
	})
}

func drawOrbs(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := viewOffset(e)
	tags.OrbPickup.Each(e.World, func(entry *donburi.Entry) {
		orb := components.OrbPickup.Get(entry)
		if orb.Collected {
			return
		}
		obj := components.Object.Get(entry)
		c, ok := cfg.OrbColors[orb.Element.String()]
		if !ok {
			c = cfg.White
		}
		vector.FillCircle(screen, float32(obj.X+obj.W/2+ox), float32(obj.Y+obj.H/2+oy), float32(obj.W/2), c, true)
	})
}

// drawCharacters draws the body and, when standing, the crouch collider,
// scaled by the landing squash around the feet.
func drawCharacters(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := viewOffset(e)
	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		char := components.Character.Get(entry)
		squash := components.SquashStretch.Get(entry)

		height := obj.H
		if char.CrouchEnabled {
			height += char.CrouchCollider.H
		}
		w := obj.W * squash.ScaleX
		h := height * squash.ScaleY
		feetX := obj.X + obj.W/2 + ox
		feetY := obj.Y + obj.H + oy

		vector.FillRect(screen, float32(feetX-w/2), float32(feetY-h), float32(w), float32(h), cfg.Character, false)
		if char.CrouchEnabled {
			vector.StrokeRect(screen, float32(feetX-w/2), float32(feetY-h), float32(w), float32(char.CrouchCollider.H*squash.ScaleY), 1, cfg.CrouchBox, false)
		}

		// Eye on the facing side.
		eyeX := feetX + char.ScaleX*w/4
		vector.FillRect(screen, float32(eyeX-1), float32(feetY-h+3), 2, 2, color.Black, false)
	})
}

// drawChecks shows the ground and ceiling check circles (toggle with F1).
func drawChecks(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawChecks {
		return
	}
	ox, oy := viewOffset(e)
	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		gx, gy := systems.GroundCheckPoint(obj)
		cx, cy := systems.CeilingCheckPoint(obj)
		vector.StrokeCircle(screen, float32(gx+ox), float32(gy+oy), float32(cfg.Controller.GroundedRadius), 1, cfg.CheckColor, true)
		vector.StrokeCircle(screen, float32(cx+ox), float32(cy+oy), float32(cfg.Controller.CeilingRadius), 1, cfg.CheckColor, true)
	})
}

func drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Character.First(e.World)
	if !ok {
		return
	}
	char := components.Character.Get(entry)
	body := components.Body.Get(entry)
	counts := components.Orbs.Get(entry).Counts()

	lines := []string{
		fmt.Sprintf("grounded=%v swimming=%v crouching=%v", char.State.Grounded, char.State.Swimming, char.State.Crouching),
		fmt.Sprintf("jumps=%d/%d vel=(%.0f, %.0f)", char.State.JumpsLeft, char.State.ExtraJumps+1, body.VX, body.VY),
	}
	orbLine := ""
	for _, el := range orbs.Elements() {
		orbLine += fmt.Sprintf("%s:%d ", el, counts[el])
	}
	lines = append(lines, orbLine)

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(4, float64(4+i*14))
		op.ColorScale.ScaleWithColor(cfg.White)
		text.Draw(screen, line, hudFace, op)
	}
}
