package game

import (
	"image/color"

	"chosenoffset.com/adventure/internal/render"
	"chosenoffset.com/adventure/internal/ui"
)

var (
	labelBgColor   = color.RGBA{0, 0, 0, 200}
	labelTextColor = color.RGBA{255, 255, 255, 255}
	highlightColor = color.RGBA{255, 255, 0, 255}
	touchTint      = &render.ColorScale{R: 1, G: 1, B: 0, A: 1}
)

var helpLines = []string{
	"WASD: move | E: interact | I: inventory | SPACE: next line",
	"1-6: change character | R: random character",
}

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(g.Background)

	g.drawGround(screen)
	g.drawNPCs(screen)
	g.drawPlayer(screen)

	g.drawHelp(screen)
	g.drawItemBar(screen)
	g.Overlay.Draw(g.Renderer, screen)
	g.Toasts.Draw(g.Renderer, screen)

	if g.Capture.Touch {
		ui.DrawTouchControls(g.Renderer, screen, g.Capture.Joystick, g.Capture.Buttons)
	}
}

func (g *Game) drawGround(screen render.Image) {
	if g.Ground == nil {
		return
	}
	opts := &render.DrawImageOptions{}
	opts.GeoM = render.NewGeoM()
	opts.GeoM.Translate(-g.Camera.X, -g.Camera.Y)
	screen.DrawImage(g.Ground, opts)
}

func (g *Game) drawNPCs(screen render.Image) {
	for _, npc := range g.Scene.NPCs {
		sx, sy := g.Camera.WorldToScreen(npc.Pos.X, npc.Pos.Y)

		if npc.Highlighted {
			g.Renderer.StrokeCircle(screen, float32(sx), float32(sy), 22, 2, highlightColor)
		}

		if img, ok := g.NPCSprites[npc.SpriteName]; ok {
			w, h := img.Size()
			opts := &render.DrawImageOptions{}
			opts.GeoM = render.NewGeoM()
			opts.GeoM.Translate(sx-float64(w)/2, sy-float64(h)/2)
			if npc.Touching {
				opts.Tint = touchTint
			}
			screen.DrawImage(img, opts)
		} else {
			// Fallback to circle
			g.Renderer.FillCircle(screen, float32(sx), float32(sy), 12, color.RGBA{255, 100, 100, 255})
		}

		// Name label above the head
		name := ui.DisplayName(npc.Name)
		tw, th := g.Renderer.MeasureText(name, 1)
		lx, ly := int(sx)-tw/2, int(sy)-40
		g.Renderer.FillRect(screen, float32(lx-4), float32(ly-2), float32(tw+8), float32(th+4), labelBgColor)
		g.Renderer.DrawText(screen, name, lx, ly, labelTextColor, 1)
	}
}

func (g *Game) drawPlayer(screen render.Image) {
	sx, sy := g.Camera.WorldToScreen(g.Player.Pos.X, g.Player.Pos.Y)

	sheet := g.Skins.Active()
	frame := sheet.Frame(g.Stage.Frame)
	if frame == nil {
		frame = sheet.Frame(0)
	}
	if frame == nil {
		g.Renderer.FillCircle(screen, float32(sx), float32(sy), 14, color.RGBA{255, 255, 100, 255})
		g.Renderer.StrokeCircle(screen, float32(sx), float32(sy), 14, 2, color.RGBA{200, 200, 50, 255})
		return
	}

	scale := g.Config.World.ActorScale
	opts := &render.DrawImageOptions{}
	opts.GeoM = render.NewGeoM()
	opts.GeoM.Translate(-float64(sheet.FrameW)/2, -float64(sheet.FrameH)/2)
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(sx, sy)
	screen.DrawImage(frame, opts)
}

func (g *Game) drawHelp(screen render.Image) {
	y := 16
	for i, line := range helpLines {
		scale := 1.0
		if i > 0 {
			scale = 0.85
		}
		tw, th := g.Renderer.MeasureText(line, scale)
		g.Renderer.FillRect(screen, 12, float32(y-2), float32(tw+8), float32(th+4), labelBgColor)
		g.Renderer.DrawText(screen, line, 16, y, labelTextColor, scale)
		y += th + 8
	}
}

// drawItemBar shows an icon per carried item in the top-right corner
func (g *Game) drawItemBar(screen render.Image) {
	w, _ := screen.Size()
	x := float64(w) - 40
	for _, it := range g.Scene.Inventory.Items() {
		icon, ok := g.ItemIcons[it.Icon]
		if !ok {
			continue
		}
		opts := &render.DrawImageOptions{}
		opts.GeoM = render.NewGeoM()
		opts.GeoM.Translate(x, 16)
		screen.DrawImage(icon, opts)
		x -= 32
	}
}
