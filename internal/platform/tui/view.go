package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/cardstorm/internal/core"
	"github.com/vovakirdan/cardstorm/internal/sim"
)

// cellAspect compensates for terminal cells being roughly twice as tall
// as they are wide: one world unit maps to cellAspect columns and one row.
const cellAspect = 2.0

// hudRows is how many top rows the HUD occupies above the arena viewport.
const hudRows = 2

// worldToScreen maps a world position to a screen cell, with the camera
// centered on the given world point.
func worldToScreen(s *core.Screen, camera, p core.Vec2) (int, int) {
	x := s.Width()/2 + int(math.Round((p.X-camera.X)*cellAspect))
	y := (s.Height()+hudRows)/2 + int(math.Round(p.Y-camera.Y))
	return x, y
}

// screenToWorld is the inverse mapping, used for mouse aiming.
func screenToWorld(s *core.Screen, camera core.Vec2, x, y int) core.Vec2 {
	wx := camera.X + float64(x-s.Width()/2)/cellAspect
	wy := camera.Y + float64(y-(s.Height()+hudRows)/2)
	return core.V(wx, wy)
}

// fillCircle paints every cell whose world position falls inside the circle.
func fillCircle(s *core.Screen, camera, pos core.Vec2, radius float64, r rune, c core.Color) {
	x0, y0 := worldToScreen(s, camera, core.V(pos.X-radius, pos.Y-radius))
	x1, y1 := worldToScreen(s, camera, core.V(pos.X+radius, pos.Y+radius))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if core.Dist(screenToWorld(s, camera, x, y), pos) <= radius {
				s.SetColored(x, y, r, c)
			}
		}
	}
}

// drawLine draws a rough segment between two world points.
func drawLine(s *core.Screen, camera, from, to core.Vec2, r rune, c core.Color) {
	steps := int(core.Dist(from, to)*cellAspect) + 1
	delta := to.Sub(from).Scale(1 / float64(steps))
	p := from
	for i := 0; i <= steps; i++ {
		x, y := worldToScreen(s, camera, p)
		s.SetColored(x, y, r, c)
		p = p.Add(delta)
	}
}

func enemyGlyph(v sim.EnemyView) (rune, core.Color) {
	var r rune
	var c core.Color
	switch v.Kind {
	case sim.EnemyRunner:
		r, c = 'r', core.ColorYellow
	case sim.EnemyBrute:
		r, c = 'B', core.ColorRed
	case sim.EnemyBoss:
		r, c = 'M', core.ColorBrightMagenta
	default:
		r, c = 'c', core.ColorGreen
	}

	// Status tint wins over the kind color so elemental combos read at a
	// glance; a damage flash wins over everything.
	switch {
	case v.Flash:
		c = core.ColorBrightWhite
	case v.Burning:
		c = core.ColorOrange
	case v.Electrified:
		c = core.ColorBrightYellow
	case v.Wet:
		c = core.ColorBlue
	}
	if v.Windup {
		r = '!'
	}
	return r, c
}

func projectileGlyph(v sim.ProjectileView) rune {
	if v.Opacity < 0.35 {
		return '.'
	}
	switch v.Archetype {
	case sim.ArchOrbiter:
		return '+'
	case sim.ArchSeekMinion:
		return 'm'
	case sim.ArchAreaBurst:
		return 'o'
	case sim.ArchGroundStream:
		return '~'
	default:
		return '*'
	}
}

func orbGlyph(tier int) (rune, core.Color) {
	switch {
	case tier >= 3:
		return '$', core.ColorBrightMagenta
	case tier == 2:
		return '*', core.ColorBrightYellow
	case tier == 1:
		return 'x', core.ColorBrightCyan
	default:
		return '.', core.ColorCyan
	}
}

// drawWorld renders one frame snapshot onto the screen, camera centered
// on the player. Paint order is back to front: terrain, area markers,
// pickups, projectiles, bolts, enemies, player.
func drawWorld(s *core.Screen, fr *sim.FrameSnapshot) {
	camera := fr.Player.Pos

	for _, o := range fr.Obstacles {
		fillCircle(s, camera, o.Pos, o.Radius, '#', core.ColorGray)
	}

	for _, f := range fr.Flashes {
		r := ':'
		if f.Frac > 0.5 {
			r = '%'
		}
		fillCircle(s, camera, f.Pos, f.Radius, r, f.Color)
	}

	for _, o := range fr.Orbs {
		r, c := orbGlyph(o.Tier)
		if o.Magnet {
			c = core.ColorBrightGreen
		}
		x, y := worldToScreen(s, camera, o.Pos)
		s.SetColored(x, y, r, c)
	}

	for _, p := range fr.Projectiles {
		if p.Radius > 1 {
			fillCircle(s, camera, p.Pos, p.Radius, projectileGlyph(p), p.Color)
			continue
		}
		x, y := worldToScreen(s, camera, p.Pos)
		s.SetColored(x, y, projectileGlyph(p), p.Color)
	}

	for _, b := range fr.Bolts {
		drawLine(s, camera, b.From, b.To, '*', b.Color)
	}

	for _, e := range fr.Enemies {
		r, c := enemyGlyph(e)
		if e.Radius > 1 {
			fillCircle(s, camera, e.Pos, e.Radius, r, c)
			continue
		}
		x, y := worldToScreen(s, camera, e.Pos)
		s.SetColored(x, y, r, c)
	}

	px, py := worldToScreen(s, camera, fr.Player.Pos)
	playerColor := core.ColorBrightWhite
	if fr.Player.Invuln {
		playerColor = core.ColorGray
	}
	s.SetColored(px, py, '@', playerColor)

	if fr.Player.AimMode == sim.AimManual {
		ax, ay := worldToScreen(s, camera, fr.Player.AimPoint)
		s.SetColored(ax, ay, 'x', core.ColorBrightCyan)
	}
}

// drawBar renders a proportional bar like [#####-----] into a string.
func drawBar(frac float64, width int) string {
	frac = core.ClampF(frac, 0, 1)
	filled := int(frac * float64(width))
	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}

func formatDuration(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// drawHUD paints the two-row status header and, when a boss is alive,
// its health bar on the row below.
func drawHUD(s *core.Screen, st sim.StatsSnapshot, fr *sim.FrameSnapshot) {
	hpColor := core.ColorBrightGreen
	hpFrac := 0.0
	if st.MaxHP > 0 {
		hpFrac = st.HP / st.MaxHP
	}
	if hpFrac < 0.3 {
		hpColor = core.ColorBrightRed
	} else if hpFrac < 0.6 {
		hpColor = core.ColorBrightYellow
	}

	hp := fmt.Sprintf(" HP [%s] %3.0f/%3.0f", drawBar(hpFrac, 12), st.HP, st.MaxHP)
	s.DrawTextColored(0, 0, hp, hpColor)

	right := fmt.Sprintf("Wave %d  Lv %d  XP %.0f/%.0f  Kills %d  %s  Aim:%s ",
		st.Wave, st.Level, st.XP, st.NextLevelXP, st.Kills,
		formatDuration(st.TimeSeconds), st.AimMode)
	s.DrawText(s.Width()-len(right), 0, right)

	if fr.BossHPFrac >= 0 {
		bar := fmt.Sprintf("BOSS [%s]", drawBar(fr.BossHPFrac, 24))
		s.DrawTextColored((s.Width()-len(bar))/2, 1, bar, core.ColorBrightRed)
	} else if fr.InBreak {
		s.DrawTextColored((s.Width()-16)/2, 1, "wave incoming...", core.ColorGray)
	}
}

// cardSummary describes a card's payload in one short line.
func cardSummary(c sim.Card) string {
	switch {
	case c.Artifact != nil:
		a := c.Artifact
		if a.CooldownFrames <= 0 {
			return fmt.Sprintf("%s weapon, %s, %.0f dmg", a.Archetype, a.Element, a.BaseDamage)
		}
		return fmt.Sprintf("%s weapon, %s, %.0f dmg, %.1fs", a.Archetype, a.Element, a.BaseDamage, a.CooldownFrames/60)
	case c.Effect != nil:
		return fmt.Sprintf("%s, next %d cards", c.Effect.Logic, c.Effect.Influence)
	case c.Buff != nil:
		b := c.Buff
		var parts []string
		if b.RangePct != 0 {
			parts = append(parts, fmt.Sprintf("+%.0f%% range", b.RangePct))
		}
		if b.SpeedPct != 0 {
			parts = append(parts, fmt.Sprintf("+%.0f%% speed", b.SpeedPct))
		}
		if b.FrequencyPct != 0 {
			parts = append(parts, fmt.Sprintf("+%.0f%% rate", b.FrequencyPct))
		}
		return "next weapon: " + strings.Join(parts, ", ")
	case c.Stat != nil:
		st := c.Stat
		var parts []string
		if st.MaxHPPct != 0 {
			parts = append(parts, fmt.Sprintf("+%.0f%% max HP", st.MaxHPPct))
		}
		if st.DamagePct != 0 {
			parts = append(parts, fmt.Sprintf("+%.0f%% damage", st.DamagePct))
		}
		if st.PickupRadiusPct != 0 {
			parts = append(parts, fmt.Sprintf("+%.0f%% pickup", st.PickupRadiusPct))
		}
		return "permanent: " + strings.Join(parts, ", ")
	}
	return ""
}

func rarityColor(r sim.Rarity) core.Color {
	switch r {
	case sim.RarityLegendary:
		return core.ColorOrange
	case sim.RarityEpic:
		return core.ColorBrightMagenta
	case sim.RarityRare:
		return core.ColorBrightCyan
	default:
		return core.ColorWhite
	}
}

// overlayBox clears a centered region and draws its border, returning the
// inner rect for content.
func overlayBox(s *core.Screen, w, h int) core.Rect {
	w = core.Min(w, s.Width()-2)
	h = core.Min(h, s.Height()-2)
	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawRect(box, ' ')
	s.DrawBox(box)
	return core.NewRect(box.X+2, box.Y+1, box.W-4, box.H-2)
}

// drawLevelUpOverlay renders the card offer panel.
func drawLevelUpOverlay(s *core.Screen, offer []sim.Card) {
	inner := overlayBox(s, 54, 4+len(offer)*3)
	s.DrawTextColored(inner.X, inner.Y, "LEVEL UP - choose a card", core.ColorBrightYellow)

	y := inner.Y + 2
	for i, c := range offer {
		head := fmt.Sprintf("%d) %s  [%s]", i+1, c.Name, c.Rarity)
		s.DrawTextColored(inner.X, y, head, rarityColor(c.Rarity))
		s.DrawTextColored(inner.X+3, y+1, cardSummary(c), core.ColorGray)
		y += 3
	}
}

// drawPauseOverlay renders the inventory editor: the ordered card list
// with a cursor, a grab marker, and the edit hints.
func drawPauseOverlay(s *core.Screen, inventory []sim.Card, cursor, grabbed int) {
	h := 7 + len(inventory)
	inner := overlayBox(s, 58, h)
	s.DrawTextColored(inner.X, inner.Y, "PAUSED - inventory order is your combo", core.ColorBrightYellow)

	y := inner.Y + 2
	if len(inventory) == 0 {
		s.DrawTextColored(inner.X, y, "(no cards yet)", core.ColorGray)
		y++
	}
	for i, c := range inventory {
		marker := "  "
		if i == cursor {
			marker = "> "
		}
		if i == grabbed {
			marker = "* "
		}
		line := fmt.Sprintf("%s%-2d %-16s %s", marker, i+1, c.Name, cardSummary(c))
		color := rarityColor(c.Rarity)
		if i != cursor && i != grabbed {
			color = core.ColorDefault
		}
		s.DrawTextColored(inner.X, y, line, color)
		y++
	}

	s.DrawTextColored(inner.X, inner.Bottom()-2, "j/k move, space grab/drop, x discard", core.ColorGray)
	s.DrawTextColored(inner.X, inner.Bottom()-1, "p/esc resume, q quit", core.ColorGray)
}

// drawRunEndOverlay renders the game-over / victory summary.
func drawRunEndOverlay(s *core.Screen, st sim.StatsSnapshot, victory bool, bestWave int) {
	inner := overlayBox(s, 40, 9)

	title := "RUN OVER"
	color := core.ColorBrightRed
	if victory {
		title = "VICTORY"
		color = core.ColorBrightGreen
	}
	s.DrawTextColored(inner.X+(inner.W-len(title))/2, inner.Y, title, color)

	y := inner.Y + 2
	s.DrawText(inner.X, y, fmt.Sprintf("Wave reached  %d", st.Wave))
	s.DrawText(inner.X, y+1, fmt.Sprintf("Level         %d", st.Level))
	s.DrawText(inner.X, y+2, fmt.Sprintf("Kills         %d", st.Kills))
	s.DrawText(inner.X, y+3, fmt.Sprintf("Survived      %s", formatDuration(st.TimeSeconds)))
	if bestWave > 0 {
		s.DrawText(inner.X, y+4, fmt.Sprintf("Best wave     %d", bestWave))
	}

	s.DrawTextColored(inner.X, inner.Bottom()-1, "r restart, esc menu", core.ColorGray)
}

// drawTitle renders the menu screen.
func drawTitle(s *core.Screen, bestWave int) {
	y := s.Height()/2 - 4
	s.DrawTextCentered(y, "C A R D S T O R M")
	s.DrawTextCentered(y+2, "survive the waves; the order of your cards is the build")
	if bestWave > 0 {
		s.DrawTextCentered(y+4, fmt.Sprintf("best wave: %d", bestWave))
	}
	s.DrawTextCentered(y+6, "enter play    h history    q quit")
	s.DrawTextCentered(y+8, "wasd move, space halt, t aim mode, p pause")
}
