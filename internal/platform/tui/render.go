package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cuberush/cuberush/internal/config"
	"github.com/cuberush/cuberush/internal/game"
	"github.com/cuberush/cuberush/internal/level"
)

// colorStyles maps Color to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault:       lipgloss.NewStyle(),
	ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.Get(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

const progressBarWidth = 22

// viewport maps world coordinates onto the playfield cell area below the
// HUD row. World space is fixed, so the same run looks the same on any
// terminal size.
type viewport struct {
	cols  int
	rows  int
	top   int
	world config.WorldTuning
}

func newViewport(s *Screen, world config.WorldTuning) viewport {
	rows := s.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	return viewport{cols: s.Width(), rows: rows, top: hudRows, world: world}
}

func (v viewport) cellX(wx float64) int {
	return int(wx / v.world.ScreenW * float64(v.cols))
}

func (v viewport) cellY(wy float64) int {
	return v.top + int(wy/v.world.ScreenH*float64(v.rows))
}

// drawFrame renders one game snapshot into the screen buffer.
func drawFrame(s *Screen, snap game.Snapshot, world config.WorldTuning) {
	s.Clear()
	v := newViewport(s, world)

	floorRow := v.cellY(world.FloorY)
	s.DrawHLine(0, floorRow, s.Width(), '─', ColorGray)

	for _, obs := range snap.Obstacles {
		switch obs.Kind {
		case level.Spike:
			drawSpike(s, v, obs)
		case level.Block:
			drawBlock(s, v, obs)
		}
	}

	drawPlayer(s, v, snap.Player)
	drawHUD(s, snap)

	switch {
	case snap.Over && snap.Won:
		drawBanner(s, "RUN COMPLETE", fmt.Sprintf("score %.0f   r to run again   q to quit", snap.Score))
	case snap.Over:
		drawBanner(s, "GAME OVER", fmt.Sprintf("score %.0f   r to retry   q to quit", snap.Score))
	case snap.Paused:
		drawBanner(s, "PAUSED", "p to resume")
	case !snap.Running:
		drawBanner(s, "CUBE RUSH", "space to launch")
	}
}

// spinGlyphs shows the cube's tumble while airborne, one glyph per
// quarter turn of the rotation angle.
var spinGlyphs = [4]rune{'▛', '▜', '▟', '▙'}

func drawPlayer(s *Screen, v viewport, p game.PlayerState) {
	x0, x1 := v.cellX(p.X), v.cellX(p.X+p.Size)
	y0, y1 := v.cellY(p.Y), v.cellY(p.Y+p.Size)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	glyph := '█'
	if !p.Grounded {
		quarter := int(p.Rotation/(math.Pi/2)) % len(spinGlyphs)
		if quarter < 0 {
			quarter += len(spinGlyphs)
		}
		glyph = spinGlyphs[quarter]
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.Set(x, y, glyph, ColorBrightCyan)
		}
	}
}

func drawSpike(s *Screen, v viewport, obs game.ObstacleView) {
	x0, x1 := v.cellX(obs.X), v.cellX(obs.X+obs.Width)
	y0, y1 := v.cellY(v.world.FloorY-obs.Height), v.cellY(v.world.FloorY)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y0 = y1 - 1
	}

	rows := y1 - y0
	span := x1 - x0
	for row := 0; row < rows; row++ {
		// Narrow toward the apex: the top row keeps only the middle of
		// the span, the bottom row keeps all of it.
		frac := float64(row+1) / float64(rows)
		indent := int(float64(span) * (1 - frac) / 2)
		for x := x0 + indent; x < x1-indent; x++ {
			s.Set(x, y0+row, '▲', ColorBrightRed)
		}
	}
}

func drawBlock(s *Screen, v viewport, obs game.ObstacleView) {
	x0, x1 := v.cellX(obs.X), v.cellX(obs.X+obs.Width)
	y0, y1 := v.cellY(v.world.FloorY-obs.Height), v.cellY(v.world.FloorY)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y0 = y1 - 1
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.Set(x, y, '█', ColorOrange)
		}
	}
}

func drawHUD(s *Screen, snap game.Snapshot) {
	stage := snap.LevelIndex + 1
	if stage > snap.LevelCount {
		stage = snap.LevelCount
	}
	left := fmt.Sprintf(" %s  %d/%d", snap.LevelName, stage, snap.LevelCount)
	s.DrawText(0, 0, left, ColorBrightWhite)

	score := fmt.Sprintf("score %7.0f ", snap.Score)
	s.DrawText(s.Width()-runeLen(score), 0, score, ColorBrightYellow)

	bar := progressBar(snap.Progress, progressBarWidth)
	s.DrawText((s.Width()-runeLen(bar))/2, 0, bar, ColorBrightGreen)
}

func progressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))

	var sb strings.Builder
	sb.WriteRune('[')
	for i := 0; i < width; i++ {
		if i < filled {
			sb.WriteRune('=')
		} else {
			sb.WriteRune(' ')
		}
	}
	sb.WriteRune(']')
	return sb.String()
}

func drawBanner(s *Screen, title, subtitle string) {
	boxW := max(runeLen(title), runeLen(subtitle)) + 6
	if boxW > s.Width() {
		boxW = s.Width()
	}
	boxH := 5

	x := (s.Width() - boxW) / 2
	y := (s.Height() - boxH) / 2

	s.DrawRect(x, y, boxW, boxH, ' ', ColorDefault)
	s.DrawBox(x, y, boxW, boxH, ColorBrightWhite)
	s.DrawText(x+(boxW-runeLen(title))/2, y+1, title, ColorBrightYellow)
	s.DrawText(x+(boxW-runeLen(subtitle))/2, y+3, subtitle, ColorWhite)
}
