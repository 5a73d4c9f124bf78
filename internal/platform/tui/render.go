package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/dodge"
)

// Minimum terminal size that still fits the HUD and a usable playfield.
const (
	minScreenW = 24
	minScreenH = 10
)

// Glyphs used on the playfield.
const (
	playerGlyph      = '█'
	obstacleGlyph    = '▓'
	collectibleGlyph = '◆'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorBrightCyan:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// overlay selects the panel drawn over the playfield.
type overlay int

const (
	overlayNone overlay = iota
	overlayStart
	overlayPaused
	overlayGameOver
	overlayReplayEnd
)

// frameView is everything drawFrame needs besides the frame itself.
type frameView struct {
	overlay overlay
	status  string // Right-aligned HUD text, e.g. replay progress
}

// playfieldViewport returns the viewport for the playfield box on a screen
// of the given size. Row 0 holds the HUD; the box fills the rest.
func playfieldViewport(frame dodge.FrameResult, screenW, screenH int) core.Viewport {
	return core.Viewport{
		WorldW:  frame.Bounds.W,
		WorldH:  frame.Bounds.H,
		CellsW:  core.Max(screenW-2, 1),
		CellsH:  core.Max(screenH-3, 1),
		OffsetX: 1,
		OffsetY: 2,
	}
}

// drawFrame renders a frame onto the screen buffer.
func drawFrame(s *core.Screen, frame dodge.FrameResult, view frameView) {
	s.Clear()

	if s.Width() < minScreenW || s.Height() < minScreenH {
		s.DrawText(0, 0, "Terminal too small", core.ColorYellow)
		return
	}

	drawHUD(s, frame, view.status)
	s.DrawBox(core.NewRect(0, 1, s.Width(), s.Height()-1), core.ColorGray)

	vp := playfieldViewport(frame, s.Width(), s.Height())
	if frame.Started {
		for _, e := range frame.Collectibles {
			s.DrawRect(vp.Project(e.Rect()), collectibleGlyph, core.ColorGreen)
		}
		for _, e := range frame.Obstacles {
			s.DrawRect(vp.Project(e.Rect()), obstacleGlyph, core.ColorRed)
		}
		s.DrawRect(vp.Project(frame.Player), playerGlyph, core.ColorBlue)
	}

	switch view.overlay {
	case overlayStart:
		drawPanel(s, core.ColorBrightCyan,
			"D O D G E",
			"",
			"Avoid the red blocks",
			"Catch the green ones",
			"",
			"Press ENTER to start",
		)
	case overlayPaused:
		drawPanel(s, core.ColorYellow,
			"PAUSED",
			"",
			"Press P to resume",
		)
	case overlayGameOver:
		drawPanel(s, core.ColorRed,
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", frame.Score),
			"",
			"R to restart, Q to quit",
		)
	case overlayReplayEnd:
		drawPanel(s, core.ColorBrightCyan,
			"END OF REPLAY",
			"",
			fmt.Sprintf("Score: %d", frame.Score),
			"",
			"Q to quit",
		)
	}
}

// drawHUD writes score and speed on the top row.
func drawHUD(s *core.Screen, frame dodge.FrameResult, status string) {
	s.DrawText(1, 0, fmt.Sprintf("SCORE %d", frame.Score), core.ColorBrightWhite)
	s.DrawText(14, 0, fmt.Sprintf("SPEED %.1f", frame.Speed), core.ColorGray)
	if status != "" {
		s.DrawText(s.Width()-utf8.RuneCountInString(status)-1, 0, status, core.ColorYellow)
	}
}

// drawPanel draws a bordered box of centered lines in the middle of the screen.
func drawPanel(s *core.Screen, c core.Color, lines ...string) {
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, utf8.RuneCountInString(l))
	}
	w := core.Min(inner+4, s.Width())
	h := core.Min(len(lines)+2, s.Height())
	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (w-utf8.RuneCountInString(l))/2
		s.DrawText(x, box.Y+1+i, l, c)
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
