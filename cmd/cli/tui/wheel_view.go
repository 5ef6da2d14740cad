package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/wheel"
)

const placeholderText = "Add items with quantity to spin the wheel"

var pointerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true)

// EaseOutCubic maps animation progress in [0,1] to eased progress.
func EaseOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(1-t, 3)
}

// Interpolate returns the rotation shown at progress t of a spin from -> to.
func Interpolate(from, to, t float64) float64 {
	return from + (to-from)*EaseOutCubic(t)
}

// renderWheel draws the wheel as a disc of coloured cells with the pointer on top.
// Terminal cells are about twice as tall as wide, so columns span 2*radius each side.
func renderWheel(sectors []types.Sector, rotation float64, radius int) string {
	if len(sectors) == 0 {
		return placeholderText
	}

	styles := make([]lipgloss.Style, len(sectors))
	for i, s := range sectors {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", 2*radius))
	b.WriteString(pointerStyle.Render("▼"))
	b.WriteString("\n")

	r := float64(radius)
	hub := r * 0.3
	for y := -radius; y <= radius; y++ {
		for x := -2 * radius; x <= 2*radius; x++ {
			dx := float64(x) / 2
			dy := float64(y)
			dist := math.Hypot(dx, dy)
			if dist > r+0.25 || dist < hub {
				b.WriteByte(' ')
				continue
			}
			screen := wheel.Normalize(math.Atan2(dx, -dy) * 180 / math.Pi)
			// The cell at screen angle s shows what the pointer would show at rotation-s.
			idx, err := wheel.Resolve(rotation-screen, sectors)
			if err != nil {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(styles[idx].Render("█"))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderLegend lists sectors with their colour and remaining quantity.
func renderLegend(sectors []types.Sector, items []types.Item) string {
	if len(items) == 0 {
		return ""
	}
	colors := make(map[string]string, len(sectors))
	for _, s := range sectors {
		colors[s.Item.Name] = s.Color
	}

	var b strings.Builder
	for _, item := range items {
		swatch := "·"
		if c, ok := colors[item.Name]; ok {
			swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("■")
		}
		b.WriteString(swatch + " " + item.Name + " ×" + strconv.Itoa(item.Quantity) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
