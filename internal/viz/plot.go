package viz

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/qwave/internal/qm"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func Header(s string) string { return headerStyle.Render(s) }
func Label(s string) string  { return labelStyle.Render(s) }

// Plot renders a sampled wave as an asciigraph chart. The buffer is
// downsampled to the plot width and NaN samples are bridged with zeros so
// asciigraph never sees a non-finite value.
func Plot(wave qm.SampleBuffer, width, height int, caption string) string {
	data := Downsample(wave, width)
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			data[i] = 0
		}
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
	return graphStyle.Render(graph)
}

// Downsample reduces a buffer to at most width points by striding, keeping
// the first and last samples.
func Downsample(wave qm.SampleBuffer, width int) []float64 {
	if width <= 0 || len(wave) <= width {
		out := make([]float64, len(wave))
		copy(out, wave)
		return out
	}

	out := make([]float64, width)
	for i := range out {
		j := i * (len(wave) - 1) / (width - 1)
		out[i] = wave[j]
	}
	return out
}
