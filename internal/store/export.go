package store

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/qwave/internal/qm"
)

type ExportData struct {
	Scenario string    `json:"scenario"`
	Samples  int       `json:"samples"`
	Psi      []float64 `json:"psi"`
	Density  []float64 `json:"density,omitempty"`
}

// ExportJSON writes a wave (and optional density) as indented JSON.
func ExportJSON(w io.Writer, scenario string, wave, density qm.SampleBuffer) error {
	data := ExportData{
		Scenario: scenario,
		Samples:  len(wave),
		Psi:      wave,
		Density:  density,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WaveToSVG renders a sampled wave as an SVG polyline. NaN samples (the
// asin domain sentinel) break the path rather than drawing a spike.
func WaveToSVG(wave qm.SampleBuffer, width, height int, strokeColor string) string {
	if len(wave) < 2 {
		return ""
	}

	minV, maxV := wave[0], wave[0]
	for _, v := range wave {
		if math.IsNaN(v) {
			continue
		}
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	rangeV := maxV - minV
	if rangeV == 0 {
		rangeV = 1
	}
	minV -= rangeV * 0.1
	maxV += rangeV * 0.1
	rangeV = maxV - minV

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="`,
		width, height, width, height, strokeColor))

	pen := "M"
	for i, v := range wave {
		if math.IsNaN(v) {
			pen = "M"
			continue
		}
		x := float64(i) / float64(len(wave)-1) * float64(width)
		y := float64(height) - (v-minV)/rangeV*float64(height)
		sb.WriteString(fmt.Sprintf("%s%.1f,%.1f ", pen, x, y))
		pen = "L"
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
