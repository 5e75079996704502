package pattern

import (
	"github.com/aquilax/go-perlin"

	"mad-life/internal/core"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	// noiseScale converts cell coordinates to noise space; smaller values give
	// larger blobs.
	noiseScale = 0.08
)

// region returns the Width*Height rectangle centred on the origin.
func region(p Params) core.Rect {
	w, h := p.Width, p.Height
	if w <= 0 {
		w = DefaultParams().Width
	}
	if h <= 0 {
		h = DefaultParams().Height
	}
	origin := core.Cell{X: -w / 2, Y: -h / 2}
	return core.Rect{Min: origin, Max: core.Cell{X: origin.X + w, Y: origin.Y + h}}
}

// Random fills the region with independently live cells at p.Density.
func Random(p Params) core.CellSet {
	rng := NewRNG(p.Seed)
	r := region(p)
	s := core.NewCellSet()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if rng.Chance(p.Density) {
				s.Add(core.Cell{X: x, Y: y})
			}
		}
	}
	return s
}

// Noise fills the region with clustered live cells: a cell is alive where the
// perlin noise field exceeds a threshold chosen from p.Density, thinned by the
// RNG so the clusters are not solid blocks that die in one generation.
func Noise(p Params) core.CellSet {
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, p.Seed)
	rng := NewRNG(p.Seed)
	// Noise2D is roughly within [-0.5, 0.5].
	threshold := 0.5 - clamp01(p.Density)
	r := region(p)
	s := core.NewCellSet()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			v := noise.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale)
			if v > threshold && rng.Chance(0.5) {
				s.Add(core.Cell{X: x, Y: y})
			}
		}
	}
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
