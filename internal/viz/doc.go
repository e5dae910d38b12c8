// Package viz renders sampled waves for the terminal: asciigraph line plots
// for one-shot output and a braille [Canvas] for the animated view.
package viz
