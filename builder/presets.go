package builder

import (
	"fmt"
	"strings"
)

// DefaultSparseProbability is the edge probability of the "random" preset.
const DefaultSparseProbability = 0.35

// Presets lists the names Preset accepts, sorted.
func Presets() []string {
	return []string{"complete", "cycle", "grid", "path", "random", "star", "wheel"}
}

// Preset maps a named fixture and its size to a Constructor.
// "grid" builds an n×n lattice; "random" uses DefaultSparseProbability and
// needs WithSeed or WithRand at build time.
func Preset(name string, n int) (Constructor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "path":
		return Path(n), nil
	case "cycle":
		return Cycle(n), nil
	case "star":
		return Star(n), nil
	case "wheel":
		return Wheel(n), nil
	case "complete":
		return Complete(n), nil
	case "grid":
		return Grid(n, n), nil
	case "random":
		return RandomSparse(n, DefaultSparseProbability), nil
	default:
		return nil, fmt.Errorf("Preset(%q): %w", name, ErrUnknownPreset)
	}
}

// PresetOrder returns how many vertices of the named preset take their
// labels from the ID scheme: n for every preset except grid, whose
// coordinate labels are fixed (0).
func PresetOrder(name string, n int) int {
	if strings.EqualFold(strings.TrimSpace(name), "grid") {
		return 0
	}

	return n
}
