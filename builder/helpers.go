package builder

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

// addVertices appends n vertices named by cfg.idFn and returns them in index order.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) ([]*core.Vertex, error) {
	vs := make([]*core.Vertex, 0, n)
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		v, err := g.NewVertex(id)
		if err != nil {
			return nil, fmt.Errorf("%s: NewVertex(%q): %w", method, id, err)
		}
		vs = append(vs, v)
	}

	return vs, nil
}

// connect links u and v with the next configured weight.
func connect(method string, g *core.Graph, cfg builderConfig, u, v *core.Vertex) error {
	w := cfg.weight()
	if err := g.Connect(u, v, w); err != nil {
		return fmt.Errorf("%s: Connect(%s, %s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// connectAll links every unordered pair of vs, i<j, in ascending order.
func connectAll(method string, g *core.Graph, cfg builderConfig, vs []*core.Vertex) error {
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if err := connect(method, g, cfg, vs[i], vs[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
