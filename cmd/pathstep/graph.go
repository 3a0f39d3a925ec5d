package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathstep/builder"
	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/internal/config"
	"github.com/katalvlaran/pathstep/session"
)

// errNoGraph is returned when neither edges, vertices nor a preset were given.
var errNoGraph = errors.New("no graph: pass --edge, --vertex or --preset")

// edgeSpec is one parsed --edge value.
type edgeSpec struct {
	a, b   string
	weight float64
}

// parseEdge reads "A-B:1"; the weight defaults to 1 when ":w" is omitted.
func parseEdge(s string) (edgeSpec, error) {
	ends, w, hasWeight := strings.Cut(strings.TrimSpace(s), ":")
	a, b, ok := strings.Cut(ends, "-")
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if !ok || a == "" || b == "" {
		return edgeSpec{}, fmt.Errorf("edge %q: want A-B or A-B:weight", s)
	}

	e := edgeSpec{a: a, b: b, weight: builder.DefaultEdgeWeight}
	if hasWeight {
		x, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
		if err != nil {
			return edgeSpec{}, fmt.Errorf("edge %q: weight: %w", s, err)
		}
		e.weight = x
	}

	return e, nil
}

// graphFlags are the flags shared by run and path.
type graphFlags struct {
	edges    []string
	vertices []string
	preset   string
	ids      string
	weights  string
	seed     int64
	from, to string
}

func (f *graphFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringArrayVarP(&f.edges, "edge", "e", nil, "edge as A-B:weight (repeatable)")
	fs.StringArrayVar(&f.vertices, "vertex", nil, "extra vertex label (repeatable)")
	fs.StringVar(&f.preset, "preset", "", "fixture graph as name:n ("+strings.Join(builder.Presets(), ", ")+")")
	fs.StringVar(&f.ids, "ids", builder.IDsAuto, "preset vertex labels: auto, pool, letters, excel, decimal or prefix:P")
	fs.StringVar(&f.weights, "weights", builder.WeightsInteger, "preset edge weights: integer, uniform, exponential or constant")
	fs.Int64Var(&f.seed, "seed", 1, "seed for the random preset")
	fs.StringVar(&f.from, "from", "", "source label (default: first vertex)")
	fs.StringVar(&f.to, "to", "", "destination label (default: last vertex)")
}

// applyPreset builds the "name:n" fixture into g.
func applyPreset(g *core.Graph, preset, ids, weights string, seed int64) error {
	idOpt, err := config.PresetIDs(preset, ids)
	if err != nil {
		return err
	}
	weightOpt, err := builder.WeightScheme(weights)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}
	name, n, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	ctor, err := builder.Preset(name, n)
	if err != nil {
		return err
	}

	return builder.Apply(g, []builder.BuilderOption{builder.WithSeed(seed), idOpt, weightOpt}, ctor)
}

// newSession builds the graph described by the flags and the configuration,
// and selects the endpoints.
func (a *app) newSession(cmd *cobra.Command, f *graphFlags) (*session.Session, error) {
	preset, ids, weights, seed := a.cfg.Preset, a.cfg.IDs, a.cfg.Weights, a.cfg.Seed
	flags := cmd.Flags()
	if flags.Changed("preset") {
		preset = f.preset
	}
	if flags.Changed("ids") {
		ids = f.ids
	}
	if flags.Changed("weights") {
		weights = f.weights
	}
	if flags.Changed("seed") {
		seed = f.seed
	}

	g := core.NewGraph(core.WithStrictConnect())
	if preset != "" {
		if err := applyPreset(g, preset, ids, weights, seed); err != nil {
			return nil, err
		}
	}

	s := session.New(session.WithGraph(g), session.WithLogger(a.logger))
	ensure := func(label string) error {
		if _, ok := g.Lookup(label); ok {
			return nil
		}
		_, err := s.AddVertex(label)
		return err
	}
	for _, raw := range f.edges {
		e, err := parseEdge(raw)
		if err != nil {
			return nil, err
		}
		if err = ensure(e.a); err != nil {
			return nil, err
		}
		if err = ensure(e.b); err != nil {
			return nil, err
		}
		if err = s.Connect(e.a, e.b, e.weight); err != nil {
			return nil, err
		}
	}
	for _, label := range f.vertices {
		if err := ensure(strings.TrimSpace(label)); err != nil {
			return nil, err
		}
	}

	labels := s.Labels()
	if len(labels) == 0 {
		return nil, errNoGraph
	}
	from, to := f.from, f.to
	if from == "" {
		from = labels[0]
	}
	if to == "" {
		to = labels[len(labels)-1]
	}
	if err := s.Select(cmd.Context(), from, to); err != nil {
		return nil, err
	}

	return s, nil
}
