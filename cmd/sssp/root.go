package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/render"
)

var (
	// ErrNoSource is returned when no source vertex was named.
	ErrNoSource = errors.New("sssp: --source is required")

	// ErrUndeclaredVertex is returned for an edge endpoint missing from --vertex.
	ErrUndeclaredVertex = errors.New("sssp: edge endpoint not declared")
)

// demoSource is the default source when --demo is given alone.
const demoSource = "A"

var (
	demoVertices = []string{"A", "B", "C", "D", "E"}
	demoEdges    = []core.EdgeSpec{
		{From: "A", To: "B", Weight: 4},
		{From: "A", To: "C", Weight: 2},
		{From: "B", To: "C", Weight: 1},
		{From: "B", To: "D", Weight: 5},
		{From: "C", To: "D", Weight: 8},
		{From: "C", To: "E", Weight: 10},
		{From: "D", To: "E", Weight: 2},
	}
)

// rootOptions holds the parsed flags of one invocation.
type rootOptions struct {
	vertices     []string
	edges        []string
	autoVertices bool
	source       string
	demo         bool
	symmetric    bool
	maxDistance  float64
	dot          bool
	logLevel     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "sssp",
		Short: "Print single-source shortest paths of a weighted directed graph",
		Long: `sssp builds a graph from --vertex and --edge flags (or the --demo graph),
runs Dijkstra from --source and prints every vertex with its shortest path
and distance. With --dot the shortest-path tree is printed as Graphviz DOT.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := setupLogging(opts.logLevel); err != nil {
				return err
			}

			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.vertices, "vertex", "v", nil, "declare a vertex (repeatable)")
	flags.StringArrayVarP(&opts.edges, "edge", "e", nil, "add a directed edge FROM:TO:WEIGHT (repeatable)")
	flags.BoolVar(&opts.autoVertices, "auto-vertices", false, "declare edge endpoints implicitly")
	flags.StringVarP(&opts.source, "source", "s", "", "source vertex")
	flags.BoolVar(&opts.demo, "demo", false, "load the five-vertex example graph")
	flags.BoolVar(&opts.symmetric, "symmetric", false, "insert every edge in both directions")
	flags.Float64Var(&opts.maxDistance, "max-distance", 0, "leave vertices farther than this unreached")
	flags.BoolVar(&opts.dot, "dot", false, "print the shortest-path tree as Graphviz DOT")
	flags.StringVar(&opts.logLevel, "log-level", DefaultLogLevel, "trace, debug, info, warning, error or critical")

	return cmd
}

// run builds the graph, solves from the source and writes the report.
func run(cmd *cobra.Command, opts *rootOptions) error {
	vertices, specs, err := collect(opts)
	if err != nil {
		return err
	}

	source := opts.source
	if source == "" && opts.demo {
		source = demoSource
	}
	if source == "" {
		return ErrNoSource
	}

	var bopts []builder.BuilderOption
	if opts.symmetric {
		bopts = append(bopts, builder.WithBidirectional())
	}
	g, err := builder.BuildGraph(nil, bopts, builder.Vertices(vertices...), builder.Edges(specs...))
	if err != nil {
		return err
	}
	log.Infof("sssp: graph has %d vertices and %d edges", g.VertexCount(), g.EdgeCount())

	dopts := []dijkstra.Option{
		dijkstra.WithContext(cmd.Context()),
		dijkstra.WithOnVisit(func(v core.VertexID, dist float64) error {
			name, _ := g.Name(v)
			log.Tracef("sssp: settled %s at %s", name, render.FormatDistance(dist))

			return nil
		}),
	}
	if cmd.Flags().Changed("max-distance") {
		dopts = append(dopts, dijkstra.WithMaxDistance(opts.maxDistance))
	}

	res, err := dijkstra.DijkstraFrom(g, source, dopts...)
	if err != nil {
		return err
	}
	log.Debugf("sssp: reached %d of %d vertices from %s", len(res.Distances()), res.Len(), source)

	return write(cmd.OutOrStdout(), res, opts.dot)
}

// collect merges the demo graph with the flag values and checks that every
// edge endpoint is declared unless --auto-vertices is set.
func collect(opts *rootOptions) ([]string, []core.EdgeSpec, error) {
	parsed, err := parseEdges(opts.edges)
	if err != nil {
		return nil, nil, err
	}

	var (
		vertices []string
		specs    []core.EdgeSpec
	)
	if opts.demo {
		vertices = append(vertices, demoVertices...)
		specs = append(specs, demoEdges...)
	}
	vertices = append(vertices, opts.vertices...)
	specs = append(specs, parsed...)

	if opts.autoVertices {
		return vertices, specs, nil
	}

	declared := make(map[string]struct{}, len(vertices))
	for _, name := range vertices {
		declared[name] = struct{}{}
	}
	for _, spec := range specs {
		for _, name := range []string{spec.From, spec.To} {
			if _, ok := declared[name]; !ok {
				log.Warningf("sssp: edge %s uses undeclared vertex %q", spec, name)
				return nil, nil, fmt.Errorf("%w: %q in %s", ErrUndeclaredVertex, name, spec)
			}
		}
	}

	return vertices, specs, nil
}

func write(w io.Writer, res *dijkstra.Result, dot bool) error {
	if !dot {
		return render.Text(w, res)
	}
	out, err := render.DOT(res)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)

	return err
}
