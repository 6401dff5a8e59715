// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/katalvlaran/flightnet/bfs"
	"github.com/katalvlaran/flightnet/builder"
	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/dfs"
	"github.com/katalvlaran/flightnet/dijkstra"
	"github.com/katalvlaran/flightnet/netfile"
	"github.com/katalvlaran/flightnet/prim_kruskal"
)

// DemoNetwork is used when neither a file nor -random is given.
var DemoNetwork = netfile.Network{Flights: []netfile.Flight{
	{From: "Chicago", To: "New York", Distance: 10},
	{From: "Chicago", To: "Los Angeles", Distance: 20},
	{From: "Los Angeles", To: "San Francisco", Distance: 60},
	{From: "Chicago", To: "Phoenix", Distance: 40},
	{From: "New York", To: "San Francisco", Distance: 90},
}}

// Report is the JSON form of a run; text output renders the same fields.
type Report struct {
	Cities     int           `json:"cities"`
	Flights    int           `json:"flights"`
	Components int           `json:"components"`
	Rejected   []string      `json:"rejected,omitempty"`
	Listing    string        `json:"listing,omitempty"`
	Route      *RouteReport  `json:"route,omitempty"`
	MST        *SpanningTree `json:"mst,omitempty"`
	BFS        []string      `json:"bfs,omitempty"`
}

// RouteReport is the answer to a -from/-to query.
type RouteReport struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Reachable bool     `json:"reachable"`
	Distance  int64    `json:"distance"`
	Cities    []string `json:"cities,omitempty"`
}

// SpanningTree is the answer to a -mst query.
type SpanningTree struct {
	Method string           `json:"method"`
	Total  int64            `json:"total"`
	Edges  []netfile.Flight `json:"edges"`
}

// Run loads the network described by cfg, answers its queries and writes
// the results to out. Diagnostics go to logger.
func Run(ctx context.Context, out io.Writer, cfg *Config, logger *zap.Logger) error {
	g, rejected, err := loadNetwork(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("network ready",
		zap.Int("cities", g.CityCount()),
		zap.Int("flights", g.FlightCount()),
		zap.Int("rejected", len(rejected)),
	)

	if cfg.Export != "" {
		data, err := netfile.FromGraph(g).Marshal(cfg.Export)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	report, err := query(ctx, g, cfg)
	if err != nil {
		return err
	}
	if report.Components > 1 && report.MST != nil && report.MST.Method == prim_kruskal.MethodPrim {
		logger.Warn("network is disconnected; the spanning tree covers the first city's component only",
			zap.Int("components", report.Components))
	}
	for _, r := range rejected {
		report.Rejected = append(report.Rejected, fmt.Sprintf("%s-%s (%d): %v", r.Flight.From, r.Flight.To, r.Flight.Distance, r.Err))
	}

	if cfg.Output == OutputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	return writeText(out, report)
}

// loadNetwork builds the graph from a file, a random generator or the demo.
func loadNetwork(cfg *Config, logger *zap.Logger) (*core.Graph, []netfile.Rejected, error) {
	gopts := []core.GraphOption{core.WithLogger(logger)}

	switch {
	case cfg.Random > 0:
		logger.Debug("generating random network", zap.Int("cities", cfg.Random), zap.Int64("seed", cfg.Seed))
		g, err := builder.BuildGraph(gopts,
			[]builder.BuilderOption{builder.WithSeed(cfg.Seed), builder.WithWeightRange(1, 1000)},
			builder.RandomConnected(cfg.Random, cfg.Extra),
		)
		return g, nil, err
	case cfg.NetworkPath != "":
		logger.Debug("loading network file", zap.String("path", cfg.NetworkPath))
		n, err := netfile.Load(cfg.NetworkPath)
		if err != nil {
			return nil, nil, err
		}
		g, rejected := n.Build(gopts...)
		for _, r := range rejected {
			logger.Warn("flight skipped",
				zap.String("from", r.Flight.From),
				zap.String("to", r.Flight.To),
				zap.Error(r.Err),
			)
		}
		return g, rejected, nil
	default:
		g, _ := DemoNetwork.Build(gopts...)
		return g, nil, nil
	}
}

// query runs every requested query. Without explicit queries it prints the
// network, its MST and a traversal from the first city.
func query(ctx context.Context, g *core.Graph, cfg *Config) (*Report, error) {
	comps, err := dfs.Components(g)
	if err != nil {
		return nil, err
	}
	report := &Report{Cities: g.CityCount(), Flights: g.FlightCount(), Components: len(comps)}

	listing, method, start := cfg.Print, cfg.MSTMethod, cfg.BFSStart
	if !cfg.hasQuery() {
		listing, method = true, prim_kruskal.MethodPrim
		start, _ = g.First()
	}

	if listing {
		report.Listing = g.String()
	}
	if cfg.From != "" {
		route, err := shortestRoute(g, cfg.From, cfg.To)
		if err != nil {
			return nil, err
		}
		report.Route = route
	}
	if method != "" {
		edges, total, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method))
		if err != nil {
			return nil, err
		}
		report.MST = &SpanningTree{Method: method, Total: total, Edges: netfile.FromEdges(edges)}
	}
	if start != "" {
		res, err := bfs.BFS(g, start, bfs.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		report.BFS = res.Order
	}

	return report, nil
}

// shortestRoute answers a -from/-to query; unreachable is a result, not an error.
func shortestRoute(g *core.Graph, from, to string) (*RouteReport, error) {
	route, err := dijkstra.ShortestPath(g, from, to)
	switch {
	case errors.Is(err, dijkstra.ErrUnreachable):
		return &RouteReport{From: from, To: to}, nil
	case err != nil:
		return nil, &ExitError{Code: 1, Message: err.Error()}
	}

	return &RouteReport{From: from, To: to, Reachable: true, Distance: route.Distance, Cities: route.Cities}, nil
}

// writeText renders report for humans.
func writeText(w io.Writer, r *Report) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Network: %d cities, %d flights\n", r.Cities, r.Flights)
	if r.Components > 1 {
		fmt.Fprintf(&sb, "Components: %d\n", r.Components)
	}
	for _, rej := range r.Rejected {
		fmt.Fprintf(&sb, "Skipped: %s\n", rej)
	}
	if r.Listing != "" {
		sb.WriteString(r.Listing)
	}
	if r.Route != nil {
		if r.Route.Reachable {
			fmt.Fprintf(&sb, "Shortest %s -> %s: %d via %s\n",
				r.Route.From, r.Route.To, r.Route.Distance, strings.Join(r.Route.Cities, ", "))
		} else {
			fmt.Fprintf(&sb, "Shortest %s -> %s: unreachable\n", r.Route.From, r.Route.To)
		}
	}
	if r.MST != nil {
		fmt.Fprintf(&sb, "MST (%s): total %d\n", r.MST.Method, r.MST.Total)
		for _, e := range r.MST.Edges {
			fmt.Fprintf(&sb, "  %s - %s (%d)\n", e.From, e.To, e.Distance)
		}
	}
	if r.BFS != nil {
		fmt.Fprintf(&sb, "BFS: %s\n", strings.Join(r.BFS, ", "))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
