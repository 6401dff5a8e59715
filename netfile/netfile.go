// SPDX-License-Identifier: MIT

// Package netfile reads and writes flight networks as YAML, HCL or JSON
// documents and turns them into a core.Graph.
//
// YAML and JSON share one shape:
//
//	flights:
//	  - {from: Chicago, to: New York, distance: 10}
//
// HCL uses one block per flight:
//
//	flight {
//	  from     = "Chicago"
//	  to       = "New York"
//	  distance = 10
//	}
package netfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/flightnet/core"
)

// Format names a supported document encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
	FormatJSON Format = "json"
)

var (
	// ErrUnknownFormat indicates a file extension or Format netfile cannot handle.
	ErrUnknownFormat = errors.New("netfile: unknown format")

	// ErrEmptyNetwork indicates a document without a single flight.
	ErrEmptyNetwork = errors.New("netfile: no flights")
)

// Flight is one undirected connection as written in a network file.
type Flight struct {
	From     string `yaml:"from" json:"from" hcl:"from"`
	To       string `yaml:"to" json:"to" hcl:"to"`
	Distance int64  `yaml:"distance" json:"distance" hcl:"distance"`
}

// Network is the decoded content of a network file.
type Network struct {
	Flights []Flight `yaml:"flights" json:"flights"`
}

// hclNetworkFile is the top-level structure of an HCL network file.
type hclNetworkFile struct {
	Flights []*Flight `hcl:"flight,block"`
}

// Rejected is a flight that core.Graph refused, with the reason.
type Rejected struct {
	Flight Flight
	Err    error
}

// FormatOf maps a file extension to its Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "extension of %q", path)
	}
}

// Load reads path and decodes it according to its extension.
func Load(path string) (*Network, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read network file %s", path)
	}

	return parse(data, format, path)
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*Network, error) {
	return parse(data, format, "network."+string(format))
}

func parse(data []byte, format Format, name string) (*Network, error) {
	n := &Network{}
	switch format {
	case FormatYAML:
		if err := yaml.UnmarshalStrict(data, n); err != nil {
			return nil, errors.Wrapf(err, "decode yaml %s", name)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(n); err != nil {
			return nil, errors.Wrapf(err, "decode json %s", name)
		}
	case FormatHCL:
		file, diags := hclparse.NewParser().ParseHCL(data, name)
		if diags.HasErrors() {
			return nil, errors.Wrapf(diags, "parse hcl %s", name)
		}
		var decoded hclNetworkFile
		if diags := gohcl.DecodeBody(file.Body, nil, &decoded); diags.HasErrors() {
			return nil, errors.Wrapf(diags, "decode hcl %s", name)
		}
		for _, f := range decoded.Flights {
			n.Flights = append(n.Flights, *f)
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	if len(n.Flights) == 0 {
		return nil, errors.Wrap(ErrEmptyNetwork, name)
	}

	return n, nil
}

// Build inserts every flight into a new core.Graph in file order. Flights
// the graph rejects are returned with their reason; the rest of the network
// is still built.
func (n *Network) Build(opts ...core.GraphOption) (*core.Graph, []Rejected) {
	g := core.NewGraph(opts...)
	var rejected []Rejected
	for _, f := range n.Flights {
		if err := g.AddEdge(f.From, f.To, f.Distance); err != nil {
			rejected = append(rejected, Rejected{Flight: f, Err: err})
		}
	}

	return g, rejected
}

// FromGraph captures the flights of g in insertion order.
func FromGraph(g *core.Graph) *Network {
	return &Network{Flights: FromEdges(g.Flights())}
}

// FromEdges converts edges to file flights, keeping their orientation.
func FromEdges(edges []core.Edge) []Flight {
	out := make([]Flight, len(edges))
	for i, e := range edges {
		out[i] = Flight{From: e.From, To: e.To, Distance: e.Weight}
	}

	return out
}

// Marshal encodes n as YAML or JSON. HCL output is not supported.
func (n *Network) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		out, err := yaml.Marshal(n)
		return out, errors.Wrap(err, "encode yaml")
	case FormatJSON:
		out, err := json.MarshalIndent(n, "", "  ")
		return out, errors.Wrap(err, "encode json")
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "cannot encode %q", format)
	}
}
