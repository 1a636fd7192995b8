package network

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metronav/core"
)

//go:embed delhi.yaml
var delhiYAML []byte

// File is the YAML representation of a network.
type File struct {
	Name        string       `yaml:"name"`
	Stations    []string     `yaml:"stations"`
	Connections []Connection `yaml:"connections"`
}

// Connection is one undirected edge of a network file.
type Connection struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Km   int64  `yaml:"km"`
}

// Network is a named, seeded station graph.
type Network struct {
	Name  string
	Graph *core.Graph
}

// Default returns a fresh copy of the embedded Delhi reference graph.
func Default() (*core.Graph, error) {
	n, err := DefaultNetwork()
	if err != nil {
		return nil, err
	}

	return n.Graph, nil
}

// DefaultNetwork returns a fresh copy of the embedded Delhi reference network.
func DefaultNetwork() (*Network, error) {
	return Load(bytes.NewReader(delhiYAML))
}

// LoadFile reads and seeds a network from a YAML file on disk.
func LoadFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("network: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a YAML network from r and seeds a graph from it.
// Unknown YAML fields are rejected.
func Load(r io.Reader) (*Network, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("network: decode: %w", err)
	}

	g, err := file.Build()
	if err != nil {
		return nil, err
	}

	return &Network{Name: file.Name, Graph: g}, nil
}

// Build seeds a new graph from the file contents.
//
// Implementation:
//   - Stage 1: Add every declared station (core validates names).
//   - Stage 2: For each connection, require both endpoints to be declared and the
//     pair to be new, then add the edge (core validates weight and loops).
func (f *File) Build() (*core.Graph, error) {
	g := core.NewGraph()

	var name string
	for _, name = range f.Stations {
		if err := g.AddStation(name); err != nil {
			return nil, fmt.Errorf("network: station %q: %w", name, err)
		}
	}

	var c Connection
	for _, c = range f.Connections {
		if !g.HasStation(c.From) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStation, c.From)
		}
		if !g.HasStation(c.To) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStation, c.To)
		}
		if g.HasEdge(c.From, c.To) {
			return nil, fmt.Errorf("%w: %q - %q", ErrDuplicateConnection, c.From, c.To)
		}
		if err := g.AddEdge(c.From, c.To, c.Km); err != nil {
			return nil, fmt.Errorf("network: connection %q - %q: %w", c.From, c.To, err)
		}
	}

	return g, nil
}
