package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type formatter func(w io.Writer, out []outcome) error

func formatterFor(name string) (formatter, error) {
	switch name {
	case "text", "":
		return writeText, nil
	case "yaml":
		return writeYAML, nil
	default:
		return nil, fmt.Errorf("--format: unknown format %q, want text or yaml", name)
	}
}

// writeText prints one block per set: edges in rank space, then the closed
// tour in input indices.
func writeText(w io.Writer, out []outcome) error {
	var sb strings.Builder
	for _, o := range out {
		if o.err != nil {
			fmt.Fprintf(&sb, "%s: error: %v\n", o.set.Name, o.err)
			continue
		}
		fmt.Fprintf(&sb, "%s: n=%d length=%.6f\n", o.set.Name, o.set.Len(), o.res.Length)
		sb.WriteString("  edges:")
		for _, e := range o.res.Edges {
			fmt.Fprintf(&sb, " %d-%d", e.U, e.V)
		}
		sb.WriteString("\n  order:")
		for _, v := range o.res.OriginalOrder() {
			fmt.Fprintf(&sb, " %d", v)
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

type yamlBounds struct {
	Min []float64 `yaml:"min,flow"`
	Max []float64 `yaml:"max,flow"`
}

type yamlReport struct {
	Name   string      `yaml:"name"`
	N      int         `yaml:"n"`
	Length float64     `yaml:"length,omitempty"`
	Edges  [][]int     `yaml:"edges,flow,omitempty"`
	Order  []int       `yaml:"order,flow,omitempty"`
	Bounds *yamlBounds `yaml:"bounds,omitempty"`
	Error  string      `yaml:"error,omitempty"`
}

func writeYAML(w io.Writer, out []outcome) error {
	reports := make([]yamlReport, len(out))
	for i, o := range out {
		r := yamlReport{Name: o.set.Name, N: o.set.Len()}
		if o.err != nil {
			r.Error = o.err.Error()
			reports[i] = r
			continue
		}
		r.Length = o.res.Length
		r.Edges = make([][]int, len(o.res.Edges))
		for j, e := range o.res.Edges {
			r.Edges[j] = []int{e.U, e.V}
		}
		r.Order = o.res.OriginalOrder()
		b := o.set.Bounds()
		r.Bounds = &yamlBounds{Min: []float64{b.Min.X, b.Min.Y}, Max: []float64{b.Max.X, b.Max.Y}}
		reports[i] = r
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return err
	}

	return enc.Close()
}
