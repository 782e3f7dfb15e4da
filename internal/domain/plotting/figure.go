// Package plotting provides the public plotting API: free functions per
// plot kind, a static dispatch table, and an accessor bound to one
// experiment.
package plotting

// Figure is the renderable artifact produced by a plotting backend. It is
// returned to callers unchanged and serializes to a chart specification.
type Figure struct {
	Data   []Trace `json:"data" yaml:"data"`
	Layout Layout  `json:"layout" yaml:"layout"`
}

// Trace is a single data series within a figure. Which fields are populated
// depends on the trace type.
type Trace struct {
	// Type is the trace kind, e.g. "scatter", "bar", "contour", "parcoords".
	Type string `json:"type" yaml:"type"`
	// Name labels the trace in legends.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	X []float64   `json:"x,omitempty" yaml:"x,omitempty"`
	Y []float64   `json:"y,omitempty" yaml:"y,omitempty"`
	Z [][]float64 `json:"z,omitempty" yaml:"z,omitempty"`

	// Labels carries categorical x values for bar traces.
	Labels []string `json:"labels,omitempty" yaml:"labels,omitempty"`
	// Text carries per-point hover text.
	Text []string `json:"text,omitempty" yaml:"text,omitempty"`
	// Dimensions carries the axes of a parallel coordinates trace.
	Dimensions []Dimension `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	// Colorscale names the color gradient for contour traces.
	Colorscale string `json:"colorscale,omitempty" yaml:"colorscale,omitempty"`
}

// Dimension is one axis of a parallel coordinates trace.
type Dimension struct {
	Label  string    `json:"label" yaml:"label"`
	Values []float64 `json:"values" yaml:"values"`
}

// Layout describes figure-level presentation.
type Layout struct {
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
	XTitle string `json:"xaxis_title,omitempty" yaml:"xaxis_title,omitempty"`
	YTitle string `json:"yaxis_title,omitempty" yaml:"yaxis_title,omitempty"`
}
