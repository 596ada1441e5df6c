package graphio

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/errandgraph/graph"
)

var (
	// ErrMalformed indicates input that cannot be parsed.
	ErrMalformed = errors.New("graphio: malformed input")

	// ErrInvalidDocument indicates a parsed document that breaks a
	// validation rule.
	ErrInvalidDocument = errors.New("graphio: invalid document")
)

// EdgeSpec is one undirected edge of a Document.
type EdgeSpec struct {
	From   int   `yaml:"from" toml:"from" validate:"gte=0"`
	To     int   `yaml:"to" toml:"to" validate:"gte=0"`
	Weight int64 `yaml:"weight" toml:"weight" validate:"gte=0"`
}

// Errand is a stored ShortestErrand query.
type Errand struct {
	Home        int   `yaml:"home" toml:"home" validate:"gte=0"`
	Destination int   `yaml:"destination" toml:"destination" validate:"gte=0"`
	Ice         []int `yaml:"ice" toml:"ice" validate:"required,min=1,dive,gte=0"`
	IceCream    []int `yaml:"ice_cream" toml:"ice_cream" validate:"required,min=1,dive,gte=0"`
}

// Run executes the query against g.
func (e Errand) Run(g *graph.Graph) (*graph.Errand, error) {
	return g.ShortestErrand(e.Home, e.Destination, e.Ice, e.IceCream)
}

// Document is a graph in parsed form, optionally with errand queries.
// Order is capped at graph.MaxOrder so a tiny file cannot request a huge
// adjacency matrix.
type Document struct {
	Order   int        `yaml:"order" toml:"order" validate:"gte=0"`
	Edges   []EdgeSpec `yaml:"edges" toml:"edges" validate:"dive"`
	Errands []Errand   `yaml:"errands,omitempty" toml:"errands,omitempty" validate:"dive"`
}

// GraphEdges converts the edge specs to graph.Edge values.
func (d *Document) GraphEdges() []graph.Edge {
	out := make([]graph.Edge, len(d.Edges))
	for i, e := range d.Edges {
		out[i] = graph.Edge{From: e.From, To: e.To, Weight: e.Weight}
	}

	return out
}

// Graph builds a *graph.Graph from the document.
func (d *Document) Graph(opts ...graph.Option) (*graph.Graph, error) {
	return graph.New(d.Order, d.GraphEdges(), opts...)
}

// FromGraph returns the Document describing g's edges in weight order.
func FromGraph(g *graph.Graph) *Document {
	edges := g.Edges()
	doc := &Document{Order: g.Order(), Edges: make([]EdgeSpec, len(edges))}
	for i, e := range edges {
		doc.Edges[i] = EdgeSpec{From: e.From, To: e.To, Weight: e.Weight}
	}

	return doc
}

// Validate checks d against the field rules and the vertex ranges.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(documentRanges, Document{})

	return v
}

// documentRanges reports an Order above graph.MaxOrder and every vertex
// reference outside [0, Order).
func documentRanges(sl validator.StructLevel) {
	doc := sl.Current().Interface().(Document)
	if doc.Order > graph.MaxOrder {
		sl.ReportError(doc.Order, "Order", "Order", "max_order", strconv.Itoa(graph.MaxOrder))
	}
	order := strconv.Itoa(doc.Order)
	check := func(v int, field string) {
		if v >= doc.Order {
			sl.ReportError(v, field, field, "vertex", order)
		}
	}

	for i, e := range doc.Edges {
		check(e.From, fmt.Sprintf("Edges[%d].From", i))
		check(e.To, fmt.Sprintf("Edges[%d].To", i))
	}
	for i, q := range doc.Errands {
		check(q.Home, fmt.Sprintf("Errands[%d].Home", i))
		check(q.Destination, fmt.Sprintf("Errands[%d].Destination", i))
		for j, w := range q.Ice {
			check(w, fmt.Sprintf("Errands[%d].Ice[%d]", i, j))
		}
		for j, w := range q.IceCream {
			check(w, fmt.Sprintf("Errands[%d].IceCream[%d]", i, j))
		}
	}
}
