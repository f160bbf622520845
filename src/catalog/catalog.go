package catalog

import (
	"github.com/pkg/errors"

	"lifeboard/src/config"
	"lifeboard/src/grid"
)

//Built-in templates. The data is column-major: the outer slice is the column (x),
//the inner one the row (y). Writing a pattern row by row here transposes it
var (
	Plane = grid.MustTemplate("plane", "small glider travelling down-right",
		[][]int{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}})
	DoubleCross = grid.MustTemplate("doubleCross", "two crosses one column apart",
		[][]int{{0, 1, 0}, {1, 1, 1}, {0, 1, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 1}, {0, 1, 0}})
	ExplodingJet = grid.MustTemplate("explodingJet", "symmetric jet that explodes into debris",
		[][]int{{1, 1, 0, 0, 0, 1, 1}, {0, 1, 1, 1, 1, 1, 0}, {0, 0, 1, 1, 1, 0, 0}, {0, 0, 0, 1, 0, 0, 0}})
)

//Entry is a template with the origin it is inserted at by default
type Entry struct {
	Template grid.Template
	Origin   grid.Coordinate
}

//Catalog is an ordered set of entries with unique template names
type Catalog struct {
	entries []Entry
}

//Default returns the built-in templates at their reference origins
func Default() *Catalog {
	return &Catalog{entries: []Entry{
		{Template: Plane, Origin: grid.Coordinate{Col: 30, Row: 0}},
		{Template: DoubleCross, Origin: grid.Coordinate{Col: 50, Row: 20}},
		{Template: ExplodingJet, Origin: grid.Coordinate{Col: 50, Row: 20}},
	}}
}

//Add appends an entry. Names must be unique
func (c *Catalog) Add(e Entry) error {
	if _, ok := c.Lookup(e.Template.Name()); ok {
		return errors.Wrapf(grid.ErrInvalidConfiguration, "duplicate template %q", e.Template.Name())
	}
	c.entries = append(c.entries, e)
	return nil
}

func (c *Catalog) Lookup(name string) (Entry, bool) {
	for _, e := range c.entries {
		if e.Template.Name() == name {
			return e, true
		}
	}
	return Entry{}, false
}

//Entries returns the entries in insertion order
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		names = append(names, e.Template.Name())
	}
	return names
}

func (c *Catalog) Len() int { return len(c.entries) }

//FromConfig returns the default catalog extended with the templates declared in cfg
func FromConfig(cfg config.Config) (*Catalog, error) {
	c := Default()
	for _, def := range cfg.Templates {
		t, err := grid.NewTemplate(def.Name, def.Descr, def.Cells)
		if err != nil {
			return nil, err
		}
		if err := c.Add(Entry{Template: t, Origin: grid.Coordinate{Col: def.Col, Row: def.Row}}); err != nil {
			return nil, err
		}
	}
	return c, nil
}
