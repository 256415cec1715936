package catalog

import (
	"fmt"
	"sort"
)

// Declaration declares one capability identity an application may register.
type Declaration struct {
	// Name is the fully qualified capability name, as reported by
	// Capability.String(), e.g. "github.com/acme/app/audio.System".
	Name string `yaml:"name" json:"name"`

	// Description explains the capability's purpose.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Required marks capabilities the application cannot run without.
	Required bool `yaml:"required,omitempty" json:"required,omitempty"`
}

// Catalog is an immutable set of capability declarations. Safe for
// concurrent use: it is never mutated after New returns.
type Catalog struct {
	decls map[string]Declaration
}

// New builds a catalog from declarations.
// Declarations with empty or duplicate names are rejected.
func New(decls ...Declaration) (*Catalog, error) {
	m := make(map[string]Declaration, len(decls))
	for _, d := range decls {
		if d.Name == "" {
			return nil, fmt.Errorf("catalog: declaration with empty name")
		}
		if _, exists := m[d.Name]; exists {
			return nil, fmt.Errorf("catalog: duplicate declaration %q", d.Name)
		}
		m[d.Name] = d
	}
	return &Catalog{decls: m}, nil
}

// Allows reports whether name is a declared capability identity.
func (c *Catalog) Allows(name string) bool {
	_, ok := c.decls[name]
	return ok
}

// Get returns the declaration for name and whether it exists.
func (c *Catalog) Get(name string) (Declaration, bool) {
	d, ok := c.decls[name]
	return d, ok
}

// Names returns all declared names in lexicographic order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.decls))
	for name := range c.decls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Required returns the declarations marked required, ordered by name.
func (c *Catalog) Required() []Declaration {
	var req []Declaration
	for _, name := range c.Names() {
		if d := c.decls[name]; d.Required {
			req = append(req, d)
		}
	}
	return req
}

// Len returns the number of declarations.
func (c *Catalog) Len() int { return len(c.decls) }
