// Package gen turns the YAML message schemas under schema/ into the Go
// sources of the component and message packages.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Kind is the shape of a schema type.
type Kind string

const (
	KindText    Kind = "text"
	KindDecimal Kind = "decimal"
	KindCode    Kind = "code"
	KindRecord  Kind = "record"
	KindAmount  Kind = "amount"
	KindChoice  Kind = "choice"
	KindAny     Kind = "any"
)

// ComponentPackage is the package name of the shared type schema.
const ComponentPackage = "component"

// builtins are field types that map to Go types and carry no rules.
var builtins = map[string]bool{
	"string":  true,
	"float64": true,
	"bool":    true,
}

// Field is a record field or a choice alternative. Name is the XML element
// name and the Go identifier.
type Field struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional"`
	Repeated bool   `yaml:"repeated"`
}

// Type is one entry of the component schema.
type Type struct {
	Name string `yaml:"name"`
	Kind Kind   `yaml:"kind"`

	// text and decimal facets
	MinLength    *int     `yaml:"minLength"`
	MaxLength    *int     `yaml:"maxLength"`
	Pattern      string   `yaml:"pattern"`
	MinInclusive *float64 `yaml:"minInclusive"`
	MaxInclusive *float64 `yaml:"maxInclusive"`

	Codes []string `yaml:"codes"`

	// amount
	Currency string `yaml:"currency"`
	Value    string `yaml:"value"`

	Fields       []Field `yaml:"fields"`
	Alternatives []Field `yaml:"alternatives"`
}

// Message is a message root: a record registered under an ID and element.
type Message struct {
	ID      string  `yaml:"id"`
	Element string  `yaml:"element"`
	Name    string  `yaml:"name"`
	Fields  []Field `yaml:"fields"`
}

// Schema is the content of one YAML file.
type Schema struct {
	Package  string    `yaml:"package"`
	Types    []Type    `yaml:"types"`
	Messages []Message `yaml:"messages"`
}

// Set is a loaded schema directory.
type Set struct {
	Components []Type
	Families   []Schema

	index map[string]*Type
}

// Lookup returns the component type called name.
func (s *Set) Lookup(name string) (*Type, bool) {
	t, ok := s.index[name]
	return t, ok
}

// Load reads every *.yaml file in dir and checks the result.
func Load(dir string) (*Set, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("gen: no schema files in %s", dir)
	}
	sort.Strings(paths)

	set := &Set{}
	seenComponent := false
	for _, p := range paths {
		sc, err := readSchema(p)
		if err != nil {
			return nil, err
		}
		if sc.Package == ComponentPackage {
			if seenComponent {
				return nil, fmt.Errorf("gen: %s: second %s schema", p, ComponentPackage)
			}
			seenComponent = true
			set.Components = sc.Types
			continue
		}
		if len(sc.Types) > 0 {
			return nil, fmt.Errorf("gen: %s: only the %s schema may declare types", p, ComponentPackage)
		}
		set.Families = append(set.Families, sc)
	}
	if !seenComponent {
		return nil, fmt.Errorf("gen: %s has no %s schema", dir, ComponentPackage)
	}
	sort.Slice(set.Components, func(i, j int) bool { return set.Components[i].Name < set.Components[j].Name })
	sort.Slice(set.Families, func(i, j int) bool { return set.Families[i].Package < set.Families[j].Package })
	return set, set.Check()
}

func readSchema(path string) (Schema, error) {
	var sc Schema
	b, err := os.ReadFile(path)
	if err != nil {
		return sc, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return sc, fmt.Errorf("gen: %s: %w", path, err)
	}
	if sc.Package == "" {
		return sc, fmt.Errorf("gen: %s: missing package", path)
	}
	return sc, nil
}

// Check verifies that names are unique, kinds are known and every reference
// resolves. All problems are reported together.
func (s *Set) Check() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	s.index = make(map[string]*Type, len(s.Components))
	for i := range s.Components {
		t := &s.Components[i]
		if t.Name == "" {
			fail("type #%d has no name", i)
			continue
		}
		if _, dup := s.index[t.Name]; dup {
			fail("type %s declared twice", t.Name)
		}
		s.index[t.Name] = t
	}

	ref := func(owner, name string, kinds ...Kind) {
		if builtins[name] && len(kinds) == 0 {
			return
		}
		t, ok := s.index[name]
		if !ok {
			fail("%s: unknown type %q", owner, name)
			return
		}
		if len(kinds) == 0 {
			return
		}
		for _, k := range kinds {
			if t.Kind == k {
				return
			}
		}
		fail("%s: %s is a %s type", owner, name, t.Kind)
	}
	fields := func(owner string, fs []Field) {
		seen := map[string]bool{}
		for _, f := range fs {
			if f.Name == "" {
				fail("%s: field with no name", owner)
				continue
			}
			if seen[f.Name] {
				fail("%s: field %s declared twice", owner, f.Name)
			}
			seen[f.Name] = true
			ref(owner+"."+f.Name, f.Type)
		}
	}

	for _, t := range s.Components {
		switch t.Kind {
		case KindText:
			if t.MinInclusive != nil || t.MaxInclusive != nil {
				fail("%s: numeric bounds on a text type", t.Name)
			}
		case KindDecimal:
			if t.MinLength != nil || t.MaxLength != nil || t.Pattern != "" {
				fail("%s: text facets on a decimal type", t.Name)
			}
		case KindCode:
			if len(t.Codes) == 0 {
				fail("%s: code list without codes", t.Name)
			}
		case KindRecord:
			fields(t.Name, t.Fields)
		case KindAmount:
			ref(t.Name+" currency", t.Currency, KindText, KindCode)
			ref(t.Name+" value", t.Value, KindDecimal)
		case KindChoice:
			if len(t.Alternatives) < 2 {
				fail("%s: choice needs at least two alternatives", t.Name)
			}
			fields(t.Name, t.Alternatives)
		case KindAny:
		default:
			fail("%s: unknown kind %q", t.Name, t.Kind)
		}
	}

	ids := map[string]bool{}
	for _, fam := range s.Families {
		for _, m := range fam.Messages {
			switch {
			case m.ID == "" || m.Element == "" || m.Name == "":
				fail("%s: message needs id, element and name", fam.Package)
			case ids[m.ID]:
				fail("%s: message %s declared twice", fam.Package, m.ID)
			case s.index[m.Name] != nil:
				fail("%s: message %s reuses the component name %s", fam.Package, m.ID, m.Name)
			}
			ids[m.ID] = true
			fields(m.Name, m.Fields)
		}
	}
	return errors.Join(errs...)
}
