package gen

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

// DefaultModule is the import path prefix of the generated packages.
const DefaultModule = "openpayments.dev/iso20022"

const header = "// Code generated by iso20022gen. DO NOT EDIT.\n\n"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type constView struct {
	Ident string
	Value string
}

type simpleView struct {
	Name   string
	Doc    string
	Base   string
	Consts []constView
	Facets []string
	Check  string
}

type fieldView struct {
	Name   string
	GoType string
	Tag    string
}

type recordView struct {
	Name   string
	Doc    string
	Recv   string
	Fields []fieldView
	Checks []string
}

type choiceView struct {
	Name string
	Doc  string
	Alts []Field
}

var nonIdent = regexp.MustCompile(`[^A-Za-z0-9]`)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func facetExprs(t *Type) []string {
	if t.Kind == KindCode {
		quoted := make([]string, len(t.Codes))
		for i, c := range t.Codes {
			quoted[i] = strconv.Quote(c)
		}
		return []string{"facet.Enumeration(" + strings.Join(quoted, ", ") + ")"}
	}
	var out []string
	if t.MinLength != nil {
		out = append(out, fmt.Sprintf("facet.MinLength(%d)", *t.MinLength))
	}
	if t.MaxLength != nil {
		out = append(out, fmt.Sprintf("facet.MaxLength(%d)", *t.MaxLength))
	}
	if t.Pattern != "" {
		out = append(out, "facet.Pattern(`"+t.Pattern+"`)")
	}
	if t.MinInclusive != nil {
		out = append(out, "facet.MinInclusive("+formatFloat(*t.MinInclusive)+")")
	}
	if t.MaxInclusive != nil {
		out = append(out, "facet.MaxInclusive("+formatFloat(*t.MaxInclusive)+")")
	}
	return out
}

func facetWords(t *Type) string {
	var w []string
	if t.MinLength != nil {
		w = append(w, fmt.Sprintf("minLength %d", *t.MinLength))
	}
	if t.MaxLength != nil {
		w = append(w, fmt.Sprintf("maxLength %d", *t.MaxLength))
	}
	if t.Pattern != "" {
		w = append(w, "pattern "+t.Pattern)
	}
	if t.MinInclusive != nil {
		w = append(w, "minInclusive "+formatFloat(*t.MinInclusive))
	}
	if t.MaxInclusive != nil {
		w = append(w, "maxInclusive "+formatFloat(*t.MaxInclusive))
	}
	return strings.Join(w, ", ")
}

func newSimpleView(t *Type) simpleView {
	v := simpleView{Name: t.Name, Base: "string", Facets: facetExprs(t), Check: "Text(string(v)"}
	switch t.Kind {
	case KindCode:
		v.Doc = "is a code list."
		for _, c := range t.Codes {
			v.Consts = append(v.Consts, constView{Ident: t.Name + nonIdent.ReplaceAllString(c, ""), Value: c})
		}
	case KindDecimal:
		v.Base = "float64"
		v.Check = "Decimal(float64(v)"
		v.Doc = "is an unrestricted decimal type."
		if len(v.Facets) > 0 {
			v.Doc = "is a decimal type restricted by " + facetWords(t) + "."
		}
	default:
		v.Doc = "is an unrestricted text type."
		if len(v.Facets) > 0 {
			v.Doc = "is a text type restricted by " + facetWords(t) + "."
		}
	}
	return v
}

func goType(f Field, qualifier string) string {
	t := f.Type
	if !builtins[t] {
		t = qualifier + t
	}
	switch {
	case f.Repeated:
		return "[]" + t
	case f.Optional:
		return "*" + t
	}
	return t
}

func fieldTag(f Field) string {
	if f.Optional {
		return fmt.Sprintf("`xml:\"%[1]s,omitempty\" json:\"%[1]s,omitempty\"`", f.Name)
	}
	return fmt.Sprintf("`xml:\"%[1]s\" json:\"%[1]s\"`", f.Name)
}

func newRecordView(name, doc, recv, qualifier string, fields []Field) recordView {
	v := recordView{Name: name, Doc: doc, Recv: recv}
	for _, f := range fields {
		v.Fields = append(v.Fields, fieldView{Name: f.Name, GoType: goType(f, qualifier), Tag: fieldTag(f)})
		if builtins[f.Type] {
			continue
		}
		switch {
		case f.Repeated:
			v.Checks = append(v.Checks, fmt.Sprintf("valid.Each(c, %q, %s.%s)", f.Name, recv, f.Name))
		case f.Optional:
			v.Checks = append(v.Checks, fmt.Sprintf("valid.Optional(c, %q, %s.%s)", f.Name, recv, f.Name))
		default:
			v.Checks = append(v.Checks, fmt.Sprintf("c.Field(%q, %s.%s)", f.Name, recv, f.Name))
		}
	}
	return v
}

func componentRecordView(t *Type) recordView {
	switch t.Kind {
	case KindAmount:
		return recordView{
			Name: t.Name,
			Doc:  "is an amount in the currency given by Ccy.",
			Recv: "a",
			Fields: []fieldView{
				{Name: "Ccy", GoType: t.Currency, Tag: "`xml:\"Ccy,attr\" json:\"Ccy\"`"},
				{Name: "Value", GoType: t.Value, Tag: "`xml:\",chardata\" json:\"Value\"`"},
			},
			Checks: []string{`c.Field("Ccy", a.Ccy)`, `c.Field("Value", a.Value)`},
		}
	case KindAny:
		return recordView{
			Name:   t.Name,
			Doc:    "carries an arbitrary XML payload.",
			Fields: []fieldView{{Name: "Any", GoType: "string", Tag: "`xml:\",innerxml\" json:\"Any,omitempty\"`"}},
		}
	}
	return newRecordView(t.Name, "is a message component.", "r", "", t.Fields)
}

func newChoiceView(t *Type) choiceView {
	names := make([]string, len(t.Alternatives))
	for i, a := range t.Alternatives {
		names[i] = a.Name
	}
	last := len(names) - 1
	between := strings.Join(names[:last], ", ") + " and " + names[last]
	return choiceView{Name: t.Name, Doc: "is a choice between " + between + ".", Alts: t.Alternatives}
}

// importBlock groups standard library imports before module imports.
func importBlock(paths ...string) string {
	var std, ext []string
	for _, p := range paths {
		if strings.Contains(strings.SplitN(p, "/", 2)[0], ".") {
			ext = append(ext, p)
		} else {
			std = append(std, p)
		}
	}
	sort.Strings(std)
	sort.Strings(ext)
	var b strings.Builder
	b.WriteString("import (\n")
	for _, p := range std {
		fmt.Fprintf(&b, "\t%q\n", p)
	}
	if len(std) > 0 && len(ext) > 0 {
		b.WriteString("\n")
	}
	for _, p := range ext {
		fmt.Fprintf(&b, "\t%q\n", p)
	}
	b.WriteString(")\n")
	return b.String()
}

type file struct {
	buf   bytes.Buffer
	parts int
}

func newFile(pkg string, imports ...string) *file {
	f := &file{}
	f.buf.WriteString(header)
	fmt.Fprintf(&f.buf, "package %s\n\n", pkg)
	f.buf.WriteString(importBlock(imports...))
	return f
}

func (f *file) execute(name string, data any) error {
	f.buf.WriteString("\n")
	if err := templates.ExecuteTemplate(&f.buf, name, data); err != nil {
		return fmt.Errorf("gen: %s: %w", name, err)
	}
	f.parts++
	return nil
}

func (f *file) source(path string) ([]byte, error) {
	src, err := format.Source(f.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format %s: %w", path, err)
	}
	return src, nil
}

// Render returns the generated sources keyed by path relative to the module
// root. module is the import path of that root.
func Render(set *Set, module string) (map[string][]byte, error) {
	if module == "" {
		module = DefaultModule
	}
	var (
		simple  = newFile(ComponentPackage, module+"/facet", module+"/valid")
		records = newFile(ComponentPackage, module+"/valid")
		choices = newFile(ComponentPackage, "encoding/xml", module+"/choice")
	)
	for i := range set.Components {
		t := &set.Components[i]
		var err error
		switch t.Kind {
		case KindText, KindDecimal, KindCode:
			err = simple.execute("simple.go.tmpl", newSimpleView(t))
		case KindRecord, KindAmount, KindAny:
			err = records.execute("record.go.tmpl", componentRecordView(t))
		case KindChoice:
			err = choices.execute("choice.go.tmpl", newChoiceView(t))
		}
		if err != nil {
			return nil, err
		}
	}

	out := map[string][]byte{}
	emit := func(path string, f *file) error {
		if f.parts == 0 {
			return nil
		}
		src, err := f.source(path)
		if err != nil {
			return err
		}
		out[path] = src
		return nil
	}
	for path, f := range map[string]*file{
		"component/simple_gen.go": simple,
		"component/record_gen.go": records,
		"component/choice_gen.go": choices,
	} {
		if err := emit(path, f); err != nil {
			return nil, err
		}
	}

	for _, fam := range set.Families {
		f := newFile(fam.Package, module+"/component", module+"/registry", module+"/valid")
		for _, m := range fam.Messages {
			doc := fmt.Sprintf("is the message root of %s, carried in the <%s> element.", m.ID, m.Element)
			if err := f.execute("record.go.tmpl", newRecordView(m.Name, doc, "m", ComponentPackage+".", m.Fields)); err != nil {
				return nil, err
			}
		}
		if err := f.execute("register.go.tmpl", fam.Messages); err != nil {
			return nil, err
		}
		path := filepath.ToSlash(filepath.Join("message", fam.Package, fam.Package+"_gen.go"))
		if err := emit(path, f); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Write stores the rendered files below root, creating directories as needed.
func Write(root string, files map[string][]byte) error {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		dst := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, files[p], 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Stale returns the paths in files whose content differs from what is on
// disk below root.
func Stale(root string, files map[string][]byte) ([]string, error) {
	var stale []string
	for p, want := range files {
		got, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(p)))
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if !bytes.Equal(got, want) {
			stale = append(stale, p)
		}
	}
	sort.Strings(stale)
	return stale, nil
}
