// Package valid implements the recursive structural validation shared by every
// generated ISO 20022 type.
//
// A value is valid iff every present field satisfies its own facets and every
// present nested, optional or repeated value is itself valid. Absent optional
// values and empty lists are vacuously valid. Instead of a bare boolean the
// traversal records a Violation per failing leaf, carrying the element path
// and the rule that failed; validity is derived as "no violations".
package valid

import (
	"strconv"
	"strings"

	"openpayments.dev/iso20022/facet"
)

// CodeChoiceUnset is reported when a choice holds no alternative.
const CodeChoiceUnset = 1007

// Validatable is implemented by every generated type.
//
// Validate must record problems on c and must not retain c.
type Validatable interface {
	Validate(c *Checker)
}

// Checker walks a value tree, tracking the current element path and
// collecting violations.
type Checker struct {
	failFast   bool
	path       []string
	violations Violations
}

// Option configures a Checker.
type Option func(*Checker)

// FailFast stops recording after the first violation and prunes the rest of
// the traversal.
func FailFast() Option {
	return func(c *Checker) { c.failFast = true }
}

// WithRoot prefixes every reported path with name, typically the message root
// element.
func WithRoot(name string) Option {
	return func(c *Checker) {
		if name != "" {
			c.path = append(c.path, name)
		}
	}
}

func NewChecker(opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Done reports whether traversal can stop.
func (c *Checker) Done() bool {
	return c.failFast && len(c.violations) > 0
}

// Path returns the dotted element path of the value being checked.
func (c *Checker) Path() string {
	return strings.Join(c.path, ".")
}

// Violations returns what has been recorded so far.
func (c *Checker) Violations() Violations {
	return c.violations
}

// Field validates a required nested value under the element name.
func (c *Checker) Field(name string, v Validatable) {
	if c.Done() {
		return
	}
	c.path = append(c.path, name)
	v.Validate(c)
	c.path = c.path[:len(c.path)-1]
}

// Text applies facets to a text value at the current path.
func (c *Checker) Text(s string, fs ...facet.Facet) {
	for _, f := range fs {
		if c.Done() {
			return
		}
		if !f.CheckText(s) {
			c.fail(f)
		}
	}
}

// Decimal applies facets to a numeric value at the current path.
func (c *Checker) Decimal(v float64, fs ...facet.Facet) {
	for _, f := range fs {
		if c.Done() {
			return
		}
		if !f.CheckDecimal(v) {
			c.fail(f)
		}
	}
}

// Report records a structural violation at the current path.
func (c *Checker) Report(code int, rule, message string) {
	if c.Done() {
		return
	}
	c.violations = append(c.violations, Violation{
		Path:    c.Path(),
		Rule:    rule,
		Code:    code,
		Message: message,
	})
}

func (c *Checker) fail(f facet.Facet) {
	c.violations = append(c.violations, Violation{
		Path:    c.Path(),
		Rule:    f.String(),
		Code:    f.Kind().Code(),
		Message: f.Explain(),
	})
}

// Optional validates *v under name when v is non-nil.
func Optional[T any, P interface {
	*T
	Validatable
}](c *Checker, name string, v P) {
	if v == nil {
		return
	}
	c.Field(name, v)
}

// Each validates every element of items under name[i].
func Each[V Validatable](c *Checker, name string, items []V) {
	for i, item := range items {
		if c.Done() {
			return
		}
		c.Field(name+"["+strconv.Itoa(i)+"]", item)
	}
}

// Check validates v and returns every violation found.
func Check(v Validatable, opts ...Option) Violations {
	c := NewChecker(opts...)
	v.Validate(c)
	return c.violations
}

// Validate returns nil when v is valid, otherwise its Violations.
func Validate(v Validatable, opts ...Option) error {
	return Check(v, opts...).Err()
}

// IsValid reports whether v has no violations.
func IsValid(v Validatable) bool {
	return len(Check(v, FailFast())) == 0
}
