// Package facet implements the constraining facets that ISO 20022 simple types
// declare: length bounds, patterns, inclusive numeric bounds and code lists.
//
// Facets are immutable values. Checks are pure and total: a value either
// satisfies a facet or it does not, and no check returns an error.
package facet

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind names a constraining facet.
type Kind uint8

const (
	KindMinLength Kind = iota + 1
	KindMaxLength
	KindMinInclusive
	KindMaxInclusive
	KindPattern
	KindEnumeration
)

func (k Kind) String() string {
	switch k {
	case KindMinLength:
		return "minLength"
	case KindMaxLength:
		return "maxLength"
	case KindMinInclusive:
		return "minInclusive"
	case KindMaxInclusive:
		return "maxInclusive"
	case KindPattern:
		return "pattern"
	case KindEnumeration:
		return "enumeration"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Code returns the stable numeric code reported when a facet of kind k is
// violated. Codes 1001-1005 are shared with existing ISO 20022 tooling.
func (k Kind) Code() int {
	switch k {
	case KindMinLength:
		return 1001
	case KindMaxLength:
		return 1002
	case KindMinInclusive:
		return 1003
	case KindMaxInclusive:
		return 1004
	case KindPattern:
		return 1005
	case KindEnumeration:
		return 1006
	default:
		return 0
	}
}

// Facet is one constraint on a scalar value.
type Facet struct {
	kind  Kind
	n     int
	bound float64
	expr  string
	re    *regexp.Regexp
	codes []string
}

// MinLength requires at least n characters (Unicode code points).
func MinLength(n int) Facet { return Facet{kind: KindMinLength, n: n} }

// MaxLength allows at most n characters (Unicode code points).
func MaxLength(n int) Facet { return Facet{kind: KindMaxLength, n: n} }

// MinInclusive requires a numeric value >= v.
func MinInclusive(v float64) Facet { return Facet{kind: KindMinInclusive, bound: v} }

// MaxInclusive requires a numeric value <= v.
func MaxInclusive(v float64) Facet { return Facet{kind: KindMaxInclusive, bound: v} }

// Pattern requires the whole value to match expr.
//
// The expression is anchored at both ends, so "[A-Z]{2,2}" rejects "ABC".
// Pattern panics if expr does not compile; patterns are declared in
// package-level variables of generated code.
func Pattern(expr string) Facet {
	return Facet{
		kind: KindPattern,
		expr: expr,
		re:   regexp.MustCompile(`^(?:` + expr + `)$`),
	}
}

// Enumeration requires the value to equal one of codes exactly.
// Comparison is case-sensitive.
func Enumeration(codes ...string) Facet {
	set := slices.Clone(codes)
	slices.Sort(set)
	return Facet{kind: KindEnumeration, codes: slices.Compact(set)}
}

func (f Facet) Kind() Kind { return f.kind }

// Codes returns the sorted code list of an enumeration facet.
func (f Facet) Codes() []string { return slices.Clone(f.codes) }

// String renders the facet as kind(argument), e.g. "maxLength(35)".
func (f Facet) String() string {
	return f.kind.String() + "(" + f.argument() + ")"
}

func (f Facet) argument() string {
	switch f.kind {
	case KindMinLength, KindMaxLength:
		return strconv.Itoa(f.n)
	case KindMinInclusive, KindMaxInclusive:
		return strconv.FormatFloat(f.bound, 'g', -1, 64)
	case KindPattern:
		return f.expr
	case KindEnumeration:
		return strings.Join(f.codes, ",")
	default:
		return ""
	}
}

// CheckText reports whether s satisfies f. Numeric facets do not apply to
// text and always pass.
func (f Facet) CheckText(s string) bool {
	switch f.kind {
	case KindMinLength:
		return utf8.RuneCountInString(s) >= f.n
	case KindMaxLength:
		return utf8.RuneCountInString(s) <= f.n
	case KindPattern:
		return f.re.MatchString(s)
	case KindEnumeration:
		_, found := slices.BinarySearch(f.codes, s)
		return found
	default:
		return true
	}
}

// CheckDecimal reports whether v satisfies f. Text facets do not apply to
// numbers and always pass.
func (f Facet) CheckDecimal(v float64) bool {
	switch f.kind {
	case KindMinInclusive:
		return v >= f.bound
	case KindMaxInclusive:
		return v <= f.bound
	default:
		return true
	}
}

// Explain describes a violation of f in the wording used by violation reports.
func (f Facet) Explain() string {
	switch f.kind {
	case KindMinLength:
		return fmt.Sprintf("is shorter than the minimum length of %d", f.n)
	case KindMaxLength:
		return fmt.Sprintf("exceeds the maximum length of %d", f.n)
	case KindMinInclusive:
		return "is less than the minimum value of " + f.argument()
	case KindMaxInclusive:
		return "exceeds the maximum value of " + f.argument()
	case KindPattern:
		return "does not match the required pattern " + f.expr
	case KindEnumeration:
		return "is not one of " + f.argument()
	default:
		return "violates " + f.String()
	}
}

// CheckAll reports whether s satisfies every facet in fs.
func CheckAll(s string, fs ...Facet) bool {
	for _, f := range fs {
		if !f.CheckText(s) {
			return false
		}
	}
	return true
}

// ErrNotDecimal is returned by AppendDecimal for NaN and infinities.
var ErrNotDecimal = errors.New("facet: value has no decimal form")

// AppendDecimal appends the xs:decimal form of v to dst: plain notation
// with the fewest digits that read back as v, never an exponent.
func AppendDecimal(dst []byte, v float64) ([]byte, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return dst, ErrNotDecimal
	}
	return strconv.AppendFloat(dst, v, 'f', -1, 64), nil
}
