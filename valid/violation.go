package valid

import (
	"fmt"
	"strings"
)

// Violation is one failed rule at one element path.
//
// Rule is the facet in kind(argument) form, e.g. "maxLength(35)", or
// "choice" for an unset choice. Code is the stable numeric code of the rule.
type Violation struct {
	Path    string
	Rule    string
	Code    int
	Message string
}

func (v Violation) Error() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// Violations is the ordered result of a validation pass. Order follows field
// declaration order, depth first.
type Violations []Violation

func (vs Violations) Error() string {
	switch len(vs) {
	case 0:
		return "no violations"
	case 1:
		return vs[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d violations:", len(vs))
	for _, v := range vs {
		b.WriteString("\n\t")
		b.WriteString(v.Error())
	}
	return b.String()
}

// Err returns vs as an error, or nil when vs is empty.
func (vs Violations) Err() error {
	if len(vs) == 0 {
		return nil
	}
	return vs
}

// Paths returns the path of every violation.
func (vs Violations) Paths() []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Path)
	}
	return out
}
