package compliance

import "fmt"

// ComplianceMode selects how aggressively documents with an incomplete
// envelope are rejected.
//
// Strict mode requires the <Document> wrapper and a namespace that agrees
// with the root element. Permissive mode also accepts bare root elements and
// identifies the message by element name.
type ComplianceMode int

const (
	Permissive ComplianceMode = iota
	Strict
)

func (m ComplianceMode) String() string {
	switch m {
	case Permissive:
		return "permissive"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("ComplianceMode(%d)", int(m))
	}
}

// ParseMode accepts "permissive" (or "") and "strict".
func ParseMode(s string) (ComplianceMode, error) {
	switch s {
	case "", "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	default:
		return Permissive, fmt.Errorf("unknown compliance mode %q", s)
	}
}
