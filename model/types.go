package model

type ComplianceMode string

const (
	CompliancePermissive ComplianceMode = "permissive"
	ComplianceStrict     ComplianceMode = "strict"
)

// Violation is one failed rule at one element path.
type Violation struct {
	Path    string `json:"path"`
	Rule    string `json:"rule"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ValidationReport is the outcome for one input file.
//
// Valid is true only when the file parsed and has no violations. Error is set
// when the file could not be parsed or identified.
type ValidationReport struct {
	File       string      `json:"file"`
	MessageID  string      `json:"messageID,omitempty"`
	Element    string      `json:"element,omitempty"`
	CID        string      `json:"cid,omitempty"`
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
	Error      *CodedError `json:"error,omitempty"`
}

type Summary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// BatchReport is the outcome of validating several files.
type BatchReport struct {
	Compliance ComplianceMode     `json:"compliance"`
	Reports    []ValidationReport `json:"reports"`
	Summary    Summary            `json:"summary"`
}

// MessageInfo describes one registered message.
type MessageInfo struct {
	ID        string `json:"id"`
	Element   string `json:"element"`
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
}
