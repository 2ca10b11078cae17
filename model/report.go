package model

import (
	"openpayments.dev/iso20022/cidutil"
	"openpayments.dev/iso20022/document"
	"openpayments.dev/iso20022/registry"
	"openpayments.dev/iso20022/valid"
)

// NewReport builds the report for file from the result of parsing it. When
// parseErr is nil, doc is validated with opts and fingerprinted with alg.
func NewReport(file string, doc *document.Document, parseErr error, alg cidutil.Algorithm, opts ...valid.Option) ValidationReport {
	r := ValidationReport{File: file, Violations: []Violation{}}
	if parseErr != nil {
		r.Error = FromError(parseErr)
		return r
	}
	r.MessageID = doc.Message.ID
	r.Element = doc.Message.Element
	for _, v := range doc.Violations(opts...) {
		r.Violations = append(r.Violations, Violation{Path: v.Path, Rule: v.Rule, Code: v.Code, Message: v.Message})
	}
	cid, err := doc.CID(alg)
	if err != nil {
		r.Error = FromError(err)
		return r
	}
	r.CID = cid
	r.Valid = len(r.Violations) == 0
	return r
}

// Summarize counts valid and invalid reports.
func Summarize(reports []ValidationReport) Summary {
	s := Summary{Total: len(reports)}
	for _, r := range reports {
		if r.Valid {
			s.Valid++
		} else {
			s.Invalid++
		}
	}
	return s
}

// Messages lists the registry as boundary types.
func Messages() []MessageInfo {
	ms := registry.List()
	out := make([]MessageInfo, 0, len(ms))
	for _, m := range ms {
		out = append(out, MessageInfo{ID: m.ID, Element: m.Element, Name: m.Name, Namespace: m.Namespace()})
	}
	return out
}
