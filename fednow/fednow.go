// Package fednow reads and writes FedNow service envelopes.
//
// An envelope carries one message, selected from a fixed list of FedNow
// message kinds. Every kind pairs a business application header (head.001,
// <AppHdr>) with an ISO 20022 <Document>:
//
//	<FedNowIncoming>
//	  <FedNowIncomingMessage>
//	    <FedNowMessageReject>
//	      <AppHdr xmlns="urn:iso:std:iso:20022:tech:xsd:head.001.001.02">...</AppHdr>
//	      <Document xmlns="urn:iso:std:iso:20022:tech:xsd:admi.002.001.01">...</Document>
//	    </FedNowMessageReject>
//	  </FedNowIncomingMessage>
//	</FedNowIncoming>
//
// Both parts are decoded through the message registry, so a document whose
// namespace is not registered fails with ISO-DOC-001.
package fednow

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"openpayments.dev/iso20022/choice"
	"openpayments.dev/iso20022/cidutil"
	"openpayments.dev/iso20022/document"
	"openpayments.dev/iso20022/valid"
)

// HeaderElement is the root element of the business application header.
const HeaderElement = "AppHdr"

// CodeMissingPart is reported when a message lacks its header or document,
// or carries something other than a business application header as AppHdr.
const CodeMissingPart = 1008

// TechnicalHeader is reserved by the FedNow service and carries no fields.
type TechnicalHeader struct{}

func (TechnicalHeader) Validate(*valid.Checker) {}

// Pair is the content of every FedNow message kind.
type Pair struct {
	AppHdr   *document.Document `xml:"AppHdr" json:"AppHdr"`
	Document *document.Document `xml:"Document" json:"Document"`
}

func (p Pair) Validate(c *valid.Checker) {
	switch {
	case p.AppHdr == nil:
		c.Report(CodeMissingPart, "required", "AppHdr is missing")
	case p.AppHdr.Message.Element != HeaderElement:
		c.Report(CodeMissingPart, "header", fmt.Sprintf("AppHdr carries %s, not a business application header", p.AppHdr.Message.ID))
	default:
		c.Field(HeaderElement, p.AppHdr.Body)
	}
	if p.Document == nil {
		c.Report(CodeMissingPart, "required", "Document is missing")
		return
	}
	c.Field(document.EnvelopeElement, rooted{p.Document})
}

// rooted validates a wrapped document under its root element.
type rooted struct{ doc *document.Document }

func (r rooted) Validate(c *valid.Checker) {
	c.Field(r.doc.Message.Element, r.doc.Body)
}

func pairs(names ...string) choice.Alternatives {
	alts := make(choice.Alternatives, len(names))
	for _, n := range names {
		alts[n] = func() any { return new(Pair) }
	}
	return alts
}

func selectKind(kind string, p Pair, alts choice.Alternatives) (choice.Value, error) {
	if _, ok := alts[kind]; !ok {
		return choice.Value{}, fmt.Errorf("%w: %q", choice.ErrUnknownAlternative, kind)
	}
	return choice.Of(kind, &p), nil
}

func pairOf(v choice.Value) (Pair, bool) {
	return choice.Get[Pair](v, v.Tag())
}

func parseXML(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return &document.Error{Kind: document.KindParse, RuleID: "ISO-PARSE-001", Message: "empty document"}
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return classify(err, "ISO-PARSE-003", "malformed FedNow envelope")
	}
	return nil
}

func parseJSON(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return &document.Error{Kind: document.KindParse, RuleID: "ISO-PARSE-001", Message: "empty document"}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return classify(err, "ISO-PARSE-005", "malformed FedNow envelope")
	}
	return nil
}

// classify keeps errors raised by nested documents and files the rest under
// ruleID when the input is not well formed, or ISO-PARSE-004 otherwise.
func classify(err error, ruleID, msg string) error {
	var de *document.Error
	if errors.As(err, &de) {
		return err
	}
	var se *xml.SyntaxError
	var je *json.SyntaxError
	if errors.As(err, &se) || errors.As(err, &je) {
		return &document.Error{Kind: document.KindParse, RuleID: ruleID, Message: msg, Cause: err}
	}
	return &document.Error{Kind: document.KindParse, RuleID: "ISO-PARSE-004", Message: "decode FedNow envelope", Cause: err}
}

func render(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, classifyRender(err)
	}
	return buf.Bytes(), nil
}

func classifyRender(err error) error {
	var de *document.Error
	if errors.As(err, &de) {
		return err
	}
	return &document.Error{Kind: document.KindRender, RuleID: "ISO-RENDER-001", Message: "encode FedNow envelope", Cause: err}
}

func fingerprint(v any, alg cidutil.Algorithm) (string, error) {
	b, err := render(v)
	if err != nil {
		return "", err
	}
	s, err := cidutil.Sum(b, alg)
	if err != nil {
		return "", &document.Error{Kind: document.KindCID, RuleID: "ISO-CID-001", Message: "fingerprint", Cause: err}
	}
	return s, nil
}

func violations(root string, v valid.Validatable, opts []valid.Option) valid.Violations {
	opts = append([]valid.Option{valid.WithRoot(root)}, opts...)
	return valid.Check(v, opts...)
}
