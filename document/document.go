// Package document reads and writes ISO 20022 business documents.
//
// A document is a registered message root wrapped in
//
//	<Document xmlns="urn:iso:std:iso:20022:tech:xsd:ID"> ... </Document>
//
// Parse identifies the message by namespace (or by root element in
// permissive mode), decodes it into the generated root type and leaves
// validation to Validate. Render produces canonical bytes: the XML
// declaration, the envelope and the body with no indentation, in field
// declaration order. Two inputs that decode to the same value render to the
// same bytes and therefore share a CID.
package document

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"openpayments.dev/iso20022/cidutil"
	"openpayments.dev/iso20022/compliance"
	"openpayments.dev/iso20022/registry"
	"openpayments.dev/iso20022/valid"
)

// Options controls parsing. The zero value parses in compliance.Permissive
// mode.
type Options struct {
	Mode compliance.ComplianceMode
}

// Document is a decoded message together with its registry entry.
type Document struct {
	Message registry.Message
	// Body is a pointer to the generated root type, e.g. *pain.MandateCopyRequestV04.
	Body valid.Validatable
}

// New wraps a registered root value, which must be a pointer.
func New(body valid.Validatable) (*Document, error) {
	m, err := registry.LookupValue(body)
	if err != nil {
		return nil, &Error{
			Kind:    KindUnknownDocument,
			RuleID:  "ISO-DOC-001",
			Code:    CodeUnknownDocument,
			Message: fmt.Sprintf("%T is not a registered message root", body),
			Cause:   err,
		}
	}
	return &Document{Message: m, Body: body}, nil
}

// Parse decodes an XML document in permissive mode.
func Parse(data []byte) (*Document, error) {
	return ParseWithOptions(data, Options{})
}

// ParseWithOptions decodes an XML document under the requested compliance
// mode. It does not validate the body. Nothing but whitespace, comments and
// processing instructions may follow the message root or the envelope.
func ParseWithOptions(data []byte, opts Options) (*Document, error) {
	if err := applyInputRules(data, inputRules()); err != nil {
		return nil, err
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	first, err := nextStart(dec)
	if err != nil {
		return nil, wrapError(KindParse, "ISO-PARSE-003", "malformed XML", err)
	}
	doc, err := decodeAt(dec, first, envelopeRules(opts.Mode))
	if err != nil {
		return nil, err
	}
	if err := expectEnd(dec, first.Name.Local); err != nil {
		return nil, wrapError(KindParse, "ISO-PARSE-007", "content after the message root", err)
	}
	return doc, nil
}

// decodeAt decodes the document whose first element, already read from dec,
// is first. On success dec is positioned after the element's end tag.
func decodeAt(dec *xml.Decoder, first xml.StartElement, rules []envelopeRule) (*Document, error) {
	env, start, err := envelopeAt(dec, first)
	if err != nil {
		return nil, wrapError(KindParse, "ISO-PARSE-003", "malformed XML", err)
	}
	if err := applyEnvelopeRules(env, rules); err != nil {
		return nil, err
	}
	m, err := identify(env)
	if err != nil {
		return nil, err
	}

	body := m.New()
	if err := dec.DecodeElement(body, &start); err != nil {
		return nil, wrapError(KindParse, "ISO-PARSE-004", fmt.Sprintf("decode <%s> as %s", env.element, m.ID), err)
	}
	if err := closeEnvelope(dec, env); err != nil {
		return nil, wrapError(KindParse, "ISO-PARSE-007", "content after the message root", err)
	}
	return &Document{Message: m, Body: body}, nil
}

// UnmarshalXML decodes a document nested in a larger XML structure. start
// is either a <Document> envelope or a bare message root, such as <AppHdr>.
// Either way the namespace must identify the message.
func (d *Document) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	doc, err := decodeAt(dec, start, nestedRules())
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}

// Violations validates the body, rooting paths at the message element.
func (d *Document) Violations(opts ...valid.Option) valid.Violations {
	opts = append([]valid.Option{valid.WithRoot(d.Message.Element)}, opts...)
	return valid.Check(d.Body, opts...)
}

// Validate returns nil when the body is valid. Otherwise it returns a
// KindValidation *Error whose Cause is the valid.Violations.
func (d *Document) Validate(opts ...valid.Option) error {
	vs := d.Violations(opts...)
	if len(vs) == 0 {
		return nil
	}
	return &Error{
		Kind:    KindValidation,
		RuleID:  "ISO-VAL-001",
		Code:    vs[0].Code,
		Message: fmt.Sprintf("%s: %d violation(s)", d.Message.ID, len(vs)),
		Cause:   vs,
	}
}

// Render produces the canonical XML bytes of d.
func (d *Document) Render() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	if err := d.encode(enc, true); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, wrapError(KindRender, "ISO-RENDER-001", "flush", err)
	}
	return buf.Bytes(), nil
}

// MarshalXML writes d as a nested document. When start is named Document
// the body is wrapped in the envelope; otherwise the message root is written
// bare, carrying the namespace itself.
func (d *Document) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return d.encode(enc, start.Name.Local == EnvelopeElement)
}

func (d *Document) encode(enc *xml.Encoder, wrapped bool) error {
	ns := xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: d.Message.Namespace()}
	root := xml.StartElement{Name: xml.Name{Local: d.Message.Element}}
	if !wrapped {
		root.Attr = []xml.Attr{ns}
		if err := enc.EncodeElement(d.Body, root); err != nil {
			return wrapError(KindRender, "ISO-RENDER-002", fmt.Sprintf("encode <%s>", d.Message.Element), err)
		}
		return nil
	}

	wrapper := xml.StartElement{Name: xml.Name{Local: EnvelopeElement}, Attr: []xml.Attr{ns}}
	if err := enc.EncodeToken(wrapper); err != nil {
		return wrapError(KindRender, "ISO-RENDER-001", "encode envelope", err)
	}
	if err := enc.EncodeElement(d.Body, root); err != nil {
		return wrapError(KindRender, "ISO-RENDER-002", fmt.Sprintf("encode <%s>", d.Message.Element), err)
	}
	if err := enc.EncodeToken(wrapper.End()); err != nil {
		return wrapError(KindRender, "ISO-RENDER-001", "encode envelope", err)
	}
	return nil
}

// CID returns the CIDv1 (raw codec) of the canonical XML bytes of d.
func (d *Document) CID(alg cidutil.Algorithm) (string, error) {
	b, err := d.Render()
	if err != nil {
		return "", err
	}
	s, err := cidutil.Sum(b, alg)
	if err != nil {
		return "", wrapError(KindCID, "ISO-CID-001", "fingerprint", err)
	}
	return s, nil
}
