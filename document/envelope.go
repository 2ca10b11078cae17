package document

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"openpayments.dev/iso20022/compliance"
	"openpayments.dev/iso20022/registry"
)

// EnvelopeElement is the local name of the ISO 20022 document wrapper.
const EnvelopeElement = "Document"

// envelope is what Parse learns before decoding the message body.
type envelope struct {
	wrapped   bool
	namespace string
	element   string
}

type inputRule struct {
	id    string
	apply func([]byte) error
}

type envelopeRule struct {
	id    string
	apply func(envelope) error
}

func applyInputRules(input []byte, rules []inputRule) error {
	for _, r := range rules {
		if r.apply == nil {
			return newError(KindInternal, "ISO-INTERNAL-001", "nil input rule")
		}
		if err := r.apply(input); err != nil {
			return err
		}
	}
	return nil
}

func applyEnvelopeRules(env envelope, rules []envelopeRule) error {
	for _, r := range rules {
		if r.apply == nil {
			return newError(KindInternal, "ISO-INTERNAL-002", "nil envelope rule")
		}
		if err := r.apply(env); err != nil {
			return err
		}
	}
	return nil
}

func inputRules() []inputRule {
	return []inputRule{
		{
			id: "ISO-PARSE-001",
			apply: func(b []byte) error {
				if len(bytes.TrimSpace(b)) == 0 {
					return newError(KindParse, "ISO-PARSE-001", "empty document")
				}
				return nil
			},
		},
		{
			id: "ISO-PARSE-002",
			apply: func(b []byte) error {
				if !utf8.Valid(b) {
					return newError(KindParse, "ISO-PARSE-002", "document must be valid UTF-8")
				}
				return nil
			},
		},
	}
}

var (
	ruleWrapped = envelopeRule{
		id: "ISO-ENV-001",
		apply: func(env envelope) error {
			if !env.wrapped {
				return newError(KindEnvelope, "ISO-ENV-001", fmt.Sprintf("strict mode: <%s> is not wrapped in <%s>", env.element, EnvelopeElement))
			}
			return nil
		},
	}
	ruleNamespace = envelopeRule{
		id: "ISO-ENV-002",
		apply: func(env envelope) error {
			if env.namespace == "" {
				return newError(KindEnvelope, "ISO-ENV-002", fmt.Sprintf("<%s> has no namespace", env.element))
			}
			return nil
		},
	}
)

func envelopeRules(mode compliance.ComplianceMode) []envelopeRule {
	if mode != compliance.Strict {
		return nil
	}
	return []envelopeRule{ruleWrapped, ruleNamespace}
}

// nestedRules apply to documents carried inside another XML structure, where
// a business application header appears as a bare root.
func nestedRules() []envelopeRule {
	return []envelopeRule{ruleNamespace}
}

// envelopeAt classifies first, the element just read from dec, and consumes
// tokens up to and including the message root start element.
func envelopeAt(dec *xml.Decoder, first xml.StartElement) (envelope, xml.StartElement, error) {
	env := envelope{namespace: first.Name.Space}
	if first.Name.Local != EnvelopeElement {
		env.element = first.Name.Local
		return env, first, nil
	}
	env.wrapped = true
	root, err := nextStart(dec)
	if err != nil {
		return env, xml.StartElement{}, err
	}
	env.element = root.Name.Local
	return env, root, nil
}

var errNoElement = errors.New("no element found")

func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return xml.StartElement{}, errNoElement
		}
		if err != nil {
			return xml.StartElement{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.EndElement:
			return xml.StartElement{}, fmt.Errorf("<%s> is empty: %w", t.Name.Local, errNoElement)
		}
	}
}

// closeEnvelope consumes the rest of a wrapped document up to and including
// </Document>. Only whitespace, comments and processing instructions may
// follow the message root.
func closeEnvelope(dec *xml.Decoder, env envelope) error {
	if !env.wrapped {
		return nil
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if _, ok := tok.(xml.EndElement); ok {
			return nil
		}
		if err := ignorable(tok, "<"+env.element+"> inside <"+EnvelopeElement+">"); err != nil {
			return err
		}
	}
}

// expectEnd consumes dec to the end of input.
func expectEnd(dec *xml.Decoder, after string) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := ignorable(tok, "<"+after+">"); err != nil {
			return err
		}
	}
}

func ignorable(tok xml.Token, after string) error {
	switch t := tok.(type) {
	case xml.CharData:
		if len(bytes.TrimSpace(t)) != 0 {
			return fmt.Errorf("text %q after %s", bytes.TrimSpace(t), after)
		}
	case xml.Comment, xml.ProcInst:
	case xml.StartElement:
		return fmt.Errorf("element <%s> after %s", t.Name.Local, after)
	case xml.EndElement:
		return fmt.Errorf("unexpected </%s> after %s", t.Name.Local, after)
	default:
		return fmt.Errorf("unexpected %T after %s", tok, after)
	}
	return nil
}

// identify resolves env against the registry. A namespace, when present,
// takes precedence and must agree with the root element.
func identify(env envelope) (registry.Message, error) {
	if env.namespace != "" {
		m, err := registry.LookupNamespace(env.namespace)
		if err != nil {
			return registry.Message{}, &Error{
				Kind:    KindUnknownDocument,
				RuleID:  "ISO-DOC-001",
				Code:    CodeUnknownDocument,
				Message: fmt.Sprintf("unknown document namespace %q", env.namespace),
				Cause:   err,
			}
		}
		if m.Element != env.element {
			return registry.Message{}, newError(KindEnvelope, "ISO-ENV-003",
				fmt.Sprintf("namespace %q expects <%s>, found <%s>", env.namespace, m.Element, env.element))
		}
		return m, nil
	}
	m, err := registry.LookupElement(env.element)
	if errors.Is(err, registry.ErrAmbiguousElement) {
		return registry.Message{}, wrapError(KindUnknownDocument, "ISO-DOC-002",
			fmt.Sprintf("root element <%s> needs a namespace to be identified", env.element), err)
	}
	if err != nil {
		return registry.Message{}, &Error{
			Kind:    KindUnknownDocument,
			RuleID:  "ISO-DOC-001",
			Code:    CodeUnknownDocument,
			Message: fmt.Sprintf("unknown document root <%s>", env.element),
			Cause:   err,
		}
	}
	return m, nil
}
