package document

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"openpayments.dev/iso20022/registry"
)

// ParseJSON decodes the JSON form of a document: a single-member object
// keyed by the root element (or the message ID) whose value is the body.
func ParseJSON(data []byte) (*Document, error) {
	if err := applyInputRules(data, inputRules()); err != nil {
		return nil, err
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, wrapError(KindParse, "ISO-PARSE-005", "malformed JSON", err)
	}
	if len(members) != 1 {
		return nil, newError(KindParse, "ISO-PARSE-006", fmt.Sprintf("JSON document must have exactly one member, found %d", len(members)))
	}
	var key string
	var raw json.RawMessage
	for k, v := range members {
		key, raw = k, v
	}
	m, err := lookupKey(key)
	if err != nil {
		return nil, &Error{
			Kind:    KindUnknownDocument,
			RuleID:  "ISO-DOC-001",
			Code:    CodeUnknownDocument,
			Message: fmt.Sprintf("unknown document %q", key),
			Cause:   err,
		}
	}
	body := m.New()
	if err := json.Unmarshal(raw, body); err != nil {
		return nil, wrapError(KindParse, "ISO-PARSE-004", fmt.Sprintf("decode %q as %s", key, m.ID), err)
	}
	return &Document{Message: m, Body: body}, nil
}

func lookupKey(key string) (registry.Message, error) {
	if m, err := registry.Lookup(key); err == nil {
		return m, nil
	}
	return registry.LookupElement(key)
}

// RenderJSON produces the JSON form of d, keyed by the root element.
// Markup characters in text values are not escaped.
func (d *Document) RenderJSON() ([]byte, error) {
	b, err := json.MarshalNoEscape(map[string]any{d.Message.Element: d.Body})
	if err != nil {
		return nil, wrapError(KindRender, "ISO-RENDER-003", "encode JSON", err)
	}
	return b, nil
}

// RenderJSONIndent is like RenderJSON with indentation.
func (d *Document) RenderJSONIndent(prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, indent)
	if err := enc.Encode(map[string]any{d.Message.Element: d.Body}); err != nil {
		return nil, wrapError(KindRender, "ISO-RENDER-003", "encode JSON", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MarshalJSON writes d in its JSON form, so a document can be nested in a
// larger JSON structure.
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.RenderJSON()
}

// UnmarshalJSON reads the JSON form written by MarshalJSON.
func (d *Document) UnmarshalJSON(data []byte) error {
	doc, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}
