// Package choice implements ISO 20022 choice components as tagged unions.
//
// A Value holds at most one alternative, so "more than one alternative set"
// cannot be represented. Generated choice types embed Value and bind it to
// their table of Alternatives for decoding.
package choice

import (
	"encoding/xml"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"openpayments.dev/iso20022/valid"
)

var (
	// ErrMultipleAlternatives is returned when an encoded choice carries more
	// than one alternative.
	ErrMultipleAlternatives = errors.New("choice: more than one alternative")

	// ErrUnknownAlternative is returned when an encoded choice carries an
	// element that is not one of its alternatives.
	ErrUnknownAlternative = errors.New("choice: unknown alternative")
)

// Alternatives maps alternative element names to constructors returning a
// pointer to a zero payload.
type Alternatives map[string]func() any

// Value is the tagged union. The zero Value holds no alternative.
type Value struct {
	tag  string
	elem any
}

// Of returns a Value holding elem under tag. elem must be a pointer.
func Of(tag string, elem any) Value {
	return Value{tag: tag, elem: elem}
}

// Tag returns the element name of the held alternative, or "".
func (v Value) Tag() string { return v.tag }

// IsSet reports whether an alternative is held.
func (v Value) IsSet() bool { return v.tag != "" }

// Payload returns a pointer to the held alternative, or nil.
func (v Value) Payload() any { return v.elem }

// Get returns the payload of v when the held alternative is tag.
func Get[T any](v Value, tag string) (T, bool) {
	var zero T
	if v.tag != tag {
		return zero, false
	}
	p, ok := v.elem.(*T)
	if !ok || p == nil {
		return zero, false
	}
	return *p, true
}

// Validate requires an alternative and validates its payload under the
// alternative's element name.
func (v Value) Validate(c *valid.Checker) {
	if v.tag == "" {
		c.Report(valid.CodeChoiceUnset, "choice", "has no alternative selected")
		return
	}
	if p, ok := v.elem.(valid.Validatable); ok {
		c.Field(v.tag, p)
	}
}

// MarshalXML encodes the held alternative as the only child of start.
func (v Value) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if v.tag != "" {
		if err := e.EncodeElement(v.elem, xml.StartElement{Name: xml.Name{Local: v.tag}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// DecodeXML decodes the children of start into v, accepting exactly the
// element names in alts. An element without children decodes to the zero
// Value.
func (v *Value) DecodeXML(d *xml.Decoder, start xml.StartElement, alts Alternatives) error {
	*v = Value{}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if v.tag != "" {
				return fmt.Errorf("%w: <%s> has both %s and %s", ErrMultipleAlternatives, start.Name.Local, v.tag, name)
			}
			newElem, ok := alts[name]
			if !ok {
				return fmt.Errorf("%w: <%s> in <%s>", ErrUnknownAlternative, name, start.Name.Local)
			}
			elem := newElem()
			if err := d.DecodeElement(elem, &t); err != nil {
				return err
			}
			v.tag, v.elem = name, elem
		case xml.EndElement:
			return nil
		}
	}
}

// MarshalJSON encodes v as a one-member object keyed by the alternative, or
// {} when no alternative is held.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.tag == "" {
		return []byte("{}"), nil
	}
	body, err := json.MarshalNoEscape(v.elem)
	if err != nil {
		return nil, err
	}
	key, err := json.MarshalNoEscape(v.tag)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(key)+len(body)+3)
	out = append(out, '{')
	out = append(out, key...)
	out = append(out, ':')
	out = append(out, body...)
	return append(out, '}'), nil
}

// DecodeJSON decodes a one-member object into v.
func (v *Value) DecodeJSON(data []byte, alts Alternatives) error {
	*v = Value{}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	if members == nil {
		return nil
	}
	if len(members) > 1 {
		return fmt.Errorf("%w: %d members", ErrMultipleAlternatives, len(members))
	}
	for name, raw := range members {
		newElem, ok := alts[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAlternative, name)
		}
		elem := newElem()
		if err := json.Unmarshal(raw, elem); err != nil {
			return err
		}
		v.tag, v.elem = name, elem
	}
	return nil
}
