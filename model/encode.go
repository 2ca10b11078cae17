package model

import (
	"io"

	json "github.com/goccy/go-json"
)

// WriteJSON writes v to w as indented JSON followed by a newline. Markup in
// messages, e.g. "unknown document root <Foo>", is written unescaped.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
