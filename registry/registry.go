// Package registry catalogues the message roots linked into a binary.
//
// Message packages register themselves in init():
//
//	registry.MustRegister(registry.Message{ ... })
//
// The binary must import the message package (or message/all) for
// registration to occur.
package registry

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"openpayments.dev/iso20022/valid"
)

// NamespacePrefix is the URN prefix of ISO 20022 XML schema namespaces.
const NamespacePrefix = "urn:iso:std:iso:20022:tech:xsd:"

var (
	ErrUnknownMessage   = errors.New("registry: unknown message")
	ErrAmbiguousElement = errors.New("registry: root element names more than one message")
)

var idPattern = regexp.MustCompile(`^[a-z]{4}\.[0-9]{3}\.[0-9]{3}\.[0-9]{2}$`)

// Message describes one registered message version.
type Message struct {
	// ID is the message identifier, e.g. "pain.017.001.04".
	ID string
	// Element is the local name of the root element inside <Document>.
	Element string
	// Name is the Go type name of the root.
	Name string
	// New returns a pointer to a zero root value.
	New func() valid.Validatable
}

// Family returns the business area of m, e.g. "pain".
func (m Message) Family() string {
	family, _, _ := strings.Cut(m.ID, ".")
	return family
}

// Namespace returns the XML namespace of m.
func (m Message) Namespace() string {
	return NamespacePrefix + m.ID
}

var (
	mu       sync.RWMutex
	messages = map[string]Message{}
	byType   = map[reflect.Type]string{}
)

// Register registers a message.
func Register(m Message) error {
	if !idPattern.MatchString(m.ID) {
		return fmt.Errorf("registry: invalid message id %q", m.ID)
	}
	if m.Element == "" {
		return fmt.Errorf("registry: message %q missing Element", m.ID)
	}
	if m.New == nil {
		return fmt.Errorf("registry: message %q missing New", m.ID)
	}
	rt := reflect.TypeOf(m.New())

	mu.Lock()
	defer mu.Unlock()
	if _, exists := messages[m.ID]; exists {
		return fmt.Errorf("registry: message %q already registered", m.ID)
	}
	messages[m.ID] = m
	byType[rt] = m.ID
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister(m Message) {
	if err := Register(m); err != nil {
		panic(err)
	}
}

// Lookup returns the message registered under id.
func Lookup(id string) (Message, error) {
	mu.RLock()
	m, ok := messages[id]
	mu.RUnlock()
	if !ok {
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownMessage, id)
	}
	return m, nil
}

// LookupNamespace returns the message whose namespace is ns.
func LookupNamespace(ns string) (Message, error) {
	id, ok := strings.CutPrefix(ns, NamespacePrefix)
	if !ok {
		return Message{}, fmt.Errorf("%w: namespace %q", ErrUnknownMessage, ns)
	}
	return Lookup(id)
}

// LookupElement returns the single message whose root element is element.
func LookupElement(element string) (Message, error) {
	var found []Message
	for _, m := range List() {
		if m.Element == element {
			found = append(found, m)
		}
	}
	switch len(found) {
	case 0:
		return Message{}, fmt.Errorf("%w: element <%s>", ErrUnknownMessage, element)
	case 1:
		return found[0], nil
	default:
		return Message{}, fmt.Errorf("%w: <%s>", ErrAmbiguousElement, element)
	}
}

// LookupValue returns the message whose root type is the type of v, which
// must be a pointer to a registered root.
func LookupValue(v valid.Validatable) (Message, error) {
	mu.RLock()
	id, ok := byType[reflect.TypeOf(v)]
	mu.RUnlock()
	if !ok {
		return Message{}, fmt.Errorf("%w: type %T", ErrUnknownMessage, v)
	}
	return Lookup(id)
}

// List returns all registered messages, sorted by ID.
func List() []Message {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IDs returns registered message IDs, sorted.
func IDs() []string {
	ms := List()
	ids := make([]string, 0, len(ms))
	for _, m := range ms {
		ids = append(ids, m.ID)
	}
	return ids
}
