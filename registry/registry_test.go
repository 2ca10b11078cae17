package registry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openpayments.dev/iso20022/valid"
)

type rootA struct{}

func (rootA) Validate(*valid.Checker) {}

type rootB struct{}

func (rootB) Validate(*valid.Checker) {}

type rootC struct{}

func (rootC) Validate(*valid.Checker) {}

// isolate swaps in empty tables for the duration of a test.
func isolate(t *testing.T) {
	t.Helper()
	mu.Lock()
	savedMessages, savedTypes := messages, byType
	messages, byType = map[string]Message{}, map[reflect.Type]string{}
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		messages, byType = savedMessages, savedTypes
		mu.Unlock()
	})
}

func TestRegisterAndLookup(t *testing.T) {
	isolate(t)
	m := Message{ID: "test.001.001.01", Element: "TstA", Name: "rootA", New: func() valid.Validatable { return new(rootA) }}
	require.NoError(t, Register(m))

	got, err := Lookup("test.001.001.01")
	require.NoError(t, err)
	assert.Equal(t, "TstA", got.Element)
	assert.Equal(t, "test", got.Family())
	assert.Equal(t, "urn:iso:std:iso:20022:tech:xsd:test.001.001.01", got.Namespace())

	got, err = LookupNamespace(NamespacePrefix + "test.001.001.01")
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)

	got, err = LookupElement("TstA")
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)

	got, err = LookupValue(&rootA{})
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
}

func TestRegisterRejectsBadEntries(t *testing.T) {
	isolate(t)
	newA := func() valid.Validatable { return new(rootA) }

	assert.Error(t, Register(Message{ID: "pain.17.1.4", Element: "X", New: newA}))
	assert.Error(t, Register(Message{ID: "test.001.001.01", New: newA}))
	assert.Error(t, Register(Message{ID: "test.001.001.01", Element: "X"}))

	require.NoError(t, Register(Message{ID: "test.001.001.01", Element: "X", New: newA}))
	assert.Error(t, Register(Message{ID: "test.001.001.01", Element: "Y", New: newA}))
	assert.Panics(t, func() { MustRegister(Message{ID: "test.001.001.01", Element: "Y", New: newA}) })
}

func TestUnknownLookups(t *testing.T) {
	isolate(t)
	_, err := Lookup("pacs.008.001.08")
	assert.True(t, errors.Is(err, ErrUnknownMessage))
	_, err = LookupNamespace("urn:example:other")
	assert.True(t, errors.Is(err, ErrUnknownMessage))
	_, err = LookupElement("Nope")
	assert.True(t, errors.Is(err, ErrUnknownMessage))
	_, err = LookupValue(&rootC{})
	assert.True(t, errors.Is(err, ErrUnknownMessage))
}

func TestSharedElementNeedsNamespace(t *testing.T) {
	isolate(t)
	require.NoError(t, Register(Message{ID: "test.001.001.01", Element: "Shared", New: func() valid.Validatable { return new(rootA) }}))
	require.NoError(t, Register(Message{ID: "test.001.001.02", Element: "Shared", New: func() valid.Validatable { return new(rootB) }}))

	_, err := LookupElement("Shared")
	assert.True(t, errors.Is(err, ErrAmbiguousElement))

	m, err := LookupNamespace(NamespacePrefix + "test.001.001.02")
	require.NoError(t, err)
	assert.Equal(t, "Shared", m.Element)
}

func TestListIsSortedByID(t *testing.T) {
	isolate(t)
	MustRegister(Message{ID: "zzzz.001.001.01", Element: "Z", New: func() valid.Validatable { return new(rootB) }})
	MustRegister(Message{ID: "aaaa.001.001.01", Element: "A", New: func() valid.Validatable { return new(rootA) }})

	assert.Equal(t, []string{"aaaa.001.001.01", "zzzz.001.001.01"}, IDs())
	ms := List()
	require.Len(t, ms, 2)
	assert.Equal(t, "A", ms[0].Element)
}
