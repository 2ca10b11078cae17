package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openpayments.dev/iso20022/cidutil"
	"openpayments.dev/iso20022/compliance"
	"openpayments.dev/iso20022/document"
	_ "openpayments.dev/iso20022/message/all"
	"openpayments.dev/iso20022/valid"
)

func vector(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("..", "testdata", "conformance", "camt.061.001.02", name))
	require.NoError(t, err)
	return b
}

func TestNewReportValid(t *testing.T) {
	doc, err := document.Parse(vector(t, "payincall_1.xml"))
	r := NewReport("payincall_1.xml", doc, err, cidutil.SHA2_256)

	assert.True(t, r.Valid)
	assert.Nil(t, r.Error)
	assert.Empty(t, r.Violations)
	assert.Equal(t, "camt.061.001.02", r.MessageID)
	assert.Equal(t, "bafkreibrcwp6er6il7xigutn2slmb2v7s2liseqplb5vjj6paoqpklvb3e", r.CID)
}

func TestNewReportInvalid(t *testing.T) {
	doc, err := document.Parse(vector(t, "payincall_1.invalid.xml"))
	r := NewReport("bad.xml", doc, err, cidutil.SHA2_256)
	assert.False(t, r.Valid)
	assert.Len(t, r.Violations, 3)
	assert.NotEmpty(t, r.CID)

	r = NewReport("bad.xml", doc, err, cidutil.SHA2_256, valid.FailFast())
	require.Len(t, r.Violations, 1)
	assert.Equal(t, "PayInCall.PtyId.NmAndAdr.Adr.Ctry", r.Violations[0].Path)
	assert.Equal(t, 1005, r.Violations[0].Code)
}

func TestNewReportParseError(t *testing.T) {
	doc, err := document.Parse([]byte(`<FIToFICstmrCdtTrf/>`))
	r := NewReport("x.xml", doc, err, cidutil.SHA2_256)

	assert.False(t, r.Valid)
	require.NotNil(t, r.Error)
	assert.Equal(t, ErrUnknownDocument, r.Error.Code)
	assert.Equal(t, "ISO-DOC-001", r.Error.RuleID)
	assert.Equal(t, 9999, r.Error.Number)
	assert.NotNil(t, r.Violations)
}

func TestFromErrorMapsKinds(t *testing.T) {
	_, err := document.Parse(nil)
	assert.Equal(t, ErrParse, FromError(err).Code)

	_, err = document.ParseWithOptions([]byte(`<PayInCall/>`), document.Options{Mode: compliance.Strict})
	assert.Equal(t, ErrEnvelope, FromError(err).Code)

	assert.Nil(t, FromError(nil))
	assert.Equal(t, ErrInternal, FromError(os.ErrNotExist).Code)
}

func TestMessagesListsRegistry(t *testing.T) {
	ms := Messages()
	require.Len(t, ms, 9)
	assert.Equal(t, "acmt.036.001.01", ms[0].ID)
	for _, m := range ms {
		assert.Equal(t, "urn:iso:std:iso:20022:tech:xsd:"+m.ID, m.Namespace)
	}
}
