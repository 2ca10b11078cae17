package document_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"openpayments.dev/iso20022/compliance"
	"openpayments.dev/iso20022/document"
	_ "openpayments.dev/iso20022/message/all"
	"openpayments.dev/iso20022/valid"
)

const camtNS = "urn:iso:std:iso:20022:tech:xsd:camt.061.001.02"

func expectRule(t *testing.T, err error, kind document.Kind, ruleID string) *document.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %s", ruleID)
	}
	var e *document.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected structured *document.Error, got %T", err)
	}
	if e.Kind != kind {
		t.Fatalf("expected Kind %s, got %s (%v)", kind, e.Kind, err)
	}
	if e.RuleID != ruleID {
		t.Fatalf("expected RuleID %s, got %s (%v)", ruleID, e.RuleID, err)
	}
	return e
}

func strict(b []byte) error {
	_, err := document.ParseWithOptions(b, document.Options{Mode: compliance.Strict})
	return err
}

func TestParse_ErrorTaxonomy_Empty(t *testing.T) {
	_, err := document.Parse([]byte("  \n"))
	expectRule(t, err, document.KindParse, "ISO-PARSE-001")
}

func TestParse_ErrorTaxonomy_UTF8RuleID(t *testing.T) {
	_, err := document.Parse([]byte{0xff, 0xfe, 0xfd})
	expectRule(t, err, document.KindParse, "ISO-PARSE-002")
}

func TestParse_ErrorTaxonomy_MalformedXML(t *testing.T) {
	for _, in := range []string{
		`<Document xmlns="` + camtNS + `"`,
		`<Document xmlns="` + camtNS + `"></Document>`,
		`just text`,
	} {
		_, err := document.Parse([]byte(in))
		expectRule(t, err, document.KindParse, "ISO-PARSE-003")
	}
}

func TestParse_ErrorTaxonomy_DecodeFailure(t *testing.T) {
	in := `<Document xmlns="` + camtNS + `"><PayInCall><RptData><PayInCallAmt><Amt Ccy="USD">abc</Amt></PayInCallAmt></RptData></PayInCall></Document>`
	_, err := document.Parse([]byte(in))
	expectRule(t, err, document.KindParse, "ISO-PARSE-004")
}

func TestParse_ErrorTaxonomy_StrictRequiresEnvelope(t *testing.T) {
	bare, err := os.ReadFile(filepath.Join("..", "testdata", "conformance", "camt.061.001.02", "payincall_1.bare.xml"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, err := document.Parse(bare); err != nil {
		t.Fatalf("permissive Parse(bare): %v", err)
	}
	expectRule(t, strict(bare), document.KindEnvelope, "ISO-ENV-001")
}

func TestParse_ErrorTaxonomy_StrictRequiresNamespace(t *testing.T) {
	in := []byte(`<Document><PayInCall></PayInCall></Document>`)
	if _, err := document.Parse(in); err != nil {
		t.Fatalf("permissive Parse: %v", err)
	}
	expectRule(t, strict(in), document.KindEnvelope, "ISO-ENV-002")
}

func TestParse_ErrorTaxonomy_NamespaceElementMismatch(t *testing.T) {
	in := []byte(`<Document xmlns="` + camtNS + `"><MndtCpyReq></MndtCpyReq></Document>`)
	expectRule(t, strict(in), document.KindEnvelope, "ISO-ENV-003")
	_, err := document.Parse(in)
	expectRule(t, err, document.KindEnvelope, "ISO-ENV-003")
}

func TestParse_ErrorTaxonomy_UnknownDocumentCode(t *testing.T) {
	for _, in := range []string{
		`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08"><FIToFICstmrCdtTrf/></Document>`,
		`<FIToFICstmrCdtTrf/>`,
	} {
		_, err := document.Parse([]byte(in))
		e := expectRule(t, err, document.KindUnknownDocument, "ISO-DOC-001")
		if e.Code != document.CodeUnknownDocument || document.Code(err) != 9999 {
			t.Fatalf("expected code 9999, got %d", e.Code)
		}
	}
}

func TestValidate_ErrorTaxonomy_RuleID(t *testing.T) {
	b, err := os.ReadFile(filepath.Join("..", "testdata", "conformance", "camt.061.001.02", "payincall_1.invalid.xml"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	doc, err := document.Parse(b)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	verr := doc.Validate()
	e := expectRule(t, verr, document.KindValidation, "ISO-VAL-001")
	if e.Code != 1005 {
		t.Fatalf("expected code of first violation (1005), got %d", e.Code)
	}
	var vs valid.Violations
	if !errors.As(verr, &vs) || len(vs) != 3 {
		t.Fatalf("expected 3 wrapped violations, got %v", verr)
	}
	if !document.IsKind(verr, document.KindValidation) || document.RuleID(verr) != "ISO-VAL-001" {
		t.Fatalf("helpers disagree with *Error: %v", verr)
	}

	e = expectRule(t, doc.Validate(valid.FailFast()), document.KindValidation, "ISO-VAL-001")
	if !errors.As(e, &vs) || len(vs) != 1 {
		t.Fatalf("fail-fast: expected 1 violation, got %v", e)
	}
}

func TestParse_ErrorTaxonomy_TrailingContent(t *testing.T) {
	root := `<PayInCall></PayInCall>`
	for name, in := range map[string]string{
		"second root in envelope": `<Document xmlns="` + camtNS + `">` + root + root + `</Document>`,
		"text in envelope":        `<Document xmlns="` + camtNS + `">` + root + `tail</Document>`,
		"element after envelope":  `<Document xmlns="` + camtNS + `">` + root + `</Document><Extra/>`,
		"text after envelope":     `<Document xmlns="` + camtNS + `">` + root + `</Document>junk`,
		"unclosed envelope":       `<Document xmlns="` + camtNS + `">` + root,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := document.Parse([]byte(in))
			expectRule(t, err, document.KindParse, "ISO-PARSE-007")
			expectRule(t, strict([]byte(in)), document.KindParse, "ISO-PARSE-007")
		})
	}

	_, err := document.Parse([]byte(`<PayInCall xmlns="` + camtNS + `"></PayInCall><PayInCall/>`))
	expectRule(t, err, document.KindParse, "ISO-PARSE-007")
}

func TestParse_TrailingMiscellanyAccepted(t *testing.T) {
	for _, in := range []string{
		`<Document xmlns="` + camtNS + `"><PayInCall></PayInCall>` + "\n  <!-- end -->\n</Document>\n",
		`<Document xmlns="` + camtNS + `"><PayInCall></PayInCall></Document>` + "\n<!-- signed -->\n<?audit id=\"7\"?>\n",
	} {
		if err := strict([]byte(in)); err != nil {
			t.Fatalf("strict Parse(%q): %v", in, err)
		}
	}
}
