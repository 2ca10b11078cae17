package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSnapshot_ValidationReport_JSONShape(t *testing.T) {
	r := ValidationReport{
		File:      "in/payincall.xml",
		MessageID: "camt.061.001.02",
		Element:   "PayInCall",
		Violations: []Violation{
			{Path: "PayInCall.RptData.Tp", Rule: "enumeration(CFAV,CFCC,CFST)", Code: 1006, Message: "is not one of CFAV,CFCC,CFST"},
		},
	}

	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent failed: %v", err)
	}

	const want = "{\n" +
		"  \"file\": \"in/payincall.xml\",\n" +
		"  \"messageID\": \"camt.061.001.02\",\n" +
		"  \"element\": \"PayInCall\",\n" +
		"  \"valid\": false,\n" +
		"  \"violations\": [\n" +
		"    {\n" +
		"      \"path\": \"PayInCall.RptData.Tp\",\n" +
		"      \"rule\": \"enumeration(CFAV,CFCC,CFST)\",\n" +
		"      \"code\": 1006,\n" +
		"      \"message\": \"is not one of CFAV,CFCC,CFST\"\n" +
		"    }\n" +
		"  ]\n" +
		"}"

	if string(b) != want {
		t.Fatalf("snapshot mismatch:\n%s", string(b))
	}
}

func TestSnapshot_ErrorReport_JSONShape(t *testing.T) {
	r := ValidationReport{
		File:       "in/unknown.xml",
		Violations: []Violation{},
		Error:      &CodedError{Code: ErrUnknownDocument, RuleID: "ISO-DOC-001", Number: 9999, Message: "unknown document root <Foo>"},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, r); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	const want = "{\n" +
		"  \"file\": \"in/unknown.xml\",\n" +
		"  \"valid\": false,\n" +
		"  \"violations\": [],\n" +
		"  \"error\": {\n" +
		"    \"code\": \"UNKNOWN_DOCUMENT\",\n" +
		"    \"ruleID\": \"ISO-DOC-001\",\n" +
		"    \"number\": 9999,\n" +
		"    \"message\": \"unknown document root <Foo>\"\n" +
		"  }\n" +
		"}\n"
	if buf.String() != want {
		t.Fatalf("snapshot mismatch:\n%s", buf.String())
	}

	// Plain encoding/json escapes markup; the decoded message is the same.
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(b), `"message":"unknown document root \u003cFoo\u003e"`) {
		t.Fatalf("unexpected escaping:\n%s", b)
	}
	var back ValidationReport
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back.Error == nil || back.Error.Message != r.Error.Message {
		t.Fatalf("round trip lost the message: %+v", back.Error)
	}
}

func TestSnapshot_BatchReport_JSONShape(t *testing.T) {
	reports := []ValidationReport{
		{File: "a.xml", MessageID: "head.002.001.01", Element: "BizFileHdr", CID: "bafy-a", Valid: true, Violations: []Violation{}},
		{File: "b.xml", Violations: []Violation{}, Error: NewError(ErrParse, "empty document")},
	}
	batch := BatchReport{Compliance: ComplianceStrict, Reports: reports, Summary: Summarize(reports)}

	b, err := json.Marshal(batch)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	const want = `{"compliance":"strict","reports":[` +
		`{"file":"a.xml","messageID":"head.002.001.01","element":"BizFileHdr","cid":"bafy-a","valid":true,"violations":[]},` +
		`{"file":"b.xml","valid":false,"violations":[],"error":{"code":"PARSE","message":"empty document"}}` +
		`],"summary":{"total":2,"valid":1,"invalid":1}}`
	if string(b) != want {
		t.Fatalf("snapshot mismatch:\n%s", string(b))
	}
}
