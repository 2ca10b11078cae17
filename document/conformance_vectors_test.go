package document_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"openpayments.dev/iso20022/cidutil"
	"openpayments.dev/iso20022/document"
)

func readVector(t *testing.T, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return b
}

func TestConformanceVectors_CanonicalAndCID(t *testing.T) {
	canonicals, err := filepath.Glob(filepath.Join("..", "testdata", "conformance", "*", "*.canonical.xml"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(canonicals) == 0 {
		t.Fatalf("no conformance vectors found")
	}

	for _, canonPath := range canonicals {
		base := strings.TrimSuffix(canonPath, ".canonical.xml")
		t.Run(filepath.Base(filepath.Dir(canonPath))+"/"+filepath.Base(base), func(t *testing.T) {
			canon := readVector(t, canonPath)
			pretty := readVector(t, base+".xml")
			wantCID := strings.TrimSpace(string(readVector(t, base+".cid")))
			if wantCID == "" {
				t.Fatalf("empty expected CID")
			}

			// Canonical bytes are a fixed point of Parse then Render.
			doc, err := document.ParseWithOptions(canon, document.Options{})
			if err != nil {
				t.Fatalf("Parse(canonical): %v", err)
			}
			if err := doc.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}
			rendered, err := doc.Render()
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if !bytes.Equal(rendered, canon) {
				t.Fatalf("re-rendered bytes mismatch:\n got %s\nwant %s", rendered, canon)
			}

			// Indented input renders to the same canonical bytes.
			prettyDoc, err := document.Parse(pretty)
			if err != nil {
				t.Fatalf("Parse(pretty): %v", err)
			}
			prettyRendered, err := prettyDoc.Render()
			if err != nil {
				t.Fatalf("Render(pretty): %v", err)
			}
			if !bytes.Equal(prettyRendered, canon) {
				t.Fatalf("pretty input rendered differently:\n got %s\nwant %s", prettyRendered, canon)
			}

			cid, err := prettyDoc.CID(cidutil.SHA2_256)
			if err != nil {
				t.Fatalf("CID: %v", err)
			}
			if cid != wantCID {
				t.Fatalf("CID mismatch: got %s want %s", cid, wantCID)
			}
			ok, err := cidutil.Verify(canon, wantCID)
			if err != nil || !ok {
				t.Fatalf("Verify(canonical, %s) = %v, %v", wantCID, ok, err)
			}

			sha3Path := base + ".sha3.cid"
			if _, err := os.Stat(sha3Path); err == nil {
				want := strings.TrimSpace(string(readVector(t, sha3Path)))
				got, err := doc.CID(cidutil.SHA3_256)
				if err != nil {
					t.Fatalf("CID(sha3-256): %v", err)
				}
				if got != want {
					t.Fatalf("sha3-256 CID mismatch: got %s want %s", got, want)
				}
			}
		})
	}
}

func TestConformanceVectors_InvalidDocumentViolations(t *testing.T) {
	b := readVector(t, filepath.Join("..", "testdata", "conformance", "camt.061.001.02", "payincall_1.invalid.xml"))
	doc, err := document.Parse(b)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	vs := doc.Violations()
	want := []struct {
		path string
		code int
	}{
		{"PayInCall.PtyId.NmAndAdr.Adr.Ctry", 1005},
		{"PayInCall.RptData.Tp", 1006},
		{"PayInCall.RptData.PayInCallAmt[1].Amt.Value", 1003},
	}
	if len(vs) != len(want) {
		t.Fatalf("expected %d violations, got %d: %v", len(want), len(vs), vs)
	}
	for i, w := range want {
		if vs[i].Path != w.path || vs[i].Code != w.code {
			t.Fatalf("violation %d: got %s (%d), want %s (%d)", i, vs[i].Path, vs[i].Code, w.path, w.code)
		}
	}
}
