package compliance

import "testing"

func TestParseMode(t *testing.T) {
	for in, want := range map[string]ComplianceMode{"": Permissive, "permissive": Permissive, "strict": Strict} {
		got, err := ParseMode(in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMode(%q) = %s, want %s", in, got, want)
		}
		if in != "" && got.String() != in {
			t.Fatalf("String() = %s, want %s", got.String(), in)
		}
	}
	if _, err := ParseMode("Strict"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestZeroValueIsPermissive(t *testing.T) {
	var m ComplianceMode
	if m != Permissive {
		t.Fatalf("zero ComplianceMode = %s", m)
	}
}
