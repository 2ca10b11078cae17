package cidutil

import "testing"

func TestCIDv1RawSHA256_KnownVector(t *testing.T) {
	got := CIDv1RawSHA256([]byte("hello world"))
	const want = "bafkreifzjut3te2nhyekklss27nh3k72ysco7y32koao5eei66wof36n5e"
	if got != want {
		t.Fatalf("got %s want %s", got, want)
	}
	if empty := CIDv1RawSHA256(nil); empty != "bafkreihdwdcefgh4dqkjv67uzcmw7ojee6xedzdetojuzjevtenxquvyku" {
		t.Fatalf("empty input: got %s", empty)
	}
}

func TestCIDv1RawSHA3_256_KnownVector(t *testing.T) {
	got := CIDv1RawSHA3_256([]byte("hello world"))
	const want = "bafkrmidejpgh4vsdomcatgnkzcphmixtzjy7xiozol6zjiy4hp57etrzha"
	if got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestSumDispatchesOnAlgorithm(t *testing.T) {
	data := []byte("hello world")
	for _, alg := range []Algorithm{"", SHA2_256, SHA3_256} {
		got, err := Sum(data, alg)
		if err != nil {
			t.Fatalf("Sum(%q): %v", alg, err)
		}
		ok, err := Verify(data, got)
		if err != nil || !ok {
			t.Fatalf("Verify(Sum(%q)) = %v, %v", alg, ok, err)
		}
		if ok, _ := Verify([]byte("hello world!"), got); ok {
			t.Fatalf("Verify accepted different bytes for %q", alg)
		}
	}
	if _, err := Sum(data, "md5"); err == nil {
		t.Fatalf("expected error for unsupported hash")
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]Algorithm{"": SHA2_256, "sha2-256": SHA2_256, "sha3-256": SHA3_256}
	for in, want := range cases {
		got, err := ParseAlgorithm(in)
		if err != nil || got != want {
			t.Fatalf("ParseAlgorithm(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseAlgorithm("SHA256"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestVerifyRejectsMalformedCID(t *testing.T) {
	if _, err := Verify([]byte("x"), "not-a-cid"); err == nil {
		t.Fatalf("expected decode error")
	}
}
