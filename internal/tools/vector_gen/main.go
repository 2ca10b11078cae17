// Command vector_gen rewrites the expected outputs of the conformance vectors
// under testdata/conformance from their indented inputs:
//
//	<name>.xml            input (hand written)
//	<name>.canonical.xml  canonical rendering
//	<name>.cid            sha2-256 CID of the canonical bytes
//	<name>.sha3.cid       sha3-256 CID, only when the file already exists
//
// Inputs whose name carries a further qualifier (payincall_1.invalid.xml) are
// negative vectors and are left alone.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"openpayments.dev/iso20022/cidutil"
	"openpayments.dev/iso20022/document"
	_ "openpayments.dev/iso20022/message/all"
)

func main() {
	root := flag.String("root", filepath.Join("testdata", "conformance"), "conformance vector directory")
	flag.Parse()

	inputs, err := filepath.Glob(filepath.Join(*root, "*", "*.xml"))
	if err != nil {
		panic(err)
	}
	for _, in := range inputs {
		name := strings.TrimSuffix(filepath.Base(in), ".xml")
		if strings.Contains(name, ".") {
			continue
		}
		base := strings.TrimSuffix(in, ".xml")

		b, err := os.ReadFile(in)
		if err != nil {
			panic(err)
		}
		doc, err := document.Parse(b)
		if err != nil {
			panic(fmt.Errorf("%s: %w", in, err))
		}
		if err := doc.Validate(); err != nil {
			panic(fmt.Errorf("%s: %w", in, err))
		}
		canon, err := doc.Render()
		if err != nil {
			panic(err)
		}
		writeIfChanged(base+".canonical.xml", canon)
		writeIfChanged(base+".cid", []byte(cidutil.CIDv1RawSHA256(canon)+"\n"))
		if _, err := os.Stat(base + ".sha3.cid"); err == nil {
			writeIfChanged(base+".sha3.cid", []byte(cidutil.CIDv1RawSHA3_256(canon)+"\n"))
		}
		fmt.Printf("%s CID=%s\n", doc.Message.ID, cidutil.CIDv1RawSHA256(canon))
	}
}

func writeIfChanged(path string, data []byte) {
	if old, err := os.ReadFile(path); err == nil && bytes.Equal(old, data) {
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		panic(err)
	}
	fmt.Printf("wrote %s\n", path)
}
