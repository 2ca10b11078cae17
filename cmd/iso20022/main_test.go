package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openpayments.dev/iso20022/model"
)

var (
	conformance = filepath.Join("..", "..", "testdata", "conformance")
	payInCall   = filepath.Join(conformance, "camt.061.001.02", "payincall_1.xml")
	payInCallID = "bafkreibrcwp6er6il7xigutn2slmb2v7s2liseqplb5vjj6paoqpklvb3e"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, _ := runCLI(t, "frobnicate")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "validate")
	assert.Equal(t, 2, code)

	code, out, _ := runCLI(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "validate")
}

func TestRun_List(t *testing.T) {
	code, out, _ := runCLI(t, "list")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "camt.061.001.02")
	assert.Contains(t, out, "MndtCpyReq")

	code, out, _ = runCLI(t, "list", "--format", "json")
	require.Equal(t, 0, code)
	var msgs []model.MessageInfo
	require.NoError(t, json.Unmarshal([]byte(out), &msgs))
	assert.Len(t, msgs, 9)
}

func TestRun_ValidateFile(t *testing.T) {
	code, out, _ := runCLI(t, "validate", payInCall)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, filepath.Clean(payInCall)+": OK camt.061.001.02 "+payInCallID)
	assert.Contains(t, out, "1 document(s), 1 valid, 0 invalid")
}

func TestRun_ValidateDirectory(t *testing.T) {
	code, out, _ := runCLI(t, "validate", "--jobs", "2", conformance)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "payincall_1.invalid.xml: INVALID camt.061.001.02")
	assert.Contains(t, out, "  PayInCall.RptData.Tp: is not one of CFAV,CFCC,CFST [enumeration(CFAV,CFCC,CFST) 1006]")
	assert.Contains(t, out, "payincall_2.xml: OK camt.061.001.02 bafkreiesu4exytv4vgz5hakutduxck6lisx66lrzfgwhhyntxjoeqzydwq")
	assert.Contains(t, out, "8 document(s), 7 valid, 1 invalid")
}

func TestRun_ValidateJSONReport(t *testing.T) {
	bare := filepath.Join(conformance, "camt.061.001.02", "payincall_1.bare.xml")
	code, out, _ := runCLI(t, "validate", "--strict", "--fail-fast", "--format", "json", payInCall, bare)
	assert.Equal(t, 1, code)

	var batch model.BatchReport
	require.NoError(t, json.Unmarshal([]byte(out), &batch))
	assert.Equal(t, model.ComplianceStrict, batch.Compliance)
	require.Len(t, batch.Reports, 2)
	// Reports are ordered by path.
	assert.True(t, strings.HasSuffix(batch.Reports[0].File, "payincall_1.bare.xml"))
	require.NotNil(t, batch.Reports[0].Error)
	assert.Equal(t, "ISO-ENV-001", batch.Reports[0].Error.RuleID)
	assert.Contains(t, out, "is not wrapped in <Document>")
	assert.True(t, batch.Reports[1].Valid)
	assert.Equal(t, model.Summary{Total: 2, Valid: 1, Invalid: 1}, batch.Summary)
}

func TestRun_ValidateWithConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "iso20022.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("compliance: strict\nhash: sha3-256\nlogLevel: ERROR\n"), 0o600))

	bare := filepath.Join(conformance, "camt.061.001.02", "payincall_1.bare.xml")
	code, out, _ := runCLI(t, "--config", cfg, "validate", bare)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "ERROR")

	code, out, _ = runCLI(t, "--config", cfg, "validate", "--strict=false", bare)
	assert.Equal(t, 0, code, out)
	assert.Contains(t, out, "payincall_1.bare.xml: OK camt.061.001.02")

	code, _, _ = runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "list")
	assert.Equal(t, 2, code)
}

func TestRun_CID(t *testing.T) {
	code, out, _ := runCLI(t, "cid", payInCall)
	require.Equal(t, 0, code)
	assert.Equal(t, payInCallID+"\n", out)

	want, err := os.ReadFile(filepath.Join(conformance, "camt.061.001.02", "payincall_1.sha3.cid"))
	require.NoError(t, err)
	code, out, _ = runCLI(t, "cid", "--hash", "sha3-256", payInCall)
	require.Equal(t, 0, code)
	assert.Equal(t, string(want), out)

	code, out, _ = runCLI(t, "cid", "--verify", payInCallID, payInCall)
	require.Equal(t, 0, code)
	assert.Equal(t, "OK\n", out)

	code, _, _ = runCLI(t, "cid", "--verify", "bafkreifzjut3te2nhyekklss27nh3k72ysco7y32koao5eei66wof36n5e", payInCall)
	assert.Equal(t, 1, code)
}

func TestRun_ConvertRoundTrip(t *testing.T) {
	for _, name := range []string{"payincall_1", "payincall_2"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			src := filepath.Join(conformance, "camt.061.001.02", name+".xml")
			code, _, errOut := runCLI(t, "convert", "--to", "json", "--out", dir, src)
			require.Equal(t, 0, code, errOut)

			jsonPath := filepath.Join(dir, name+".json")
			js, err := os.ReadFile(jsonPath)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(js), "{\n  \"PayInCall\": {"))
			assert.NotContains(t, string(js), "e+")

			code, out, _ := runCLI(t, "convert", "--to", "xml", jsonPath)
			require.Equal(t, 0, code)
			canon, err := os.ReadFile(filepath.Join(conformance, "camt.061.001.02", name+".canonical.xml"))
			require.NoError(t, err)
			assert.Equal(t, string(canon), out)
		})
	}
}

func TestRun_ConvertErrors(t *testing.T) {
	code, _, _ := runCLI(t, "convert", "--to", "yaml", payInCall)
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "convert", "--to", "json", conformance)
	assert.Equal(t, 2, code, "several inputs need --out")

	bad := filepath.Join(t.TempDir(), "bad.xml")
	require.NoError(t, os.WriteFile(bad, []byte("<Nope/>"), 0o600))
	code, _, errOut := runCLI(t, "convert", "--to", "json", bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown document root <Nope>")
}
