package fednow_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openpayments.dev/iso20022/choice"
	"openpayments.dev/iso20022/cidutil"
	"openpayments.dev/iso20022/component"
	"openpayments.dev/iso20022/document"
	"openpayments.dev/iso20022/fednow"
	"openpayments.dev/iso20022/message/admi"
	_ "openpayments.dev/iso20022/message/all"
	"openpayments.dev/iso20022/message/head"
)

func loadReject(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", "reject_incoming.xml"))
	require.NoError(t, err)
	return string(b)
}

func TestParseIncoming(t *testing.T) {
	in, err := fednow.ParseIncoming([]byte(loadReject(t)))
	require.NoError(t, err)

	require.NotNil(t, in.TechnicalHeader)
	assert.Equal(t, "FedNowMessageReject", in.Message.Tag())
	p, ok := in.Message.Pair()
	require.True(t, ok)

	assert.Equal(t, "head.001.001.02", p.AppHdr.Message.ID)
	hdr := p.AppHdr.Body.(*head.BusinessApplicationHeaderV02)
	assert.Equal(t, component.Max35Text("FN-20240315-0001"), hdr.BizMsgIdr)
	fi, ok := hdr.Fr.FIId()
	require.True(t, ok)
	assert.Equal(t, component.Max35Text("021040078"), fi.FinInstnId.ClrSysMmbId.MmbId)

	assert.Equal(t, "admi.002.001.01", p.Document.Message.ID)
	require.IsType(t, &admi.MessageRejectV01{}, p.Document.Body)

	assert.Empty(t, in.Violations())
}

func TestIncomingRoundTrip(t *testing.T) {
	in, err := fednow.ParseIncoming([]byte(loadReject(t)))
	require.NoError(t, err)

	out, err := in.Render()
	require.NoError(t, err)
	s := string(out)
	assert.True(t, strings.HasPrefix(s, `<?xml version="1.0" encoding="UTF-8"?>`+"\n<FedNowIncoming><FedNowTechnicalHeader></FedNowTechnicalHeader>"))
	assert.Contains(t, s, `<FedNowMessageReject><AppHdr xmlns="urn:iso:std:iso:20022:tech:xsd:head.001.001.02"><Fr><FIId>`)
	assert.Contains(t, s, `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:admi.002.001.01"><admi.002.001.01><RltdRef>`)

	again, err := fednow.ParseIncoming(out)
	require.NoError(t, err)
	out2, err := again.Render()
	require.NoError(t, err)
	assert.Equal(t, s, string(out2))

	js, err := in.RenderJSON()
	require.NoError(t, err)
	assert.Contains(t, string(js), `"FedNowIncomingMessage":{"FedNowMessageReject":{"AppHdr":{"AppHdr":{`)
	fromJSON, err := fednow.ParseIncomingJSON(js)
	require.NoError(t, err)
	out3, err := fromJSON.Render()
	require.NoError(t, err)
	assert.Equal(t, s, string(out3))

	c1, err := in.CID(cidutil.SHA2_256)
	require.NoError(t, err)
	c2, err := fromJSON.CID(cidutil.SHA2_256)
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
	assert.True(t, strings.HasPrefix(c1, "bafkrei"))
}

func TestViolationsReachNestedDocuments(t *testing.T) {
	src := loadReject(t)
	src = strings.Replace(src, "<BizMsgIdr>FN-20240315-0001</BizMsgIdr>", "<BizMsgIdr></BizMsgIdr>", 1)
	src = strings.Replace(src, "<Ref>MSG-0042</Ref>", "<Ref>"+strings.Repeat("R", 36)+"</Ref>", 1)

	in, err := fednow.ParseIncoming([]byte(src))
	require.NoError(t, err)

	vs := in.Violations()
	require.Len(t, vs, 2)
	assert.Equal(t, "FedNowIncoming.FedNowIncomingMessage.FedNowMessageReject.AppHdr.BizMsgIdr", vs[0].Path)
	assert.Equal(t, 1001, vs[0].Code)
	assert.Equal(t, "FedNowIncoming.FedNowIncomingMessage.FedNowMessageReject.Document.admi.002.001.01.RltdRef.Ref", vs[1].Path)
	assert.Equal(t, 1002, vs[1].Code)
}

func TestUnregisteredDocumentIsUnknown(t *testing.T) {
	src := strings.Replace(loadReject(t), "xsd:admi.002.001.01", "xsd:pacs.008.001.08", 1)
	_, err := fednow.ParseIncoming([]byte(src))
	require.Error(t, err)
	assert.Equal(t, "ISO-DOC-001", document.RuleID(err))
	assert.Equal(t, document.CodeUnknownDocument, document.Code(err))
}

func TestHeaderNeedsNamespace(t *testing.T) {
	src := strings.Replace(loadReject(t), `<AppHdr xmlns="urn:iso:std:iso:20022:tech:xsd:head.001.001.02">`, "<AppHdr>", 1)
	_, err := fednow.ParseIncoming([]byte(src))
	require.Error(t, err)
	assert.Equal(t, "ISO-ENV-002", document.RuleID(err))
}

func TestMessageHoldsOneKind(t *testing.T) {
	src := loadReject(t)
	start := strings.Index(src, "<FedNowMessageReject>")
	end := strings.Index(src, "</FedNowMessageReject>") + len("</FedNowMessageReject>")
	reject := src[start:end]
	status := strings.ReplaceAll(reject, "FedNowMessageReject", "FedNowPaymentStatus")
	src = src[:end] + status + src[end:]

	_, err := fednow.ParseIncoming([]byte(src))
	require.Error(t, err)
	assert.True(t, errors.Is(err, choice.ErrMultipleAlternatives), "%v", err)
	assert.Equal(t, "ISO-PARSE-004", document.RuleID(err))
}

func TestParseErrors(t *testing.T) {
	for in, rule := range map[string]string{
		"  ":                                "ISO-PARSE-001",
		"<FedNowIncoming><FedNowIncoming":   "ISO-PARSE-003",
		"<FedNowOutgoing></FedNowOutgoing>": "ISO-PARSE-004",
		"<FedNowIncoming><FedNowIncomingMessage><FedNowSystemResponse/></FedNowIncomingMessage></FedNowIncoming>": "ISO-PARSE-004",
	} {
		_, err := fednow.ParseIncoming([]byte(in))
		assert.Equal(t, rule, document.RuleID(err), in)
	}

	_, err := fednow.ParseIncomingJSON([]byte(`{"FedNowIncomingMessage":`))
	assert.Equal(t, "ISO-PARSE-005", document.RuleID(err))
}

func TestNewOutgoing(t *testing.T) {
	in, err := fednow.ParseIncoming([]byte(loadReject(t)))
	require.NoError(t, err)
	p, _ := in.Message.Pair()

	_, err = fednow.NewIncoming("FedNowSystemResponse", p)
	assert.ErrorIs(t, err, choice.ErrUnknownAlternative)

	out, err := fednow.NewOutgoing("FedNowSystemResponse", p)
	require.NoError(t, err)
	assert.Empty(t, out.Violations())

	b, err := out.Render()
	require.NoError(t, err)
	assert.Contains(t, string(b), "<FedNowOutgoing><FedNowOutgoingMessage><FedNowSystemResponse><AppHdr ")

	back, err := fednow.ParseOutgoing(b)
	require.NoError(t, err)
	assert.Equal(t, "FedNowSystemResponse", back.Message.Tag())
	assert.Nil(t, back.TechnicalHeader)
}

func TestPairNeedsHeaderAndDocument(t *testing.T) {
	in, err := fednow.ParseIncoming([]byte(loadReject(t)))
	require.NoError(t, err)
	p, _ := in.Message.Pair()

	missing, err := fednow.NewIncoming("FedNowMessageReject", fednow.Pair{AppHdr: p.AppHdr})
	require.NoError(t, err)
	vs := missing.Violations()
	require.Len(t, vs, 1)
	assert.Equal(t, fednow.CodeMissingPart, vs[0].Code)
	assert.Equal(t, "FedNowIncoming.FedNowIncomingMessage.FedNowMessageReject", vs[0].Path)

	swapped, err := fednow.NewIncoming("FedNowMessageReject", fednow.Pair{AppHdr: p.Document, Document: p.Document})
	require.NoError(t, err)
	vs = swapped.Violations()
	require.Len(t, vs, 1)
	assert.Equal(t, "header", vs[0].Rule)

	unset := &fednow.Incoming{}
	vs = unset.Violations()
	require.Len(t, vs, 1)
	assert.Equal(t, "FedNowIncoming.FedNowIncomingMessage", vs[0].Path)
}
