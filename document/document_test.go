package document_test

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openpayments.dev/iso20022/component"
	"openpayments.dev/iso20022/document"
	"openpayments.dev/iso20022/message/admi"
	"openpayments.dev/iso20022/message/camt"
	"openpayments.dev/iso20022/valid"
)

func loadVector(t *testing.T, family, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("..", "testdata", "conformance", family, name))
	require.NoError(t, err)
	return b
}

func TestParseIdentifiesMessage(t *testing.T) {
	doc, err := document.Parse(loadVector(t, "camt.061.001.02", "payincall_1.xml"))
	require.NoError(t, err)

	assert.Equal(t, "camt.061.001.02", doc.Message.ID)
	assert.Equal(t, "PayInCall", doc.Message.Element)
	require.IsType(t, &camt.PayInCallV02{}, doc.Body)

	body := doc.Body.(*camt.PayInCallV02)
	assert.Equal(t, component.Max35Text("PIC-2024-0001"), body.RptData.MsgId)
	assert.Equal(t, component.CallIn1CodeCFST, body.RptData.Tp)
	require.Len(t, body.RptData.PayInCallAmt, 2)
	assert.Equal(t, component.ActiveOrHistoricCurrencyCode("EUR"), body.RptData.PayInCallAmt[1].Amt.Ccy)
	assert.InDelta(t, 250.5, float64(body.RptData.PayInCallAmt[1].Amt.Value), 0)

	party, ok := body.PtyId.NmAndAdr()
	require.True(t, ok)
	assert.Equal(t, component.Max350Text("Example Clearing Member"), party.Nm)
	require.NotNil(t, party.Adr)
	assert.Equal(t, component.CountryCode("GB"), party.Adr.Ctry)
}

func TestViolationsAreRootedAtElement(t *testing.T) {
	doc, err := document.Parse(loadVector(t, "camt.061.001.02", "payincall_1.invalid.xml"))
	require.NoError(t, err)

	all := doc.Violations()
	assert.Len(t, all, 3)
	first := doc.Violations(valid.FailFast())
	require.Len(t, first, 1)
	assert.Equal(t, all[0], first[0])
}

func TestNewRendersLikeParsedDocument(t *testing.T) {
	rsn := component.Max350Text("Message failed schema validation")
	dtTm := component.ISODateTime("2024-03-15T10:31:02Z")
	msg := &admi.MessageRejectV01{
		RltdRef: component.MessageReference{Ref: "MSG-0042"},
		Rsn: component.RejectionReason2{
			RjctgPtyRsn: "SCHEMA",
			RjctnDtTm:   &dtTm,
			RsnDesc:     &rsn,
		},
	}
	doc, err := document.New(msg)
	require.NoError(t, err)
	assert.Equal(t, "admi.002.001.01", doc.Message.ID)
	require.NoError(t, doc.Validate())

	got, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, string(loadVector(t, "admi.002.001.01", "reject_1.canonical.xml")), string(got))
}

func TestNewRejectsUnregisteredType(t *testing.T) {
	_, err := document.New(&component.MessageReference{Ref: "x"})
	require.Error(t, err)
	assert.True(t, document.IsKind(err, document.KindUnknownDocument))
	assert.Equal(t, document.CodeUnknownDocument, document.Code(err))
}

func TestRequiredChoiceLeftUnset(t *testing.T) {
	doc, err := document.New(&camt.PayInCallV02{
		RptData: component.ReportData5{
			MsgId:       "PIC-1",
			ValDt:       "2024-03-15",
			DtAndTmStmp: "2024-03-15T10:30:00",
			Tp:          component.CallIn1CodeCFAV,
		},
	})
	require.NoError(t, err)

	vs := doc.Violations()
	require.Len(t, vs, 1)
	assert.Equal(t, "PayInCall.PtyId", vs[0].Path)
	assert.Equal(t, valid.CodeChoiceUnset, vs[0].Code)
}

func TestJSONRoundTrip(t *testing.T) {
	canon := loadVector(t, "camt.061.001.02", "payincall_1.canonical.xml")
	doc, err := document.Parse(canon)
	require.NoError(t, err)

	js, err := doc.RenderJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"PayInCall":{
		"PtyId":{"NmAndAdr":{"Nm":"Example Clearing Member","Adr":{"TwnNm":"London","Ctry":"GB"}}},
		"RptData":{
			"MsgId":"PIC-2024-0001",
			"ValDt":"2024-03-15",
			"DtAndTmStmp":"2024-03-15T10:30:00",
			"Tp":"CFST",
			"PayInCallAmt":[
				{"Amt":{"Ccy":"USD","Value":100}},
				{"Amt":{"Ccy":"EUR","Value":250.5}}
			]
		}
	}}`, string(js))

	back, err := document.ParseJSON(js)
	require.NoError(t, err)
	assert.Equal(t, doc.Message.ID, back.Message.ID)

	xmlAgain, err := back.Render()
	require.NoError(t, err)
	assert.Equal(t, string(canon), string(xmlAgain))

	indented, err := back.RenderJSONIndent("", "  ")
	require.NoError(t, err)
	assert.JSONEq(t, string(js), string(indented))
}

func TestParseJSONAcceptsMessageID(t *testing.T) {
	doc, err := document.ParseJSON([]byte(`{"camt.061.001.02":{"RptData":{"MsgId":"X","Tp":"CFCC"}}}`))
	require.NoError(t, err)
	assert.Equal(t, "PayInCall", doc.Message.Element)
}

func TestParseJSONErrors(t *testing.T) {
	_, err := document.ParseJSON([]byte(`{"PayInCall":`))
	assert.Equal(t, "ISO-PARSE-005", document.RuleID(err))

	_, err = document.ParseJSON([]byte(`{"PayInCall":{},"MndtCpyReq":{}}`))
	assert.Equal(t, "ISO-PARSE-006", document.RuleID(err))

	_, err = document.ParseJSON([]byte(`{}`))
	assert.Equal(t, "ISO-PARSE-006", document.RuleID(err))

	_, err = document.ParseJSON([]byte(`{"FIToFICstmrCdtTrf":{}}`))
	assert.Equal(t, "ISO-DOC-001", document.RuleID(err))
	assert.Equal(t, 9999, document.Code(err))

	_, err = document.ParseJSON([]byte(`{"PayInCall":{"RptData":{"PayInCallAmt":[{"Amt":{"Ccy":"USD","Value":"abc"}}]}}}`))
	assert.Equal(t, "ISO-PARSE-004", document.RuleID(err))
}

func TestJSONKeepsMarkupCharacters(t *testing.T) {
	rsn := component.Max350Text(`<RjctnRsn> & "quoted"`)
	doc, err := document.New(&admi.MessageRejectV01{
		RltdRef: component.MessageReference{Ref: "MSG-0043"},
		Rsn:     component.RejectionReason2{RjctgPtyRsn: "SCHEMA", RsnDesc: &rsn},
	})
	require.NoError(t, err)

	js, err := doc.RenderJSON()
	require.NoError(t, err)
	assert.Contains(t, string(js), `"RsnDesc":"<RjctnRsn> & \"quoted\""`)

	indented, err := doc.RenderJSONIndent("", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(indented), `"RsnDesc": "<RjctnRsn> & \"quoted\""`)
	assert.NotEqual(t, byte('\n'), indented[len(indented)-1])

	back, err := document.ParseJSON(indented)
	require.NoError(t, err)
	assert.Equal(t, doc.Body, back.Body)
}

type carrier struct {
	XMLName xml.Name           `xml:"Carrier"`
	Hdr     *document.Document `xml:"AppHdr"`
	Doc     *document.Document `xml:"Document"`
}

func TestDocumentsNestInLargerXML(t *testing.T) {
	hdr, err := document.Parse([]byte(`<AppHdr xmlns="urn:iso:std:iso:20022:tech:xsd:head.001.001.02"><BizMsgIdr>B-1</BizMsgIdr></AppHdr>`))
	require.NoError(t, err)
	assert.Equal(t, "head.001.001.02", hdr.Message.ID)
	doc, err := document.Parse(loadVector(t, "admi.002.001.01", "reject_1.xml"))
	require.NoError(t, err)

	b, err := xml.Marshal(carrier{Hdr: hdr, Doc: doc})
	require.NoError(t, err)
	assert.Contains(t, string(b), `<Carrier><AppHdr xmlns="urn:iso:std:iso:20022:tech:xsd:head.001.001.02">`)
	assert.Contains(t, string(b), `</AppHdr><Document xmlns="urn:iso:std:iso:20022:tech:xsd:admi.002.001.01"><admi.002.001.01><RltdRef>`)

	var back carrier
	require.NoError(t, xml.Unmarshal(b, &back))
	assert.Equal(t, hdr.Body, back.Hdr.Body)
	want, err := doc.Render()
	require.NoError(t, err)
	got, err := back.Doc.Render()
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))

	err = xml.Unmarshal([]byte(`<Carrier><AppHdr><BizMsgIdr>B-1</BizMsgIdr></AppHdr></Carrier>`), &back)
	assert.Equal(t, "ISO-ENV-002", document.RuleID(err))
}
