package component_test

import (
	"encoding/xml"
	"math"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openpayments.dev/iso20022/component"
	"openpayments.dev/iso20022/facet"
	"openpayments.dev/iso20022/valid"
)

func codes(vs valid.Violations) []int {
	out := make([]int, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Code)
	}
	return out
}

func TestMax35Text(t *testing.T) {
	assert.True(t, valid.IsValid(component.Max35Text(strings.Repeat("a", 35))))
	assert.Equal(t, []int{1002}, codes(valid.Check(component.Max35Text(strings.Repeat("a", 36)))))
	assert.Equal(t, []int{1001}, codes(valid.Check(component.Max35Text(""))))
}

func TestCountryCode(t *testing.T) {
	assert.True(t, valid.IsValid(component.CountryCode("US")))
	for _, bad := range []string{"us", "USA", "U", ""} {
		assert.Equal(t, []int{1005}, codes(valid.Check(component.CountryCode(bad))), bad)
	}
}

func TestCodeList(t *testing.T) {
	assert.True(t, valid.IsValid(component.AddressType2CodeHOME))
	vs := valid.Check(component.AddressType2Code("home"))
	require.Len(t, vs, 1)
	assert.Equal(t, 1006, vs[0].Code)
}

func TestUnrestrictedTextAcceptsAnything(t *testing.T) {
	assert.True(t, valid.IsValid(component.ISODate("not a date")))
	assert.True(t, valid.IsValid(component.ISODateTime("")))
}

func TestAmountValidation(t *testing.T) {
	ok := component.ActiveOrHistoricCurrencyAndAmount{Ccy: "USD", Value: 100}
	assert.True(t, valid.IsValid(ok))

	bad := component.ActiveOrHistoricCurrencyAndAmount{Ccy: "usd", Value: -0.5}
	vs := valid.Check(bad, valid.WithRoot("Amt"))
	assert.Equal(t, []string{"Amt.Ccy", "Amt.Value"}, vs.Paths())
	assert.Equal(t, []int{1005, 1003}, codes(vs))
}

func TestAmountXML(t *testing.T) {
	item := component.PayInCallItem{Amt: component.ActiveOrHistoricCurrencyAndAmount{Ccy: "USD", Value: 100}}
	b, err := xml.Marshal(item)
	require.NoError(t, err)
	assert.Equal(t, `<PayInCallItem><Amt Ccy="USD">100</Amt></PayInCallItem>`, string(b))

	var back component.PayInCallItem
	require.NoError(t, xml.Unmarshal([]byte(`<PayInCallItem><Amt Ccy="EUR">0.25</Amt></PayInCallItem>`), &back))
	assert.Equal(t, component.ActiveOrHistoricCurrencyCode("EUR"), back.Amt.Ccy)
	assert.InDelta(t, 0.25, float64(back.Amt.Value), 0)
}

func TestAmountJSON(t *testing.T) {
	item := component.PayInCallItem{Amt: component.ActiveOrHistoricCurrencyAndAmount{Ccy: "USD", Value: 100}}
	b, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Amt":{"Ccy":"USD","Value":100}}`, string(b))

	var back component.PayInCallItem
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, item, back)
}

func TestAmountsRenderWithoutExponent(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{1500000, "1500000"},
		{123456789.01, "123456789.01"},
		{0.00001, "0.00001"},
		{100, "100"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			item := component.PayInCallItem{Amt: component.ActiveOrHistoricCurrencyAndAmount{Ccy: "USD", Value: component.ActiveOrHistoricCurrencyAndAmountSimpleType(tc.value)}}

			b, err := xml.Marshal(item)
			require.NoError(t, err)
			assert.Equal(t, `<PayInCallItem><Amt Ccy="USD">`+tc.want+`</Amt></PayInCallItem>`, string(b))

			b, err = json.Marshal(item)
			require.NoError(t, err)
			assert.Contains(t, string(b), `"Value":`+tc.want+`}`)

			var back component.PayInCallItem
			require.NoError(t, json.Unmarshal(b, &back))
			assert.Equal(t, item, back)
		})
	}
}

func TestDecimalWithoutFiniteValueFailsToEncode(t *testing.T) {
	_, err := xml.Marshal(component.ManifestData2{DocTp: "INV", NbOfDocs: component.DecimalNumber(math.Inf(1))})
	assert.ErrorIs(t, err, facet.ErrNotDecimal)
}

func TestGeneratedChoiceAccessors(t *testing.T) {
	id := component.AccountIdentification4ChoiceIBAN("GB82WEST12345698765432")
	iban, ok := id.IBAN()
	require.True(t, ok)
	assert.Equal(t, component.IBAN2007Identifier("GB82WEST12345698765432"), iban)
	_, ok = id.Othr()
	assert.False(t, ok)
	assert.True(t, valid.IsValid(id))

	vs := valid.Check(component.AccountIdentification4ChoiceIBAN("gb82"), valid.WithRoot("Id"))
	require.Len(t, vs, 1)
	assert.Equal(t, "Id.IBAN", vs[0].Path)
}

func TestGeneratedChoiceXML(t *testing.T) {
	var acct component.CashAccount40
	in := `<CashAccount40><Id><Othr><Id>12345</Id></Othr></Id><Nm>Main</Nm></CashAccount40>`
	require.NoError(t, xml.Unmarshal([]byte(in), &acct))
	require.NotNil(t, acct.Id)
	othr, ok := acct.Id.Othr()
	require.True(t, ok)
	assert.Equal(t, component.Max34Text("12345"), othr.Id)
	assert.True(t, valid.IsValid(acct))

	out, err := xml.Marshal(acct)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestOptionalFieldsAreOmitted(t *testing.T) {
	b, err := xml.Marshal(component.CashAccount40{})
	require.NoError(t, err)
	assert.Equal(t, `<CashAccount40></CashAccount40>`, string(b))
	assert.True(t, valid.IsValid(component.CashAccount40{}))
}

func TestLaxPayloadKeepsInnerXML(t *testing.T) {
	var p component.LaxPayload
	require.NoError(t, xml.Unmarshal([]byte(`<LaxPayload><Foo a="1">x</Foo></LaxPayload>`), &p))
	assert.Equal(t, `<Foo a="1">x</Foo>`, p.Any)

	b, err := xml.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `<LaxPayload><Foo a="1">x</Foo></LaxPayload>`, string(b))
}
