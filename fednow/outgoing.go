package fednow

import (
	"encoding/xml"

	json "github.com/goccy/go-json"

	"openpayments.dev/iso20022/choice"
	"openpayments.dev/iso20022/cidutil"
	"openpayments.dev/iso20022/valid"
)

// OutgoingElement is the root element of messages sent by the service.
const OutgoingElement = "FedNowOutgoing"

// Outgoing is a message sent by the FedNow service to a participant.
type Outgoing struct {
	XMLName         xml.Name         `xml:"FedNowOutgoing" json:"-"`
	TechnicalHeader *TechnicalHeader `xml:"FedNowTechnicalHeader,omitempty" json:"FedNowTechnicalHeader,omitempty"`
	Message         OutgoingMessage  `xml:"FedNowOutgoingMessage" json:"FedNowOutgoingMessage"`
}

// OutgoingMessage is a choice between the outgoing message kinds.
type OutgoingMessage struct{ choice.Value }

var alternativesOutgoing = pairs(
	"FedNowMessageReject",
	"FedNowBroadcast",
	"FedNowReceiptAcknowledgement",
	"FedNowSystemResponse",
	"FedNowParticipantFile",
	"FedNowPaymentStatus",
	"FedNowPaymentReturn",
	"FedNowCustomerCreditTransfer",
	"FedNowInstitutionCreditTransfer",
	"FedNowPaymentStatusRequest",
	"FedNowRequestForPayment",
	"FedNowRequestForPaymentResponse",
	"FedNowInformationRequest",
	"FedNowAdditionalPaymentInformation",
	"FedNowReturnRequestResponse",
	"FedNowInformationRequestResponse",
	"FedNowAccountActivityDetailsReport",
	"FedNowAccountActivityTotalsReport",
	"FedNowAccountBalanceReport",
	"AccountDebitCreditNotification",
	"FedNowRequestForPaymentCancellationRequest",
	"FedNowRequestForPaymentCancellationRequestResponse",
	"FedNowReturnRequest",
)

// NewOutgoing returns an envelope carrying p as the named message kind,
// e.g. "FedNowAccountBalanceReport".
func NewOutgoing(kind string, p Pair) (*Outgoing, error) {
	v, err := selectKind(kind, p, alternativesOutgoing)
	if err != nil {
		return nil, err
	}
	return &Outgoing{Message: OutgoingMessage{v}}, nil
}

// Pair returns the header and document of the selected message kind.
func (m OutgoingMessage) Pair() (Pair, bool) {
	return pairOf(m.Value)
}

func (m *OutgoingMessage) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return m.Value.DecodeXML(d, start, alternativesOutgoing)
}

func (m *OutgoingMessage) UnmarshalJSON(data []byte) error {
	return m.Value.DecodeJSON(data, alternativesOutgoing)
}

func (out Outgoing) Validate(c *valid.Checker) {
	valid.Optional(c, "FedNowTechnicalHeader", out.TechnicalHeader)
	c.Field("FedNowOutgoingMessage", out.Message)
}

// ParseOutgoing decodes the XML form of an outgoing envelope. It does not
// validate the message.
func ParseOutgoing(data []byte) (*Outgoing, error) {
	out := new(Outgoing)
	if err := parseXML(data, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseOutgoingJSON decodes the JSON form written by RenderJSON.
func ParseOutgoingJSON(data []byte) (*Outgoing, error) {
	out := new(Outgoing)
	if err := parseJSON(data, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Violations validates out, rooting paths at FedNowOutgoing.
func (out *Outgoing) Violations(opts ...valid.Option) valid.Violations {
	return violations(OutgoingElement, out, opts)
}

// Render produces the XML form of out. Nested documents carry their own
// namespaces.
func (out *Outgoing) Render() ([]byte, error) {
	return render(out)
}

// RenderJSON produces the JSON form of out.
func (out *Outgoing) RenderJSON() ([]byte, error) {
	b, err := json.MarshalNoEscape(out)
	if err != nil {
		return nil, classifyRender(err)
	}
	return b, nil
}

// CID fingerprints the rendered XML of out.
func (out *Outgoing) CID(alg cidutil.Algorithm) (string, error) {
	return fingerprint(out, alg)
}
