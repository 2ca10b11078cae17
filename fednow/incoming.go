package fednow

import (
	"encoding/xml"

	json "github.com/goccy/go-json"

	"openpayments.dev/iso20022/choice"
	"openpayments.dev/iso20022/cidutil"
	"openpayments.dev/iso20022/valid"
)

// IncomingElement is the root element of messages sent to the service.
const IncomingElement = "FedNowIncoming"

// Incoming is a message sent by a participant to the FedNow service.
type Incoming struct {
	XMLName         xml.Name         `xml:"FedNowIncoming" json:"-"`
	TechnicalHeader *TechnicalHeader `xml:"FedNowTechnicalHeader,omitempty" json:"FedNowTechnicalHeader,omitempty"`
	Message         IncomingMessage  `xml:"FedNowIncomingMessage" json:"FedNowIncomingMessage"`
}

// IncomingMessage is a choice between the incoming message kinds.
type IncomingMessage struct{ choice.Value }

var alternativesIncoming = pairs(
	"FedNowMessageReject",
	"FedNowParticipantBroadcast",
	"FedNowRetrievalRequest",
	"FedNowReceiptAcknowledgement",
	"FedNowPaymentStatus",
	"FedNowPaymentReturn",
	"FedNowCustomerCreditTransfer",
	"FedNowInstitutionCreditTransfer",
	"FedNowPaymentStatusRequest",
	"FedNowRequestForPayment",
	"FedNowRequestForPaymentResponse",
	"FedNowInformationRequest",
	"FedNowAdditionalPaymentInformation",
	"FedNowInformationRequestResponse",
	"FedNowRequestForPaymentCancellationRequestResponse",
	"FedNowReturnRequestResponse",
	"FedNowRequestForPaymentCancellationRequest",
	"FedNowReturnRequest",
	"FedNowAccountReportingRequest",
)

// NewIncoming returns an envelope carrying p as the named message kind,
// e.g. "FedNowCustomerCreditTransfer".
func NewIncoming(kind string, p Pair) (*Incoming, error) {
	v, err := selectKind(kind, p, alternativesIncoming)
	if err != nil {
		return nil, err
	}
	return &Incoming{Message: IncomingMessage{v}}, nil
}

// Pair returns the header and document of the selected message kind.
func (m IncomingMessage) Pair() (Pair, bool) {
	return pairOf(m.Value)
}

func (m *IncomingMessage) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return m.Value.DecodeXML(d, start, alternativesIncoming)
}

func (m *IncomingMessage) UnmarshalJSON(data []byte) error {
	return m.Value.DecodeJSON(data, alternativesIncoming)
}

func (in Incoming) Validate(c *valid.Checker) {
	valid.Optional(c, "FedNowTechnicalHeader", in.TechnicalHeader)
	c.Field("FedNowIncomingMessage", in.Message)
}

// ParseIncoming decodes the XML form of an incoming envelope. It does not
// validate the message.
func ParseIncoming(data []byte) (*Incoming, error) {
	in := new(Incoming)
	if err := parseXML(data, in); err != nil {
		return nil, err
	}
	return in, nil
}

// ParseIncomingJSON decodes the JSON form written by RenderJSON.
func ParseIncomingJSON(data []byte) (*Incoming, error) {
	in := new(Incoming)
	if err := parseJSON(data, in); err != nil {
		return nil, err
	}
	return in, nil
}

// Violations validates in, rooting paths at FedNowIncoming.
func (in *Incoming) Violations(opts ...valid.Option) valid.Violations {
	return violations(IncomingElement, in, opts)
}

// Render produces the XML form of in. Nested documents carry their own
// namespaces.
func (in *Incoming) Render() ([]byte, error) {
	return render(in)
}

// RenderJSON produces the JSON form of in.
func (in *Incoming) RenderJSON() ([]byte, error) {
	b, err := json.MarshalNoEscape(in)
	if err != nil {
		return nil, classifyRender(err)
	}
	return b, nil
}

// CID fingerprints the rendered XML of in.
func (in *Incoming) CID(alg cidutil.Algorithm) (string, error) {
	return fingerprint(in, alg)
}
