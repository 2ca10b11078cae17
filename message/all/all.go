// Package all links every generated message set into the registry.
package all

import (
	_ "openpayments.dev/iso20022/message/acmt"
	_ "openpayments.dev/iso20022/message/admi"
	_ "openpayments.dev/iso20022/message/auth"
	_ "openpayments.dev/iso20022/message/camt"
	_ "openpayments.dev/iso20022/message/head"
	_ "openpayments.dev/iso20022/message/pain"
	_ "openpayments.dev/iso20022/message/reda"
)
