package model

import (
	"errors"
	"fmt"

	"openpayments.dev/iso20022/document"
)

type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"
	ErrParse           ErrorCode = "PARSE"
	ErrEnvelope        ErrorCode = "ENVELOPE"
	ErrUnknownDocument ErrorCode = "UNKNOWN_DOCUMENT"
	ErrValidation      ErrorCode = "VALIDATION"
	ErrInternal        ErrorCode = "INTERNAL"
)

// CodedError is a stable error with a machine-readable code and a human message.
type CodedError struct {
	Code    ErrorCode `json:"code"`
	RuleID  string    `json:"ruleID,omitempty"`
	Number  int       `json:"number,omitempty"`
	Message string    `json:"message"`
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

// FromError projects err onto a CodedError, keeping the RuleID and numeric
// code of structured document errors.
func FromError(err error) *CodedError {
	if err == nil {
		return nil
	}
	var de *document.Error
	if !errors.As(err, &de) {
		return NewError(ErrInternal, err.Error())
	}
	code := ErrInternal
	switch de.Kind {
	case document.KindParse:
		code = ErrParse
	case document.KindEnvelope:
		code = ErrEnvelope
	case document.KindUnknownDocument:
		code = ErrUnknownDocument
	case document.KindValidation:
		code = ErrValidation
	}
	return &CodedError{Code: code, RuleID: de.RuleID, Number: de.Code, Message: de.Error()}
}
