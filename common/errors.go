package common

const (
	_ uint = iota
	OverflowErrorCode
	JSONUnmarshalErrorCode
	InvalidVersionErrorCode
)

var (
	OverflowError       Error = NewError("common", OverflowErrorCode, "overflow number")
	JSONUnmarshalError  Error = NewError("common", JSONUnmarshalErrorCode, "failed json unmarshal")
	InvalidVersionError Error = NewError("common", InvalidVersionErrorCode, "invalid version")
)
