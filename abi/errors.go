package abi

import "github.com/spikeekips/chacharand/common"

const (
	_ uint = iota
	MalformedInputErrorCode
	UnknownSelectorErrorCode
	InvalidSignatureErrorCode
	InvalidWordErrorCode
)

var (
	MalformedInputError    common.Error = common.NewError("abi", MalformedInputErrorCode, "malformed input")
	UnknownSelectorError   common.Error = common.NewError("abi", UnknownSelectorErrorCode, "unknown selector")
	InvalidSignatureError  common.Error = common.NewError("abi", InvalidSignatureErrorCode, "invalid function signature")
	InvalidWordError       common.Error = common.NewError("abi", InvalidWordErrorCode, "invalid word")
)
