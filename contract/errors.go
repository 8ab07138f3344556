package contract

import "github.com/spikeekips/chacharand/common"

const (
	_ uint = iota
	MethodAlreadyRegisteredErrorCode
	ContractPanickedErrorCode
)

var (
	MethodAlreadyRegisteredError common.Error = common.NewError(
		"contract",
		MethodAlreadyRegisteredErrorCode,
		"method is already registered in Router",
	)
	ContractPanickedError common.Error = common.NewError("contract", ContractPanickedErrorCode, "contract panicked")
)
