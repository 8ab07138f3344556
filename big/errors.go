package big

import "github.com/spikeekips/chacharand/common"

const (
	_ uint = iota
	InvalidU256StringErrorCode
)

var (
	InvalidU256StringError common.Error = common.NewError("big", InvalidU256StringErrorCode, "invalid u256 string")
	OverflowError          common.Error = common.OverflowError
)
