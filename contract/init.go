package contract

import (
	"github.com/inconshreveable/log15"

	"github.com/spikeekips/chacharand/common"
)

var log log15.Logger = common.NewDiscardLogger("module", "contract")

func Log() log15.Logger {
	return log
}
