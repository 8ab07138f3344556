package main

import (
	"github.com/inconshreveable/log15"

	"github.com/spikeekips/chacharand/common"
	"github.com/spikeekips/chacharand/contract"
)

var log log15.Logger = common.NewDiscardLogger("module", "main")

func setLogging(level log15.Lvl, format, out string) error {
	handler, err := common.LogHandler(common.LogFormatter(format), out)
	if err != nil {
		return err
	}
	handler = log15.CallerFileHandler(handler)

	for _, l := range []log15.Logger{
		log,
		contract.Log(),
	} {
		common.SetLogger(l, level, handler)
	}

	return nil
}
