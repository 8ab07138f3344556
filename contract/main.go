package contract

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	uuid "github.com/satori/go.uuid"
	"golang.org/x/xerrors"

	"github.com/spikeekips/chacharand/abi"
	"github.com/spikeekips/chacharand/host"
)

// Contract is a Handler with a deploy hook. The hook runs before every
// call.
type Contract interface {
	Handler
	Deploy()
}

// Main runs a single call on sdk: deploy, read the input, dispatch, then
// write the reply. On failure nothing is written and sdk exits with a
// failure code.
func Main(sdk host.SDK, c Contract) (err error) {
	l := log.New("call", uuid.NewV4().String())

	defer func() {
		if r := recover(); r != nil {
			err = ContractPanickedError.Newf("%v", r)
			l.Error("contract panicked", "error", err)
			sdk.Exit(host.ExitPanic)
		}
	}()

	c.Deploy()

	input := sdk.Input()
	l.Debug("call started", "input_length", len(input))

	output, err := c.Handle(input)
	if err != nil {
		code := ExitCodeFromError(err)
		l.Error("call failed", "error", err, "exit_code", code)

		sdk.Exit(code)

		return err
	}

	sdk.WriteOutput(output)
	sdk.Exit(host.ExitOK)

	l.Debug("call finished", "output", hexutil.Encode(output))

	return nil
}

func ExitCodeFromError(err error) host.ExitCode {
	switch {
	case err == nil:
		return host.ExitOK
	case xerrors.Is(err, abi.MalformedInputError):
		return host.ExitMalformedInput
	case xerrors.Is(err, abi.UnknownSelectorError):
		return host.ExitUnknownSelector
	default:
		return host.ExitPanic
	}
}

// Call runs call through Main on a fresh in-memory host and returns the
// captured output.
func Call(c Contract, call []byte) ([]byte, host.ExitCode, error) {
	sdk := host.NewTestingContext().WithInput(call)

	err := Main(sdk, c)
	code, _ := sdk.ExitCode()

	return sdk.TakeOutput(), code, err
}
