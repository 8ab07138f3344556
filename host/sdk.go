package host

import "fmt"

type ExitCode int32

const (
	ExitOK ExitCode = iota
	ExitMalformedInput
	ExitUnknownSelector
	ExitPanic
)

func (e ExitCode) String() string {
	switch e {
	case ExitOK:
		return "ok"
	case ExitMalformedInput:
		return "malformed-input"
	case ExitUnknownSelector:
		return "unknown-selector"
	case ExitPanic:
		return "panic"
	default:
		return fmt.Sprintf("unknown-exit-code(%d)", int32(e))
	}
}

func (e ExitCode) IsOK() bool {
	return e == ExitOK
}

// SDK is the surface a contract runtime offers to a running contract. It
// delivers the call input and captures the call output.
type SDK interface {
	Input() []byte
	WriteOutput([]byte)
	Exit(ExitCode)
}
