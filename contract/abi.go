package contract

import (
	"github.com/spikeekips/chacharand/abi"
	"github.com/spikeekips/chacharand/common"
)

const (
	Name                     = "RandomGenerator"
	GetRandomNumberMethod    = "getRandomNumber"
	GetRandomNumberSignature = "getRandomNumber(uint256)"
)

const ABI = `[
  {
    "type": "function",
    "name": "getRandomNumber",
    "stateMutability": "view",
    "inputs": [{"name": "seed", "type": "uint256", "internalType": "uint256"}],
    "outputs": [{"name": "", "type": "uint256", "internalType": "uint256"}]
  }
]`

var (
	Version                 common.Version = common.MustParseVersion("0.1.0")
	Interface               abi.Interface  = abi.MustParseInterface(ABI)
	GetRandomNumberSelector abi.Selector   = abi.MustNewSelector(GetRandomNumberSignature)
)

func init() {
	s, err := Interface.Selector(GetRandomNumberMethod)
	if err != nil {
		panic(err)
	} else if !s.Equal(GetRandomNumberSelector) {
		panic(common.NewError("contract", 0, "abi selector mismatch").Newf(
			"abi=%s signature=%s", s, GetRandomNumberSelector,
		))
	}
}
