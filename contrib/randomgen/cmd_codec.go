package main

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/spikeekips/chacharand/abi"
	cbig "github.com/spikeekips/chacharand/big"
	"github.com/spikeekips/chacharand/common"
	"github.com/spikeekips/chacharand/contract"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <seed>",
		Short: "print the call data of getRandomNumber(seed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := parseSeed(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(
				cmd.OutOrStdout(),
				hexutil.Encode(abi.EncodeCall(contract.GetRandomNumberSelector, seed)),
			)

			return err
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <return data>",
		Short: "decode the hex encoded return data of getRandomNumber",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := hexutil.Decode(args[0])
			if err != nil {
				return xerrors.Errorf("invalid return data: %w", err)
			}

			unpacked, err := contract.Interface.UnpackOutput(contract.GetRandomNumberMethod, b)
			if err != nil {
				return err
			}

			n, ok := unpacked[0].(*big.Int)
			if !ok {
				return xerrors.Errorf("unexpected output type: %T", unpacked[0])
			}

			value, err := cbig.U256FromBig(n)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), config.Output.Format, newResult(nil, value))
		},
	}
}

func newSelectorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selector",
		Short: "print the registered signatures and their selectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, signature := range contract.NewRandomGenerator().Signatures() {
				s, err := abi.NewSelector(signature)
				if err != nil {
					return err
				}

				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", s, signature); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newABICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abi",
		Short: "print the contract abi",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), common.PrintJSON([]byte(contract.ABI), true, false))

			return err
		},
	}
}
