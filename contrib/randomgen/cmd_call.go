package main

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/spikeekips/chacharand/abi"
	"github.com/spikeekips/chacharand/contract"
	"github.com/spikeekips/chacharand/rng"
)

func newCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <seed>",
		Short: "call getRandomNumber(uint256) through the contract entry point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := parseSeed(args[0])
			if err != nil {
				return err
			}

			input := abi.EncodeCall(contract.GetRandomNumberSelector, seed)
			log.Debug("calling", "seed", seed, "input", hexutil.Encode(input))

			output, code, err := contract.Call(contract.NewRandomGenerator(), input)
			if err != nil {
				return err
			}
			log.Debug("called", "exit_code", code, "output", hexutil.Encode(output))

			value, err := abi.DecodeOutput(output)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), config.Output.Format, newResult(&seed, value))
		},
	}
}

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <call data>",
		Short: "run hex encoded call data through the contract entry point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := hexutil.Decode(args[0])
			if err != nil {
				return xerrors.Errorf("invalid call data: %w", err)
			}

			output, code, err := contract.Call(contract.NewRandomGenerator(), input)
			if err != nil {
				log.Error("call failed", "exit_code", code, "error", err)
				return err
			}

			value, err := abi.DecodeOutput(output)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), config.Output.Format, newResult(nil, value))
		},
	}
}

func newDeriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive <seed>",
		Short: "derive the random number of seed without the call envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := parseSeed(args[0])
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), config.Output.Format, newResult(&seed, rng.Derive(seed)))
		},
	}
}
