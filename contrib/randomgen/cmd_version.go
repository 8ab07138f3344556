package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spikeekips/chacharand/contract"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the contract version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", contract.Name, contract.Version)

			return err
		},
	}
}
