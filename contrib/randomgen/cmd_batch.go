package main

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/spikeekips/chacharand/abi"
	"github.com/spikeekips/chacharand/big"
	"github.com/spikeekips/chacharand/common"
	"github.com/spikeekips/chacharand/contract"
)

const maxBatchCount = 1 << 20

func newBatchCmd() *cobra.Command {
	var from string
	var count uint64

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "call getRandomNumber for a range of consecutive seeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseSeed(from)
			if err != nil {
				return err
			}

			results, err := deriveBatch(cmd.Context(), start, count, config.Batch.Workers)
			if err != nil {
				return err
			}

			for _, r := range results {
				if err := printResult(cmd.OutOrStdout(), config.Output.Format, r); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "0", "first seed")
	cmd.Flags().Uint64Var(&count, "count", 1, "number of seeds")
	cmd.Flags().IntVar(&flagWorkers, "workers", flagWorkers, "number of concurrent calls; 0 uses the config")

	return cmd
}

// deriveBatch runs count independent calls for the seeds from, from+1, ...
// Results keep the seed order.
func deriveBatch(ctx context.Context, from big.U256, count uint64, workers int) ([]result, error) {
	if count < 1 {
		return nil, nil
	} else if count > maxBatchCount {
		return nil, xerrors.Errorf("count should not be greater than %d; count=%d", maxBatchCount, count)
	}

	if _, ok := from.AddOK(big.NewU256(count - 1)); !ok {
		return nil, common.OverflowError.Newf("from=%s count=%d", from, count)
	}

	if workers < 1 {
		workers = 1
	}

	if ctx == nil {
		ctx = context.Background()
	}

	g := contract.NewRandomGenerator()
	results := make([]result, count)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := uint64(0); i < count; i++ {
		i := i
		seed, _ := from.AddOK(big.NewU256(i))

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			output, _, err := contract.Call(g, abi.EncodeCall(contract.GetRandomNumberSelector, seed))
			if err != nil {
				return err
			}

			value, err := abi.DecodeOutput(output)
			if err != nil {
				return err
			}

			results[i] = newResult(&seed, value)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	log.Debug("batch finished", "from", from, "count", count, "workers", workers)

	return results, nil
}
