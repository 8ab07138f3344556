package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spikeekips/chacharand/big"
)

func printFlags(cmd *cobra.Command, format string) interface{} {
	switch format {
	case "json":
		return printFlagsJSON(cmd)
	default:
		return printFlagsTerminal(cmd)
	}
}

func printFlagsJSON(cmd *cobra.Command) json.RawMessage {
	out := map[string]interface{}{}

	cmd.Flags().VisitAll(func(pf *pflag.Flag) {
		if pf.Name == "help" {
			return
		}

		out[fmt.Sprintf("--%s", pf.Name)] = map[string]interface{}{
			"default": fmt.Sprintf("%v", pf.DefValue),
			"value":   fmt.Sprintf("%v", pf.Value),
		}
	})

	b, _ := json.Marshal(out)

	return b
}

func printFlagsTerminal(cmd *cobra.Command) string {
	var b bytes.Buffer

	var flags []string
	cmd.Flags().VisitAll(func(pf *pflag.Flag) {
		if pf.Name == "help" {
			return
		}

		flags = append(flags, fmt.Sprintf("--%s=%v (default: %v)", pf.Name, pf.Value, pf.DefValue))
	})

	b.WriteString(strings.Join(flags, ", "))

	return b.String()
}

type result struct {
	Seed   *big.U256 `json:"seed,omitempty"`
	Output big.U256  `json:"output"`
	Hex    string    `json:"output_hex"`
}

func newResult(seed *big.U256, output big.U256) result {
	return result{Seed: seed, Output: output, Hex: output.Hex()}
}

func printResult(w io.Writer, format string, r result) error {
	switch format {
	case "decimal":
		_, err := fmt.Fprintln(w, r.Output.String())
		return err
	case "json":
		b, err := json.Marshal(r)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(b))
		return err
	default:
		_, err := fmt.Fprintln(w, r.Hex)
		return err
	}
}

func parseSeed(s string) (big.U256, error) {
	return big.ParseU256(strings.TrimSpace(s))
}
