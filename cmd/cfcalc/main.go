// Command cfcalc prints exact continued-fraction terms or decimal digits
// of constants, rationals and simple arithmetic combinations of them.
//
// Examples:
//
//	cfcalc digits sqrt2 -n 40
//	cfcalc digits e add sqrt2
//	cfcalc digits 355/113 -n 20
//	cfcalc terms 25/11
//	cfcalc terms sqrt2 div 2 -n 12
package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/confrac/cf"
)

var count int

func main() {
	root := &cobra.Command{
		Use:   "cfcalc",
		Short: "exact continued-fraction calculator",
		Long: `cfcalc evaluates continued-fraction arithmetic without rounding.

Values are sqrt2, e, phi, integers, or rationals written p/q. A value may
stand alone or be combined with a second one through add, sub, mul or div.

Output is always bounded by --count: some expressions (for instance
"sqrt2 mul sqrt2") sit exactly on a term boundary and can compute forever
if asked for more precision than their inputs can ever settle.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().IntVarP(&count, "count", "n", 30, "terms or characters to print")
	root.AddCommand(newDigitsCmd(), newTermsCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newDigitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digits <value> [add|sub|mul|div <value>]",
		Short: "print the decimal expansion",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseExpr(args)
			if err != nil {
				return err
			}
			s, err := x.DecimalString(count)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newTermsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terms <value> [add|sub|mul|div <value>]",
		Short: "print leading continued-fraction terms",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseExpr(args)
			if err != nil {
				return err
			}
			ts := x.FirstTerms(count)
			if len(ts) == 0 {
				return cf.ErrUndefined
			}
			parts := make([]string, len(ts))
			for i, t := range ts {
				parts[i] = t.String()
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			return nil
		},
	}
}

func parseExpr(args []string) (cf.CF, error) {
	x, err := parseValue(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return x, nil
	}
	if len(args) != 3 {
		return nil, fmt.Errorf("want <value> or <value> <op> <value>, got %d arguments", len(args))
	}
	y, err := parseValue(args[2])
	if err != nil {
		return nil, err
	}
	switch args[1] {
	case "add":
		return x.Add(y), nil
	case "sub":
		return x.Sub(y), nil
	case "mul":
		return x.Mul(y), nil
	case "div":
		return x.Div(y), nil
	default:
		return nil, fmt.Errorf("unknown operator %q: want add, sub, mul or div", args[1])
	}
}

func parseValue(s string) (cf.CF, error) {
	switch strings.ToLower(s) {
	case "sqrt2":
		return cf.Sqrt2(), nil
	case "e":
		return cf.E(), nil
	case "phi":
		return cf.Phi(), nil
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("cannot parse value %q: want sqrt2, e, phi, an integer or p/q", s)
	}
	return cf.FromRat(r), nil
}
