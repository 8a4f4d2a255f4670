package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/coinchange"
)

func newCoinsCmd(a *app) *cobra.Command {
	var (
		amount float64
		cents  int
		coins  []int
	)

	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Minimum number of coins for an amount",
		Long: "Find the fewest coins that add up to --amount (currency, converted to cents)\n" +
			"or --cents (plain units). Denominations come from --coins or the config.",
		Example: "  dsakit coins --amount 5.75\n  dsakit coins --cents 11 --coins 1,2,5",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			currency := cmd.Flags().Changed("amount")
			target := cents
			if currency {
				c, err := coinchange.ToCents(amount)
				if err != nil {
					return err
				}
				target = c
			}
			if !cmd.Flags().Changed("coins") {
				coins = a.cfg.Coins.Denominations
			}

			res, err := coinchange.Solve(coins, target)
			if err != nil {
				return err
			}
			a.log.Debug().Int("target", target).Ints("coins", coins).Int("count", res.Count).Msg("coin change solved")

			printCoins(cmd.OutOrStdout(), res, currency)

			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "currency amount, e.g. 5.75")
	cmd.Flags().IntVar(&cents, "cents", 0, "target in plain units (cents)")
	cmd.Flags().IntSliceVar(&coins, "coins", nil, "denominations, e.g. 1,5,10 (default from config)")
	cmd.MarkFlagsMutuallyExclusive("amount", "cents")
	cmd.MarkFlagsOneRequired("amount", "cents")

	return cmd
}

// coinLabel renders a cent value as ¢ below one dollar and $ otherwise.
func coinLabel(c int) string {
	if c < 100 {
		return fmt.Sprintf("%d¢", c)
	}
	if c%100 == 0 {
		return fmt.Sprintf("$%d", c/100)
	}

	return fmt.Sprintf("$%d.%02d", c/100, c%100)
}

func printCoins(w io.Writer, res coinchange.Result, currency bool) {
	label := func(c int) string {
		if currency {
			return coinLabel(c)
		}
		return fmt.Sprint(c)
	}

	if !res.Feasible {
		fmt.Fprintf(w, "%s cannot be made from the given coins\n", label(res.Target))
		return
	}

	fmt.Fprintf(w, "minimum coins for %s: %d\n", label(res.Target), res.Count)
	for _, cc := range res.Breakdown() {
		if cc.Count > 0 {
			fmt.Fprintf(w, "  %d x %s\n", cc.Count, label(cc.Coin))
		}
	}
	fmt.Fprintf(w, "total: %s\n", label(res.Total()))
}
