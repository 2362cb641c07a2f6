package system

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/flttx/medi-manage-platform-sub000/config"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/automation"
	"github.com/flttx/medi-manage-platform-sub000/pkg/format"
)

// NewRulesCommand prints the effective automation rules: the keyword
// pricing table in match order and the surgical consumable kit.
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the effective clinical automation rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}

			rules := automation.DefaultPriceRules()
			if len(cfg.Billing.Rules) > 0 {
				rules = rules[:0]
				for _, r := range cfg.Billing.Rules {
					rules = append(rules, automation.PriceRule{Keyword: r.Keyword, Price: r.Price})
				}
			}
			defaultPrice := cfg.Billing.DefaultPrice
			if defaultPrice == 0 {
				defaultPrice = automation.DefaultFlatPrice
			}
			region := format.Region(cfg)

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEYWORD\tPRICE")
			for _, r := range rules {
				fmt.Fprintf(w, "%s\t%s\n", r.Keyword, format.Currency(r.Price, region))
			}
			fmt.Fprintf(w, "(default)\t%s\n", format.Currency(defaultPrice, region))
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Surgical visits also deduct:")
			engine := automation.New(rules, defaultPrice)
			for _, d := range engine.SurgicalKit() {
				fmt.Fprintf(out, "  %s x%d\n", d.ItemID, d.Quantity)
			}
			return nil
		},
	}
}
