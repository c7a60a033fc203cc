package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ppiankov/eggcorn/internal/mistake"
	"github.com/spf13/cobra"
)

var (
	rulesCatalog string
	rulesFormat  string
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules [key]",
	Short: "List the mistake catalog in priority order",
	Long: `List every rule of the active catalog in the order it is checked.
Disabled rules (catalog.disabled) are left out.

Use --format yaml to export the catalog as an editable YAML file.
Pass a rule key to show one rule in full.

Example:
  eggcorn rules
  eggcorn rules "should of"
  eggcorn rules --format yaml > catalog.yaml
  eggcorn rules --catalog catalog.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)

	rulesCmd.Flags().StringVar(&rulesCatalog, "catalog", "", "YAML rule catalog (default: catalog.path or built-in rules)")
	rulesCmd.Flags().StringVar(&rulesFormat, "format", "table", "output format (table, yaml)")
}

func runRules(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rules, err := loadRules(cfg.Catalog, rulesCatalog)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	w := cmd.OutOrStdout()
	if len(args) == 1 {
		return showRule(w, rules, args[0])
	}

	switch rulesFormat {
	case "yaml":
		data, err := mistake.MarshalRules(rules)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "table":
	default:
		return fmt.Errorf("unknown format %q", rulesFormat)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Mistake", "Correction", "Exceptions", "Explained"})
	for i, r := range rules {
		explained := ""
		if r.HasExplanation() {
			explained = "yes"
		}
		t.AppendRow(table.Row{i + 1, strconv.Quote(r.MatchString()), r.Correction(), strings.Join(r.Exceptions(), ", "), explained})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d rules", len(rules))})
	t.Render()

	return nil
}

// showRule prints every field of the rule with the given key
func showRule(w io.Writer, rules []mistake.Rule, key string) error {
	checker, err := mistake.NewChecker(rules)
	if err != nil {
		return err
	}

	r, ok := checker.Lookup(strings.TrimSpace(key))
	if !ok {
		return fmt.Errorf("no rule with key %q (see 'eggcorn rules')", key)
	}

	_, _ = fmt.Fprintf(w, "Key:          %s\n", r.Key())
	_, _ = fmt.Fprintf(w, "Match:        %s\n", strconv.Quote(r.MatchString()))
	_, _ = fmt.Fprintf(w, "Correction:   %s\n", r.Correction())
	_, _ = fmt.Fprintf(w, "Exceptions:   %s\n", strings.Join(r.Exceptions(), ", "))
	_, _ = fmt.Fprintf(w, "%s\n", r.Explain())
	return nil
}
