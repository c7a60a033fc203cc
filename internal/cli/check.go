package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/eggcorn/internal/model"
	"github.com/ppiankov/eggcorn/internal/reply"
	"github.com/ppiankov/eggcorn/internal/text"
	"github.com/spf13/cobra"
)

var (
	checkHTML    bool
	checkReply   bool
	checkJSON    bool
	checkCatalog string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [text...]",
	Short: "Check a piece of text for a usage mistake",
	Long: `Check runs text through the mistake catalog and prints the first
mistake found, its correction, explanation and surrounding words.

Text comes from the arguments, or from stdin when no arguments are given.
Lines starting with ">" are treated as quotes and ignored.

Example:
  eggcorn check "I should of known"
  echo "a lot more then that" | eggcorn check --reply
  eggcorn check --html < comment.html --json`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkHTML, "html", false, "input is an HTML comment body")
	checkCmd.Flags().BoolVar(&checkReply, "reply", false, "print the reply the bot would post")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print the result as JSON")
	checkCmd.Flags().StringVar(&checkCatalog, "catalog", "", "YAML rule catalog (default: built-in rules)")
}

// checkOutput is the --json form of a check
type checkOutput struct {
	Found      bool              `json:"found"`
	Correction *model.Correction `json:"correction,omitempty"`
	Reply      string            `json:"reply,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	checker, err := loadChecker(cfg.Catalog, checkCatalog)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	input := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		input = string(data)
	}

	body := text.Prepare(input)
	if checkHTML {
		if body, err = text.PrepareHTML(input); err != nil {
			return fmt.Errorf("parse html: %w", err)
		}
	}

	var out checkOutput
	if m, ok := checker.Check(body); ok {
		out.Found = true
		out.Correction = &model.Correction{
			Rule:        m.Key,
			Context:     m.Context,
			Correction:  m.Correction,
			Explanation: m.Explanation,
		}
		if checkReply {
			out.Reply = reply.Render(*out.Correction, cfg.Output.IncludeFooter)
		}
	}

	w := cmd.OutOrStdout()
	if checkJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if !out.Found {
		_, _ = fmt.Fprintln(w, "No mistake found.")
		return nil
	}

	if checkReply {
		_, _ = fmt.Fprint(w, out.Reply)
		return nil
	}

	_, _ = fmt.Fprintf(w, "Mistake:     %s\n", out.Correction.Rule)
	_, _ = fmt.Fprintf(w, "Correction:  %s\n", out.Correction.Correction)
	_, _ = fmt.Fprintf(w, "Context:     %s\n", out.Correction.Context)
	_, _ = fmt.Fprintf(w, "%s\n", out.Correction.Explanation)
	return nil
}
