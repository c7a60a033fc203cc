package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/ppiankov/eggcorn/internal/stats"
	"github.com/spf13/cobra"
)

var statsJSON bool

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show correction and feedback counters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		st, err := stats.NewStore(filepath.Join(cfg.Data.Dir, statsFile)).Snapshot()
		if err != nil {
			return err
		}

		blocklist, err := stats.LoadBlocklist(filepath.Join(cfg.Data.Dir, blocklistFile))
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if statsJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(st)
		}

		_, _ = fmt.Fprintf(w, "Mistakes corrected:  %d\n", st.Mistakes)
		_, _ = fmt.Fprintf(w, "Total runs:          %d\n", st.Runs)
		_, _ = fmt.Fprintf(w, "Good bot:            %d\n", st.Good)
		_, _ = fmt.Fprintf(w, "Bad bot:             %d\n", st.Bad)
		_, _ = fmt.Fprintf(w, "Opted-out users:     %d\n", blocklist.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print the raw stats file")
}
