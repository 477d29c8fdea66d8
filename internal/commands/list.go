package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/seedbatch-dev/seedbatch/internal/model"
)

func newListCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the entries in the current batch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(repoDir)
			if err != nil {
				return err
			}
			acc, err := ws.store.Load()
			if err != nil {
				return err
			}

			records := acc.Snapshot()
			if len(records) == 0 {
				fmt.Println("Batch is empty")
				return nil
			}
			printRecords(os.Stdout, records)
			return nil
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")

	return cmd
}

// printRecords writes records as an aligned table followed by a total line.
func printRecords(w io.Writer, records []model.Record) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tACCOUNT\tIFSC\tAMOUNT\tTYPE\tDATE")

	total := decimal.Zero
	for i, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, r.BeneficiaryName, r.AccountNumber, r.IFSC,
			r.Amount.StringFixed(2), r.TransferType, r.TransferDate.Format(model.DateLayout))
		total = total.Add(r.Amount)
	}
	tw.Flush()

	fmt.Fprintf(w, "%d entries, total %s %s\n", len(records), total.StringFixed(2), records[0].Currency)
}
