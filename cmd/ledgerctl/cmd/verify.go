package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/spf13/cobra"
)

// errUnbalanced makes the command exit non-zero after the report was printed.
var errUnbalanced = errors.New("unbalanced operations found")

var verifyPostingsCmd = &cobra.Command{
	Use:   "verify-postings",
	Short: "List operations whose active postings do not balance",
	Long:  "Prints every operation whose active debits and credits differ. Exits with status 1 when any exist.",
	Args:  cobra.NoArgs,
	RunE:  runVerifyPostings,
}

func runVerifyPostings(cmd *cobra.Command, args []string) error {
	if err := requireTenant(); err != nil {
		return err
	}
	return withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
		groups, err := svc.Posting.VerifyPostings(cmd.Context(), tenantID, operatorUserID)
		if err != nil {
			return err
		}
		if len(groups) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "all operations balance")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "OPERATION\tTRANSACTION\tDEBIT\tCREDIT")
		for _, g := range groups {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", g.OperationID, g.TransactionID, g.Debit.StringFixed(2), g.Credit.StringFixed(2))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		return fmt.Errorf("%w: %d", errUnbalanced, len(groups))
	})
}
