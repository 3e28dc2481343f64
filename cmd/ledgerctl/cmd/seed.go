package cmd

import (
	"fmt"

	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/spf13/cobra"
)

var seedAccountsCmd = &cobra.Command{
	Use:   "seed-accounts",
	Short: "Insert the default chart of accounts for a tenant",
	Long:  "Creates the system accounts of the default chart. Accounts whose name already exists are left untouched.",
	Args:  cobra.NoArgs,
	RunE:  runSeedAccounts,
}

func runSeedAccounts(cmd *cobra.Command, args []string) error {
	if err := requireTenant(); err != nil {
		return err
	}
	return withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
		created, err := svc.Account.SeedDefaultAccounts(cmd.Context(), tenantID, operatorUserID)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, a := range created {
			fmt.Fprintf(out, "created %-36s %s (%s)\n", a.AccountID, a.Name, a.Subhead)
		}
		fmt.Fprintf(out, "%d accounts created\n", len(created))
		return nil
	})
}
