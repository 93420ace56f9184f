package cli

import (
	"fmt"

	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/dto"
	"github.com/spf13/cobra"
)

func newCompaniesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companies",
		Short: "List and select companies",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your companies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.session(cmd.Context())
			if err != nil {
				return err
			}
			companies, err := app.Services.Company.ListCompanies(cmd.Context(), session)
			if err != nil {
				return err
			}
			if len(companies) == 0 {
				app.printInfof("No companies yet")
				return nil
			}
			app.println(headerStyle.Render(fmt.Sprintf("  %-36s  %-30s  %s", "ID", "NAME", "ROLE")))
			for _, c := range companies {
				marker := " "
				if c.CompanyID == session.CompanyID {
					marker = successStyle.Render("*")
				}
				app.println(fmt.Sprintf("%s %-36s  %-30s  %s", marker, c.CompanyID, c.Name, mutedStyle.Render(string(c.Role))))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "use <company-id>",
		Short: "Select the company subsequent commands act on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.session(cmd.Context())
			if err != nil {
				return err
			}
			updated, err := app.Services.Company.SelectCompany(cmd.Context(), session, args[0])
			if err != nil {
				return err
			}
			app.printSuccess(fmt.Sprintf("Using %s", updated.CompanyName))
			return nil
		},
	})

	return cmd
}

func newAccountsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Browse the chart of accounts",
	}

	var params dto.ListAccountsParams
	var accountType, kind, side string
	var all bool

	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts of the selected company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.companySession(cmd.Context())
			if err != nil {
				return err
			}
			params.AccountType = domain.AccountType(accountType)
			params.Kind = domain.EntryKind(kind)
			params.Side = domain.Side(side)
			params.ActiveOnly = !all

			accounts, err := app.Services.Account.ListAccounts(cmd.Context(), session, params)
			if err != nil {
				return err
			}
			app.println(headerStyle.Render(fmt.Sprintf("%-36s  %-8s  %-30s  %s", "ID", "CODE", "NAME", "TYPE")))
			for _, a := range accounts {
				line := fmt.Sprintf("%-36s  %-8s  %-30s  %s", a.AccountID, a.Code, a.Name, a.AccountType)
				if !a.IsActive {
					line = mutedStyle.Render(line + " (inactive)")
				}
				app.println(line)
			}
			return nil
		},
	}
	list.Flags().StringVar(&accountType, "type", "", "only accounts of this type (ASSET, LIABILITY, EQUITY, REVENUE, EXPENSE)")
	list.Flags().StringVar(&kind, "kind", "", "only accounts an entry kind allows, requires --side")
	list.Flags().StringVar(&side, "side", "", "line side for --kind (DEBIT or CREDIT)")
	list.Flags().BoolVar(&all, "all", false, "include inactive accounts")

	cmd.AddCommand(list)
	return cmd
}
