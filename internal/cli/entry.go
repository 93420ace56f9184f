package cli

import (
	"errors"
	"fmt"

	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/dto"
	"github.com/SscSPs/mma_web/internal/utils/accounting"
	"github.com/spf13/cobra"
)

var errInvalidEntry = errors.New("entry is not valid")

func newEntryCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Check and submit journal entries written as YAML files",
	}
	cmd.AddCommand(newEntryCheckCommand(app), newEntrySubmitCommand(app))
	return cmd
}

func newEntryCheckCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Show the balance and first problem of an entry without submitting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadEntryFile(args[0])
			if err != nil {
				return err
			}
			preview := app.Services.JournalEntry.Preview(cmd.Context(), dto.ValidateJournalRequest{
				Header:      f.header(),
				Lines:       f.lines(),
				RequireDate: true,
			})
			app.printBalance(preview.Balance)
			if preview.Validation != nil {
				app.printValidation(preview.Validation)
				return errInvalidEntry
			}
			app.printSuccess("Entry is valid")
			return nil
		},
	}
}

func newEntrySubmitCommand(app *App) *cobra.Command {
	var kind, draftID string

	cmd := &cobra.Command{
		Use:   "submit <file>",
		Short: "Record an entry with the accounting backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadEntryFile(args[0])
			if err != nil {
				return err
			}
			session, err := app.companySession(cmd.Context())
			if err != nil {
				return err
			}

			req := dto.SubmitJournalRequest{
				Kind:    f.Kind,
				Header:  f.header(),
				Lines:   f.lines(),
				DraftID: draftID,
			}
			if kind != "" {
				req.Kind = domain.EntryKind(kind)
			}

			tx, err := app.Services.JournalEntry.Submit(cmd.Context(), session, req)
			if err != nil {
				var verr *accounting.ValidationError
				if errors.As(err, &verr) {
					app.printValidation(verr)
					return errInvalidEntry
				}
				return err
			}
			app.printSuccess(fmt.Sprintf("Recorded transaction %s (%s)", tx.TransactionID, tx.Amount.StringFixed(2)))
			if draftID != "" {
				app.printInfof("Draft %s removed", draftID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "entry kind, overrides the file (manual, expense, revenue)")
	cmd.Flags().StringVar(&draftID, "draft", "", "draft to delete once the entry is recorded")
	return cmd
}

func (a *App) printBalance(b accounting.Balance) {
	a.println(fmt.Sprintf("%-10s %12s", "Debit", b.TotalDebit.StringFixed(2)))
	a.println(fmt.Sprintf("%-10s %12s", "Credit", b.TotalCredit.StringFixed(2)))
	diff := fmt.Sprintf("%-10s %12s", "Difference", b.Difference.StringFixed(2))
	if b.IsBalanced() {
		a.println(successStyle.Render(diff))
	} else {
		a.println(errorStyle.Render(diff))
	}
}

func (a *App) printValidation(verr *accounting.ValidationError) {
	a.printError(fmt.Sprintf("%s (%s)", verr.Message(), verr.Code))
}
