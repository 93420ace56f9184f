package cli

import (
	"fmt"

	"github.com/SscSPs/mma_web/internal/dto"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDraftsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "Manage locally saved entry drafts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List drafts for the selected company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.companySession(cmd.Context())
			if err != nil {
				return err
			}
			drafts, err := app.Services.Draft.ListDrafts(cmd.Context(), session)
			if err != nil {
				return err
			}
			if len(drafts) == 0 {
				app.printInfof("No drafts")
				return nil
			}
			app.println(headerStyle.Render(fmt.Sprintf("%-36s  %-8s  %-16s  %s", "ID", "KIND", "UPDATED", "DESCRIPTION")))
			for _, d := range drafts {
				app.println(fmt.Sprintf("%-36s  %-8s  %-16s  %s",
					d.DraftID, d.Kind, d.UpdatedAt.Local().Format("2006-01-02 15:04"), d.Header.Description))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <draft-id>",
		Short: "Print a draft as an entry file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.companySession(cmd.Context())
			if err != nil {
				return err
			}
			draft, err := app.Services.Draft.GetDraft(cmd.Context(), session, args[0])
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(entryFileFromDraft(draft))
			if err != nil {
				return err
			}
			_, err = app.Out.Write(out)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <draft-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a draft",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.companySession(cmd.Context())
			if err != nil {
				return err
			}
			if err := app.Services.Draft.DeleteDraft(cmd.Context(), session, args[0]); err != nil {
				return err
			}
			app.printSuccess("Draft deleted")
			return nil
		},
	})

	var draftID string
	save := &cobra.Command{
		Use:   "save <file>",
		Short: "Save an entry file as a draft",
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
			draft, err := app.Services.Draft.SaveDraft(cmd.Context(), session, draftID, dto.SaveDraftRequest{
				Kind:   f.Kind,
				Header: f.header(),
				Lines:  f.lines(),
			})
			if err != nil {
				return err
			}
			app.printSuccess(fmt.Sprintf("Saved draft %s", draft.DraftID))
			return nil
		},
	}
	save.Flags().StringVar(&draftID, "id", "", "overwrite this existing draft")
	cmd.AddCommand(save)

	return cmd
}
