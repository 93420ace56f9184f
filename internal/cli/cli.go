// Package cli implements mma_cli, a terminal client that records journal entries through
// the same services as the web API, keeping its session and drafts in a local bbolt file.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	portssvc "github.com/SscSPs/mma_web/internal/core/ports/services"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// CurrentSession remembers which stored session the CLI is logged in with.
type CurrentSession interface {
	CurrentSessionID() (string, error)
	SetCurrentSessionID(sessionID string) error
}

// App holds what every command needs.
type App struct {
	Services *portssvc.ServiceContainer
	Current  CurrentSession
	Out      io.Writer
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mma_cli",
		Short: "Record double-entry journal entries from the terminal",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newLoginCommand(app),
		newLogoutCommand(app),
		newCompaniesCommand(app),
		newAccountsCommand(app),
		newEntryCommand(app),
		newDraftsCommand(app),
	)
	return rootCmd
}

// session loads the logged-in session.
func (a *App) session(ctx context.Context) (*domain.Session, error) {
	id, err := a.Current.CurrentSessionID()
	if err != nil {
		return nil, errors.New("not logged in, run `mma_cli login` first")
	}
	session, err := a.Services.Auth.Hydrate(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			_ = a.Current.SetCurrentSessionID("")
			return nil, errors.New("session expired, run `mma_cli login` again")
		}
		return nil, err
	}
	return session, nil
}

// companySession loads the session and insists a company is selected.
func (a *App) companySession(ctx context.Context) (*domain.Session, error) {
	session, err := a.session(ctx)
	if err != nil {
		return nil, err
	}
	if !session.HasCompany() {
		return nil, errors.New("no company selected, run `mma_cli companies use <id>` first")
	}
	return session, nil
}

func (a *App) printSuccess(message string) {
	_, _ = fmt.Fprintf(a.Out, "%s %s\n", successStyle.Render(successSymbol), message)
}

func (a *App) printError(message string) {
	_, _ = fmt.Fprintf(a.Out, "%s %s\n", errorStyle.Render(errorSymbol), errorStyle.Render(message))
}

func (a *App) printInfof(format string, args ...any) {
	_, _ = fmt.Fprintf(a.Out, "%s %s\n", infoStyle.Render(infoSymbol), fmt.Sprintf(format, args...))
}

func (a *App) println(line string) {
	_, _ = fmt.Fprintln(a.Out, line)
}
