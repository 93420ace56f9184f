package services

import (
	"github.com/SscSPs/mma_web/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/mma_web/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mma_web/internal/core/ports/services"
	"github.com/SscSPs/mma_web/internal/platform/config"
	"github.com/SscSPs/mma_web/internal/utils"
	"github.com/SscSPs/mma_web/internal/utils/accounting"
)

// NewServiceContainer wires every service from its repositories and the backend client.
// tracker may be nil when analytics is disabled.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	backend gateways.AccountingBackendFacade,
	cipher *utils.TokenCipher,
	kinds *accounting.KindRegistry,
	tracker utils.EventTracker,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewSessionService(cfg, repos.SessionRepo, backend, cipher)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Company = NewCompanyService(backend, repos.SessionRepo, tracker)

	// journal entries check accounts through the account service
	container.Account = NewAccountService(backend, kinds)
	container.JournalEntry = NewJournalEntryService(backend, container.Account, repos.DraftRepo, kinds, tracker)
	container.Transaction = NewTransactionService(backend, tracker)
	container.Draft = NewDraftService(repos.DraftRepo)

	return container
}
