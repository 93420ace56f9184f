package services

// ServiceContainer holds instances of all the application services.
// It is the entry point handlers and CLI commands use to reach service functionality.
type ServiceContainer struct {
	Auth         AuthSvcFacade
	GoogleOAuth  GoogleOAuthSvcFacade
	Company      CompanySvcFacade
	Account      AccountSvcFacade
	JournalEntry JournalEntrySvcFacade
	Transaction  TransactionSvcFacade
	Draft        DraftSvcFacade
}
