package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// The server wires Postgres implementations, mma_cli wires the bbolt ones.
type RepositoryProvider struct {
	SessionRepo SessionRepositoryFacade
	DraftRepo   DraftRepositoryFacade
}
