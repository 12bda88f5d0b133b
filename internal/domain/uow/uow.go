package uow

import (
	"context"

	"fieldops-backend/internal/domain/visit"
)

type Repos struct {
	Visits      visit.VisitRepository
	ChangeLists visit.ChangeListRepository
}

// UnitOfWork runs fn against repos bound to a single transaction; an error
// from fn rolls back every write made inside it.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
