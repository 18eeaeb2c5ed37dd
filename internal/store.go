package internal

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/learntoride/ltr/internal/database"
	"github.com/learntoride/ltr/internal/trick"
)

type (
	// dataOrchestrator links the 'dumb' data stores with the database
	// manager, providing the database instance to each call. Controllers
	// only ever see this layer, never a database handle.
	dataOrchestrator struct {
		db         database.Manager
		TrickStore *trick.Store
	}
)

func NewDataOrchestrator(db database.Manager) *dataOrchestrator {
	return &dataOrchestrator{
		db:         db,
		TrickStore: trick.NewStore(),
	}
}

func (rel *dataOrchestrator) ListTricks() ([]*trick.Trick, error) {
	return rel.TrickStore.List(rel.db.GetSqlxDb())
}

func (rel *dataOrchestrator) GetTrick(trickId uuid.UUID) (*trick.Trick, error) {
	return rel.TrickStore.Get(rel.db.GetSqlxDb(), trickId)
}

// CreateTrick persists the trick transactionally: the insert and the
// read-back of server-assigned columns either both land or neither does.
func (rel *dataOrchestrator) CreateTrick(t *trick.Trick) error {
	return rel.db.WrapTx(func(tx *sqlx.Tx) error {
		return rel.TrickStore.Create(tx, t)
	})
}

func (rel *dataOrchestrator) UpdateTrickDetails(trickId uuid.UUID, title string, notes *string, tags trick.Tags) (*trick.Trick, error) {
	var updated *trick.Trick
	err := rel.db.WrapTx(func(tx *sqlx.Tx) error {
		var err error
		updated, err = rel.TrickStore.UpdateDetails(tx, trickId, title, notes, tags)
		return err
	})

	return updated, err
}

func (rel *dataOrchestrator) DeleteTrick(trickId uuid.UUID) error {
	return rel.TrickStore.Delete(rel.db.GetSqlxDb(), trickId)
}
