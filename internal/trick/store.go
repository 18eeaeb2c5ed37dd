package trick

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/learntoride/ltr/internal/database"
	"github.com/learntoride/ltr/pkg/logger"
)

var ErrTrickNotFound = errors.New("trick does not exist")

var log = logger.Get("TrickStore")

type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// Create persists a new trick. The id is assigned here and the server
// timestamps come back from the database, so the model provided is
// updated in place to reflect the stored row.
func (store *Store) Create(db database.Queryable, t *Trick) error {
	t.ID = uuid.New()
	if t.Tags == nil {
		// The tags column is non-nullable; an absent set is stored empty.
		t.Tags = Tags{}
	}

	row := struct {
		ID           uuid.UUID `db:"id"`
		Title        string    `db:"title"`
		URL          *string   `db:"url"`
		ExternalURL  *string   `db:"external_url"`
		ThumbnailURL *string   `db:"thumbnail_url"`
		Tags         Tags      `db:"tags"`
		Notes        *string   `db:"notes"`
	}{t.ID, t.Title, t.URL, t.ExternalURL, t.ThumbnailURL, t.Tags, t.Notes}

	if _, err := db.NamedExec(`
		INSERT INTO tricks(id, title, url, external_url, thumbnail_url, tags, notes, created_at, updated_at)
		VALUES (:id, :title, :url, :external_url, :thumbnail_url, :tags, :notes, current_timestamp, current_timestamp)
	`, row); err != nil {
		return fmt.Errorf("failed to insert new trick: %w", err)
	}

	created, err := store.Get(db, t.ID)
	if err != nil {
		return fmt.Errorf("failed to read back created trick: %w", err)
	}

	*t = *created
	return nil
}

// List returns every trick, most recently created first. This is the
// gallery's default ordering, and filtering never re-orders it.
func (store *Store) List(db database.Queryable) ([]*Trick, error) {
	query, args, err := selectTrickBuilder().OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct list tricks query: %w", err)
	}

	var results []Trick
	if err := db.Select(&results, db.Rebind(query), args...); err != nil {
		return nil, err
	}

	output := make([]*Trick, len(results))
	for k := range results {
		output[k] = &results[k]
	}

	return output, nil
}

func (store *Store) Get(db database.Queryable, id uuid.UUID) (*Trick, error) {
	query, args, err := selectTrickBuilder().Where("id=?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct select trick query: %w", err)
	}

	var t Trick
	if err := db.Get(&t, db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrickNotFound
		}

		return nil, err
	}

	return &t, nil
}

// UpdateDetails overwrites the mutable fields of a trick - title, notes
// and tags. The media columns are deliberately untouched: a trick's
// uploaded file or external link is fixed at creation time.
func (store *Store) UpdateDetails(db database.Queryable, id uuid.UUID, title string, notes *string, tags Tags) (*Trick, error) {
	if tags == nil {
		tags = Tags{}
	}

	result, err := db.Exec(`
		UPDATE tricks SET title=$1, notes=$2, tags=$3, updated_at=current_timestamp WHERE id=$4
	`, title, notes, tags, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update trick %s: %w", id, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrTrickNotFound
	}

	return store.Get(db, id)
}

func (store *Store) Delete(db database.Queryable, id uuid.UUID) error {
	result, err := db.Exec(`DELETE FROM tricks WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trick %s: %w", id, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrTrickNotFound
	}

	log.Debugf("Deleted trick %s\n", id)
	return nil
}

func selectTrickBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "title", "url", "external_url", "thumbnail_url", "tags", "notes", "created_at", "updated_at").
		From("tricks")
}
