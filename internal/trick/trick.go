package trick

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type (
	// Tags is an ordered set of short display labels. Insertion order is
	// preserved for display, and no two tags may be equal (two tags which
	// differ only in case are considered equal).
	Tags []string

	// Trick is the sole domain entity of the library: one catalogued media
	// entry with a title, a tag set, and either an uploaded file (URL) or
	// an external provider link (ExternalURL). The media fields - URL,
	// ExternalURL and ThumbnailURL - are fixed at creation time; editing
	// a trick can only touch the title, notes and tags.
	Trick struct {
		ID           uuid.UUID  `db:"id"`
		Title        string     `db:"title"`
		URL          *string    `db:"url"`
		ExternalURL  *string    `db:"external_url"`
		ThumbnailURL *string    `db:"thumbnail_url"`
		Tags         Tags       `db:"tags"`
		Notes        *string    `db:"notes"`
		CreatedAt    time.Time  `db:"created_at"`
		UpdatedAt    time.Time  `db:"updated_at"`
	}
)

// Has returns whether the tag set contains the (exact) tag provided.
func (tags Tags) Has(tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}

	return false
}

// ContainsAll returns whether this tag set is a superset of the
// provided tags. An empty argument is trivially contained.
func (tags Tags) ContainsAll(other []string) bool {
	for _, t := range other {
		if !tags.Has(t) {
			return false
		}
	}

	return true
}

// WithCustom normalises a free-text tag (trimmed, uppercased) and returns
// a new tag set with it appended. The second return indicates whether the
// tag was actually added: blank input, or a tag already present in the set
// (compared case-insensitively), leaves the set untouched.
func (tags Tags) WithCustom(raw string) (Tags, bool) {
	normalised := strings.ToUpper(strings.TrimSpace(raw))
	if normalised == "" {
		return tags, false
	}

	for _, t := range tags {
		if strings.EqualFold(t, normalised) {
			return tags, false
		}
	}

	out := make(Tags, len(tags), len(tags)+1)
	copy(out, tags)
	return append(out, normalised), true
}

// NewTags reconciles an admin's tag selection into a well-formed tag set.
// Selected tags (typically drawn from the preset vocabulary) are kept as
// given, minus blanks and case-insensitive duplicates; free-text custom
// tags are then folded in via WithCustom.
func NewTags(selected []string, custom []string) Tags {
	out := make(Tags, 0, len(selected)+len(custom))
	for _, tag := range selected {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}

		duplicate := false
		for _, existing := range out {
			if strings.EqualFold(existing, tag) {
				duplicate = true
				break
			}
		}

		if !duplicate {
			out = append(out, tag)
		}
	}

	for _, tag := range custom {
		out, _ = out.WithCustom(tag)
	}

	return out
}

// Value implements driver.Valuer so the tag set can be persisted
// to a Postgres TEXT[] column.
func (tags Tags) Value() (driver.Value, error) {
	return pq.StringArray(tags).Value()
}

// Scan implements sql.Scanner for reading the tag set back out of
// a Postgres TEXT[] column.
func (tags *Tags) Scan(src interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}

	*tags = Tags(arr)
	return nil
}
