package tricks

import (
	"time"

	"github.com/google/uuid"
	"github.com/learntoride/ltr/internal/trick"
)

type (
	// Dto is the wire representation of a trick. On top of the stored
	// columns it carries the derived rendering hints (kind, provider and
	// embed URL) so clients never have to re-classify media themselves.
	Dto struct {
		ID           uuid.UUID `json:"id"`
		Title        string    `json:"title"`
		URL          *string   `json:"url"`
		ExternalURL  *string   `json:"external_url"`
		ThumbnailURL *string   `json:"thumbnail_url"`
		Tags         []string  `json:"tags"`
		Notes        *string   `json:"notes"`
		Kind         string    `json:"kind"`
		Provider     string    `json:"provider,omitempty"`
		EmbedURL     string    `json:"embed_url,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
	}

	TagsDto struct {
		Tags []string `json:"tags"`
	}
)

func NewDto(model *trick.Trick) Dto {
	tags := model.Tags
	if tags == nil {
		tags = trick.Tags{}
	}

	return Dto{
		ID:           model.ID,
		Title:        model.Title,
		URL:          model.URL,
		ExternalURL:  model.ExternalURL,
		ThumbnailURL: model.ThumbnailURL,
		Tags:         tags,
		Notes:        model.Notes,
		Kind:         string(model.Kind()),
		Provider:     string(model.Provider()),
		EmbedURL:     model.EmbedURL(),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
