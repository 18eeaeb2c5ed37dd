package tricks_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/learntoride/ltr/internal/api/tricks"
	"github.com/learntoride/ltr/internal/trick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	items []*trick.Trick
}

func (stub *stubStore) ListTricks() ([]*trick.Trick, error) { return stub.items, nil }

func (stub *stubStore) GetTrick(trickId uuid.UUID) (*trick.Trick, error) {
	for _, item := range stub.items {
		if item.ID == trickId {
			return item, nil
		}
	}

	return nil, trick.ErrTrickNotFound
}

func strPtr(s string) *string { return &s }

func newStubStore() *stubStore {
	return &stubStore{items: []*trick.Trick{
		{ID: uuid.New(), Title: "Backside 180", Tags: trick.Tags{"BS", "180", "Jumps"}},
		{ID: uuid.New(), Title: "Frontside Boardslide", Tags: trick.Tags{"FS", "Rails"}, ExternalURL: strPtr("https://youtu.be/abc12345678")},
		{ID: uuid.New(), Title: "Method", Tags: trick.Tags{"Grabs", "Jumps"}, URL: strPtr("https://cdn.example.com/tricks/1700-x.gif")},
	}}
}

func performRequest(t *testing.T, store tricks.Store, target string) *httptest.ResponseRecorder {
	t.Helper()

	ec := echo.New()
	tricks.New(store).SetRoutes(ec.Group(""))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	ec.ServeHTTP(rec, req)

	return rec
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []tricks.Dto {
	t.Helper()

	var dtos []tricks.Dto
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dtos))
	return dtos
}

func Test_List(t *testing.T) {
	store := newStubStore()

	t.Run("no filters returns the whole gallery", func(t *testing.T) {
		rec := performRequest(t, store, "/")
		require.Equal(t, http.StatusOK, rec.Code)

		dtos := decodeList(t, rec)
		require.Len(t, dtos, 3)
		assert.Equal(t, "3", rec.Header().Get("X-Total-Count"))
	})

	t.Run("search narrows results", func(t *testing.T) {
		rec := performRequest(t, store, "/?search=boardslide")
		require.Equal(t, http.StatusOK, rec.Code)

		dtos := decodeList(t, rec)
		require.Len(t, dtos, 1)
		assert.Equal(t, "Frontside Boardslide", dtos[0].Title)
		// Total always reflects the unfiltered library.
		assert.Equal(t, "3", rec.Header().Get("X-Total-Count"))
	})

	t.Run("tags require superset match", func(t *testing.T) {
		rec := performRequest(t, store, "/?tags=Jumps,Grabs")
		require.Equal(t, http.StatusOK, rec.Code)

		dtos := decodeList(t, rec)
		require.Len(t, dtos, 1)
		assert.Equal(t, "Method", dtos[0].Title)
	})

	t.Run("trailing comma in tags param ignored", func(t *testing.T) {
		rec := performRequest(t, store, "/?tags=Jumps,")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeList(t, rec), 2)
	})

	t.Run("dtos carry derived rendering hints", func(t *testing.T) {
		rec := performRequest(t, store, "/?search=method")
		dtos := decodeList(t, rec)

		require.Len(t, dtos, 1)
		assert.Equal(t, "gif", dtos[0].Kind)
		assert.Empty(t, dtos[0].Provider)
	})
}

func Test_Tags(t *testing.T) {
	t.Run("vocabulary is union of tags in use", func(t *testing.T) {
		rec := performRequest(t, newStubStore(), "/tags/")
		require.Equal(t, http.StatusOK, rec.Code)

		var dto tricks.TagsDto
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, []string{"180", "BS", "FS", "Grabs", "Jumps", "Rails"}, dto.Tags)
	})

	t.Run("empty library falls back to presets", func(t *testing.T) {
		rec := performRequest(t, &stubStore{}, "/tags/")
		require.Equal(t, http.StatusOK, rec.Code)

		var dto tricks.TagsDto
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, trick.PresetTags, dto.Tags)
	})
}

func Test_Get(t *testing.T) {
	store := newStubStore()

	t.Run("known trick", func(t *testing.T) {
		rec := performRequest(t, store, "/"+store.items[1].ID.String()+"/")
		require.Equal(t, http.StatusOK, rec.Code)

		var dto tricks.Dto
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, store.items[1].ID, dto.ID)
		assert.Equal(t, "external", dto.Kind)
		assert.Equal(t, "youtube", dto.Provider)
		assert.Equal(t, "https://www.youtube.com/embed/abc12345678?autoplay=1", dto.EmbedURL)
	})

	t.Run("unknown trick is 404", func(t *testing.T) {
		rec := performRequest(t, store, "/"+uuid.NewString()+"/")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		rec := performRequest(t, store, "/not-a-uuid/")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
