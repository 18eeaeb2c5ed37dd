package thumbnail_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/learntoride/ltr/internal/thumbnail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_YouTubeVideoID(t *testing.T) {
	tests := []struct {
		summary    string
		url        string
		expectedID string
		expectedOk bool
	}{
		{"watch link", "https://www.youtube.com/watch?v=abc12345678", "abc12345678", true},
		{"short link", "https://youtu.be/abc12345678", "abc12345678", true},
		{"id with dash and underscore", "https://youtu.be/a-b_c1234D5", "a-b_c1234D5", true},
		{"id too short", "https://www.youtube.com/watch?v=short", "", false},
		{"not youtube", "https://vimeo.com/12345", "", false},
	}

	for _, test := range tests {
		t.Run(test.summary, func(t *testing.T) {
			id, ok := thumbnail.YouTubeVideoID(test.url)
			assert.Equal(t, test.expectedOk, ok)
			assert.Equal(t, test.expectedID, id)
		})
	}
}

func Test_VimeoVideoID(t *testing.T) {
	id, ok := thumbnail.VimeoVideoID("https://vimeo.com/987654")
	assert.True(t, ok)
	assert.Equal(t, "987654", id)

	_, ok = thumbnail.VimeoVideoID("https://youtu.be/abc12345678")
	assert.False(t, ok)
}

func Test_Resolve_YouTube(t *testing.T) {
	// YouTube thumbnails are derived offline, no network involved.
	resolver := thumbnail.NewResolver(thumbnail.Config{})

	thumb, err := resolver.Resolve(context.Background(), "https://www.youtube.com/watch?v=abc12345678")
	require.NoError(t, err)
	assert.Equal(t, "https://img.youtube.com/vi/abc12345678/hqdefault.jpg", thumb)
}

func Test_Resolve_Vimeo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/video/987654.json", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"thumbnail_large": "https://i.vimeocdn.com/video/987654_640.jpg"}]`))
	}))
	defer srv.Close()

	resolver := thumbnail.NewResolver(thumbnail.Config{VimeoApiBaseUrl: srv.URL})

	thumb, err := resolver.Resolve(context.Background(), "https://vimeo.com/987654")
	require.NoError(t, err)
	assert.Equal(t, "https://i.vimeocdn.com/video/987654_640.jpg", thumb)
}

func Test_Resolve_VimeoFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	resolver := thumbnail.NewResolver(thumbnail.Config{VimeoApiBaseUrl: srv.URL})

	_, err := resolver.Resolve(context.Background(), "https://vimeo.com/987654")
	assert.Error(t, err)
}

func Test_Resolve_UnrecognisedLink(t *testing.T) {
	resolver := thumbnail.NewResolver(thumbnail.Config{})

	thumb, err := resolver.Resolve(context.Background(), "https://example.com/not-a-provider")
	require.NoError(t, err)
	assert.Empty(t, thumb)
}
