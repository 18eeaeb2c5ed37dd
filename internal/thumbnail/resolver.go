package thumbnail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/learntoride/ltr/pkg/logger"
)

const (
	youtubeThumbnailTemplate = "https://img.youtube.com/vi/%s/hqdefault.jpg"

	vimeoApiBaseUrl       = "https://vimeo.com/api/v2"
	vimeoMetadataTemplate = "%s/video/%s.json"
)

var (
	log = logger.Get("Thumbnail")

	// Watch pages and short links both carry the stable 11-character video id.
	youtubeUrlPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`)
	vimeoUrlPattern   = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

type (
	Config struct {
		// VimeoApiBaseUrl overrides the metadata endpoint queried for Vimeo
		// links. Zero value means the public Vimeo API; tests point this at
		// a local server.
		VimeoApiBaseUrl string `toml:"vimeo_api_base_url" env:"VIMEO_API_BASE_URL"`
	}

	vimeoMetadata struct {
		ThumbnailLarge string `json:"thumbnail_large"`
	}

	// Resolver derives a thumbnail image URL for an external provider link.
	// YouTube thumbnails are deterministic and derived entirely offline;
	// Vimeo requires one lookup against their public metadata endpoint.
	//
	// Resolution happens exactly once, when a trick is created - a trick's
	// thumbnail is never re-resolved after that.
	Resolver struct {
		config Config
		client *http.Client
	}
)

func NewResolver(config Config) *Resolver {
	if config.VimeoApiBaseUrl == "" {
		config.VimeoApiBaseUrl = vimeoApiBaseUrl
	}

	return &Resolver{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// YouTubeVideoID extracts the 11-character video id from a YouTube
// watch/short-link URL, or returns false if the URL is not recognised.
func YouTubeVideoID(externalUrl string) (string, bool) {
	if match := youtubeUrlPattern.FindStringSubmatch(externalUrl); match != nil {
		return match[1], true
	}

	return "", false
}

// VimeoVideoID extracts the numeric video id from a Vimeo URL, or
// returns false if the URL is not recognised.
func VimeoVideoID(externalUrl string) (string, bool) {
	if match := vimeoUrlPattern.FindStringSubmatch(externalUrl); match != nil {
		return match[1], true
	}

	return "", false
}

// Resolve derives a thumbnail URL for the external link provided. An empty
// result with a nil error means the URL matched no known provider; a non-nil
// error only ever arises from the Vimeo metadata lookup. Callers treat any
// failure as non-fatal - a trick without a thumbnail is perfectly valid.
func (resolver *Resolver) Resolve(ctx context.Context, externalUrl string) (string, error) {
	if id, ok := YouTubeVideoID(externalUrl); ok {
		return fmt.Sprintf(youtubeThumbnailTemplate, id), nil
	}

	if id, ok := VimeoVideoID(externalUrl); ok {
		return resolver.resolveVimeo(ctx, id)
	}

	return "", nil
}

func (resolver *Resolver) resolveVimeo(ctx context.Context, videoId string) (string, error) {
	path := fmt.Sprintf(vimeoMetadataTemplate, resolver.config.VimeoApiBaseUrl, videoId)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}

	resp, err := resolver.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("vimeo metadata request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("vimeo metadata request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// The v2 endpoint wraps the video metadata in a single-element array.
	var metadata []vimeoMetadata
	if err := json.Unmarshal(body, &metadata); err != nil {
		return "", fmt.Errorf("failed to parse vimeo metadata response: %w", err)
	}

	if len(metadata) == 0 || metadata[0].ThumbnailLarge == "" {
		log.Debugf("Vimeo metadata for video %s carries no large thumbnail\n", videoId)
		return "", nil
	}

	return metadata[0].ThumbnailLarge, nil
}
