package trick

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/learntoride/ltr/internal/thumbnail"
)

// MediaKind describes how a trick's media should be rendered. The checks
// are mutually exclusive and applied in order: an external link always wins,
// then the uploaded file's extension decides between video, gif and image.
type (
	MediaKind string
	Provider  string
)

const (
	KindExternal MediaKind = "external"
	KindVideo    MediaKind = "video"
	KindGif      MediaKind = "gif"
	KindImage    MediaKind = "image"
	KindNone     MediaKind = "none"

	ProviderYouTube Provider = "youtube"
	ProviderVimeo   Provider = "vimeo"
	ProviderNone    Provider = ""

	youtubeEmbedTemplate = "https://www.youtube.com/embed/%s?autoplay=1"
	vimeoEmbedTemplate   = "https://player.vimeo.com/video/%s?autoplay=1"
)

var (
	videoExtPattern = regexp.MustCompile(`(?i)\.(mp4|webm|mov)(\?|$)`)
	gifExtPattern   = regexp.MustCompile(`(?i)\.gif(\?|$)`)
)

// Kind classifies the trick's media for rendering purposes.
func (t *Trick) Kind() MediaKind {
	if t.ExternalURL != nil && *t.ExternalURL != "" {
		return KindExternal
	}

	if t.URL == nil || *t.URL == "" {
		return KindNone
	}

	switch {
	case videoExtPattern.MatchString(*t.URL):
		return KindVideo
	case gifExtPattern.MatchString(*t.URL):
		return KindGif
	default:
		return KindImage
	}
}

// Provider identifies which third party hosts an external trick's video.
func (t *Trick) Provider() Provider {
	if t.ExternalURL == nil {
		return ProviderNone
	}

	switch {
	case strings.Contains(*t.ExternalURL, "youtube") || strings.Contains(*t.ExternalURL, "youtu.be"):
		return ProviderYouTube
	case strings.Contains(*t.ExternalURL, "vimeo"):
		return ProviderVimeo
	default:
		return ProviderNone
	}
}

// EmbedURL derives the provider's embeddable player URL for an external
// trick, used by the lightbox iframe. Empty for non-external tricks and
// for external links whose video id cannot be extracted.
func (t *Trick) EmbedURL() string {
	if t.ExternalURL == nil {
		return ""
	}

	if id, ok := thumbnail.YouTubeVideoID(*t.ExternalURL); ok {
		return fmt.Sprintf(youtubeEmbedTemplate, id)
	}
	if id, ok := thumbnail.VimeoVideoID(*t.ExternalURL); ok {
		return fmt.Sprintf(vimeoEmbedTemplate, id)
	}

	return ""
}
