package blueprint

import "errors"

// perhaps have a different Error type declarations somewhere. For now, be here

var (
	// EUPSTREAMAUTH means the client-credentials grant against the catalog's
	// auth endpoint failed.
	EUPSTREAMAUTH = errors.New("EUPSTREAMAUTH")
	// EUPSTREAMCATALOG means a featured/playlist/search call failed or the
	// payload could not be deserialized.
	EUPSTREAMCATALOG = errors.New("EUPSTREAMCATALOG")
	// ENORESULT means the call succeeded structurally but yielded zero usable items.
	ENORESULT = errors.New("ENORESULT")
)

// Track represents a single playable track as the proxy serves it. Once the
// preview filter has run, every Track carries a non-empty PreviewURL.
type Track struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Cover      string `json:"cover"`
	PreviewURL string `json:"preview_url"`
}

// Playable reports whether the track has a preview clip and is therefore
// eligible for the queue.
func (t Track) Playable() bool {
	return t.PreviewURL != ""
}

// PlaylistSummary is the featured-list view of a playlist. Not itself playable.
type PlaylistSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// PlaylistDetail is a playlist's name plus its previewable tracks, in order.
type PlaylistDetail struct {
	Name  string  `json:"name"`
	Items []Track `json:"items"`
}

// SearchResult wraps track matches for the /api/search response.
type SearchResult struct {
	Items []Track `json:"items"`
}

// IntegrationCredentials holds the app identifier/secret for the catalog platform.
type IntegrationCredentials struct {
	AppID     string `json:"app_id,omitempty"`
	AppSecret string `json:"app_secret,omitempty"`
}

// LoggerOptions carries the per-request metadata attached to sentry breadcrumbs.
type LoggerOptions struct {
	RequestID string
	AddTrace  bool
}
