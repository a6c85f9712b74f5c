package spotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"previewfm/blueprint"
)

// newCatalogServer serves the token endpoint plus a catalog handler, and
// points the service's env-configured bases at itself.
func newCatalogServer(t *testing.T, apiCalls *int, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"test-token","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		*apiCalls++
		handler(w, r)
	})
	server := httptest.NewServer(mux)
	t.Setenv("SPOTIFY_TOKEN_URL", server.URL+"/oauth/token")
	t.Setenv("SPOTIFY_API_BASE", server.URL)
	return server
}

func newTestService() *Service {
	return NewService(testCredentials(), zap.NewNop())
}

func TestGetPlaylistDetailFiltersUnplayableTracks(t *testing.T) {
	apiCalls := 0
	server := newCatalogServer(t, &apiCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/playlists/37i9dQZF1DXcBWIGoYBM5M", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "Today's Top Hits",
			"tracks": {"items": [
				{"track": null},
				{"track": {"id": "t1", "name": "No Preview", "preview_url": "", "artists": [{"name": "A"}], "album": {"images": []}}},
				{"track": {"id": "t2", "name": "Blinding Lights", "preview_url": "https://p.scdn.co/t2", "artists": [{"name": "The Weeknd"}, {"name": "Guest"}], "album": {"images": [{"url": "https://i.scdn.co/c2"}]}}}
			]}
		}`))
	})
	defer server.Close()

	detail, err := newTestService().GetPlaylistDetail(context.Background(), "37i9dQZF1DXcBWIGoYBM5M")
	require.NoError(t, err)

	assert.Equal(t, "Today's Top Hits", detail.Name)
	require.Len(t, detail.Items, 1)
	track := detail.Items[0]
	assert.Equal(t, "t2", track.ID)
	assert.Equal(t, "The Weeknd, Guest", track.Artist)
	assert.Equal(t, "https://i.scdn.co/c2", track.Cover)
	for _, item := range detail.Items {
		assert.NotEmpty(t, item.PreviewURL)
	}
}

func TestGetFeaturedMapsFirstImage(t *testing.T) {
	apiCalls := 0
	server := newCatalogServer(t, &apiCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/browse/featured-playlists", r.URL.Path)
		assert.Equal(t, "US", r.URL.Query().Get("country"))
		assert.Equal(t, "8", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"playlists": {"items": [
				{"id": "p1", "name": "Hot Hits", "description": "the hits", "images": [{"url": "https://i.scdn.co/p1"}, {"url": "https://i.scdn.co/p1-small"}]},
				{"id": "p2", "name": "Chill", "description": "", "images": []}
			]}
		}`))
	})
	defer server.Close()

	playlists, err := newTestService().GetFeatured(context.Background())
	require.NoError(t, err)

	require.Len(t, playlists, 2)
	assert.Equal(t, "https://i.scdn.co/p1", playlists[0].Image)
	assert.Equal(t, "", playlists[1].Image)
	assert.Equal(t, "Hot Hits", playlists[0].Name)
}

func TestSearchMapsAndFilters(t *testing.T) {
	apiCalls := 0
	server := newCatalogServer(t, &apiCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Billie Eilish bad guy", r.URL.Query().Get("q"))
		assert.Equal(t, "track", r.URL.Query().Get("type"))
		assert.Equal(t, "8", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tracks": {"items": [
				{"id": "s1", "name": "bad guy", "preview_url": "https://p.scdn.co/s1", "artists": [{"name": "Billie Eilish"}], "album": {"images": [{"url": "https://i.scdn.co/s1"}]}},
				{"id": "s2", "name": "bad guy (live)", "preview_url": "", "artists": [{"name": "Billie Eilish"}], "album": {"images": []}}
			]}
		}`))
	})
	defer server.Close()

	tracks, err := newTestService().Search(context.Background(), "Billie Eilish bad guy")
	require.NoError(t, err)

	require.Len(t, tracks, 1)
	assert.Equal(t, "s1", tracks[0].ID)
	assert.Equal(t, "Billie Eilish", tracks[0].Artist)
}

func TestSearchEmptyQuerySkipsUpstream(t *testing.T) {
	apiCalls := 0
	server := newCatalogServer(t, &apiCalls, func(w http.ResponseWriter, r *http.Request) {
		t.Error("catalog should not be called for an empty query")
	})
	defer server.Close()

	tracks, err := newTestService().Search(context.Background(), "")
	require.NoError(t, err)

	assert.NotNil(t, tracks)
	assert.Empty(t, tracks)
	assert.Equal(t, 0, apiCalls)
}

func TestCatalogErrorsMapToUpstreamCatalogError(t *testing.T) {
	apiCalls := 0
	server := newCatalogServer(t, &apiCalls, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer server.Close()

	service := newTestService()

	_, err := service.GetFeatured(context.Background())
	assert.ErrorIs(t, err, blueprint.EUPSTREAMCATALOG)

	_, err = service.GetPlaylistDetail(context.Background(), "p1")
	assert.ErrorIs(t, err, blueprint.EUPSTREAMCATALOG)

	_, err = service.Search(context.Background(), "anything")
	assert.ErrorIs(t, err, blueprint.EUPSTREAMCATALOG)
}

func TestCatalogMalformedPayload(t *testing.T) {
	apiCalls := 0
	server := newCatalogServer(t, &apiCalls, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`not json at all`))
	})
	defer server.Close()

	_, err := newTestService().GetFeatured(context.Background())
	assert.ErrorIs(t, err, blueprint.EUPSTREAMCATALOG)
}
