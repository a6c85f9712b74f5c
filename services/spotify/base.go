package spotify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/vicanso/go-axios"
	"go.uber.org/zap"

	"previewfm/blueprint"
)

const defaultAPIBase = "https://api.spotify.com/v1"

// upstream limits: the layout shows at most 8 hits/featured tiles and a
// playlist page is capped at 50 tracks.
const (
	featuredLimit  = 8
	playlistLimit  = 50
	searchLimit    = 8
	defaultCountry = "US"
)

// Service is the authenticated read-only slice of the catalog API. Every
// track it returns carries a preview URL, so downstream consumers never have
// to re-check playability.
type Service struct {
	TokenCache *TokenCache
	Logger     *zap.Logger
}

func NewService(credentials *blueprint.IntegrationCredentials, logger *zap.Logger) *Service {
	return &Service{
		TokenCache: NewTokenCache(credentials, logger),
		Logger:     logger,
	}
}

func apiBase() string {
	if base := os.Getenv("SPOTIFY_API_BASE"); base != "" {
		return base
	}
	return defaultAPIBase
}

func country() string {
	if c := os.Getenv("SPOTIFY_COUNTRY"); c != "" {
		return c
	}
	return defaultCountry
}

// get performs one authenticated GET against the catalog API and deserializes
// the payload into out.
func (s *Service) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	token, err := s.TokenCache.GetToken(ctx)
	if err != nil {
		return err
	}

	instance := axios.NewInstance(&axios.InstanceConfig{
		BaseURL: apiBase(),
		Headers: map[string][]string{
			"Authorization": {"Bearer " + token},
			"Content-Type":  {"application/json"},
		},
	})

	resp, err := instance.Get(path, params)
	if err != nil {
		s.Logger.Error("[services][spotify][base][get] error - could not fetch from catalog", zap.String("path", path), zap.Error(err))
		return blueprint.EUPSTREAMCATALOG
	}

	if resp.Status < http.StatusOK || resp.Status >= http.StatusMultipleChoices {
		s.Logger.Error("[services][spotify][base][get] error - catalog returned non-2xx", zap.String("path", path), zap.Int("status", resp.Status))
		return blueprint.EUPSTREAMCATALOG
	}

	if err := json.Unmarshal(resp.Data, out); err != nil {
		s.Logger.Error("[services][spotify][base][get] error - could not deserialize catalog payload", zap.String("path", path), zap.Error(err))
		return blueprint.EUPSTREAMCATALOG
	}
	return nil
}

func mapTrack(t *TrackObject) blueprint.Track {
	cover := ""
	if len(t.Album.Images) > 0 {
		cover = t.Album.Images[0].URL
	}
	names := lo.Map(t.Artists, func(artist Artist, _ int) string {
		return artist.Name
	})
	return blueprint.Track{
		ID:         t.ID,
		Title:      t.Name,
		Artist:     strings.Join(names, ", "),
		Cover:      cover,
		PreviewURL: t.PreviewURL,
	}
}

// GetFeatured fetches the featured playlists for the configured region and
// maps them to summaries.
func (s *Service) GetFeatured(ctx context.Context) ([]blueprint.PlaylistSummary, error) {
	params := url.Values{}
	params.Set("country", country())
	params.Set("limit", strconv.Itoa(featuredLimit))

	var out FeaturedPlaylistsResponse
	if err := s.get(ctx, "/browse/featured-playlists", params, &out); err != nil {
		return nil, err
	}

	summaries := make([]blueprint.PlaylistSummary, 0, len(out.Playlists.Items))
	for _, item := range out.Playlists.Items {
		image := ""
		if len(item.Images) > 0 {
			image = item.Images[0].URL
		}
		summaries = append(summaries, blueprint.PlaylistSummary{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Image:       image,
		})
	}
	return summaries, nil
}

// GetPlaylistDetail fetches a playlist's name and tracks. Null track entries
// are dropped and tracks without a preview URL are filtered out, so every
// returned item is playable.
func (s *Service) GetPlaylistDetail(ctx context.Context, id string) (*blueprint.PlaylistDetail, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(playlistLimit))

	var out PlaylistResponse
	if err := s.get(ctx, "/playlists/"+id, params, &out); err != nil {
		return nil, err
	}

	items := make([]blueprint.Track, 0, len(out.Tracks.Items))
	for _, item := range out.Tracks.Items {
		// deleted or region-blocked entries come back as null tracks
		if item.Track == nil {
			continue
		}
		track := mapTrack(item.Track)
		if !track.Playable() {
			continue
		}
		items = append(items, track)
	}
	return &blueprint.PlaylistDetail{Name: out.Name, Items: items}, nil
}

// Search looks up track matches for a query. An empty query is not an error:
// it returns an empty list without touching upstream, not even a token fetch.
func (s *Service) Search(ctx context.Context, query string) ([]blueprint.Track, error) {
	if query == "" {
		return []blueprint.Track{}, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", strconv.Itoa(searchLimit))

	var out SearchResponse
	if err := s.get(ctx, "/search", params, &out); err != nil {
		return nil, err
	}

	tracks := lo.FilterMap(out.Tracks.Items, func(t TrackObject, _ int) (blueprint.Track, bool) {
		track := mapTrack(&t)
		return track, track.Playable()
	})
	return tracks, nil
}
