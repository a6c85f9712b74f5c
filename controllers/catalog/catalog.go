package catalog

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"previewfm/blueprint"
	"previewfm/util"
)

// Service is the slice of the catalog proxy the handlers need. The concrete
// implementation lives in services/spotify; tests plug in fakes.
type Service interface {
	GetFeatured(ctx context.Context) ([]blueprint.PlaylistSummary, error)
	GetPlaylistDetail(ctx context.Context, id string) (*blueprint.PlaylistDetail, error)
	Search(ctx context.Context, query string) ([]blueprint.Track, error)
}

// Controller serves the public read-only catalog endpoints. No authentication
// is required from the frontend; the credentials live server-side only.
type Controller struct {
	Service Service
	Logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{Service: service, Logger: logger}
}

// GetFeatured handles GET /api/featured
func (c *Controller) GetFeatured(ctx *fiber.Ctx) error {
	playlists, err := c.Service.GetFeatured(ctx.Context())
	if err != nil {
		c.Logger.Error("[controllers][catalog][GetFeatured] error - could not load featured playlists", zap.Error(err))
		return util.ErrorResponse(ctx, http.StatusInternalServerError, "Failed to load featured playlists")
	}
	return ctx.Status(http.StatusOK).JSON(playlists)
}

// GetPlaylist handles GET /api/playlist/:id
func (c *Controller) GetPlaylist(ctx *fiber.Ctx) error {
	playlistID := ctx.Params("id")
	detail, err := c.Service.GetPlaylistDetail(ctx.Context(), playlistID)
	if err != nil {
		c.Logger.Error("[controllers][catalog][GetPlaylist] error - could not load playlist", zap.String("playlist_id", playlistID), zap.Error(err))
		return util.ErrorResponse(ctx, http.StatusInternalServerError, "Failed to load playlist")
	}
	return ctx.Status(http.StatusOK).JSON(detail)
}

// Search handles GET /api/search. An empty q is answered locally with an
// empty result set instead of bothering upstream.
func (c *Controller) Search(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if query == "" {
		return ctx.Status(http.StatusOK).JSON(blueprint.SearchResult{Items: []blueprint.Track{}})
	}

	items, err := c.Service.Search(ctx.Context(), query)
	if err != nil {
		c.Logger.Error("[controllers][catalog][Search] error - search failed", zap.String("query", query), zap.Error(err))
		return util.ErrorResponse(ctx, http.StatusInternalServerError, "Search failed")
	}
	return ctx.Status(http.StatusOK).JSON(blueprint.SearchResult{Items: items})
}
