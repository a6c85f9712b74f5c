package player

import (
	"context"

	"go.uber.org/zap"

	"previewfm/blueprint"
)

// Config is the client-side configuration: where the proxy lives, which
// playlist to try first, and the ordered backup searches.
type Config struct {
	APIBase           string
	DefaultPlaylistID string
	FallbackQueries   []string
	InitialVolume     float64
}

// DefaultConfig mirrors the shipped frontend defaults.
func DefaultConfig() *Config {
	return &Config{
		APIBase:           defaultAPIBase,
		DefaultPlaylistID: "37i9dQZF1DXcBWIGoYBM5M", // Today's Top Hits
		FallbackQueries: []string{
			"The Weeknd Blinding Lights",
			"Dua Lipa Levitating",
			"Billie Eilish bad guy",
			"Ed Sheeran Shape of You",
			"Imagine Dragons Believer",
		},
		InitialVolume: 1,
	}
}

// App wires the catalog client, the player controller and the rendered page
// together. A single goroutine is expected to drive it, matching the
// browser's event loop; the generation counter guards against a slow
// queue-replacing load clobbering a newer one.
type App struct {
	Client Catalog
	Player *Controller
	Config *Config
	Logger *zap.Logger
	Page   Page
	// Alert surfaces blocking user-facing messages; defaults to logging.
	Alert func(message string)

	generation uint64
}

func NewApp(client Catalog, engine AudioEngine, config *Config, logger *zap.Logger) *App {
	if config == nil {
		config = DefaultConfig()
	}
	app := &App{
		Client: client,
		Player: NewController(engine),
		Config: config,
		Logger: logger,
	}
	app.Alert = func(message string) {
		logger.Warn("[player][app][Alert] " + message)
	}
	return app
}

// Init runs the startup sequence: default playlist (with fallback), featured
// playlists, filler rows, volume. Each step is best-effort; a failed step
// never prevents the next.
func (a *App) Init(ctx context.Context) {
	a.loadDefaultPlaylist(ctx)
	a.loadFeatured(ctx)
	a.refreshFiller()
	a.Player.SetVolume(a.Config.InitialVolume)
}

// beginLoad stamps a new queue-replacing action. commitQueue applies a result
// only while its stamp is still the latest, so a stale response can never
// clobber a newer queue.
func (a *App) beginLoad() uint64 {
	a.generation++
	return a.generation
}

func (a *App) commitQueue(generation uint64, tracks []blueprint.Track) bool {
	if generation != a.generation {
		a.Logger.Warn("[player][app][commitQueue] warning - discarding stale queue result", zap.Uint64("generation", generation))
		return false
	}
	a.Player.ReplaceQueue(tracks)
	a.Page.Hits = TrackCards(tracks, hitsDisplayLimit)
	a.Page.HitsMessage = ""
	return true
}

func (a *App) loadDefaultPlaylist(ctx context.Context) {
	generation := a.beginLoad()
	a.Page.HitsMessage = "Loading songs…"

	detail, err := a.Client.GetPlaylist(ctx, a.Config.DefaultPlaylistID)
	if err == nil && len(detail.Items) > 0 {
		a.commitQueue(generation, detail.Items)
		return
	}
	if err != nil {
		a.Logger.Warn("[player][app][loadDefaultPlaylist] warning - default playlist unavailable, falling back", zap.Error(err))
	}

	tracks := ResolveFallback(ctx, a.Client, a.Config.FallbackQueries, a.Logger)
	if len(tracks) == 0 {
		a.Page.Hits = nil
		a.Page.HitsMessage = "No previews available at the moment."
		return
	}
	a.commitQueue(generation, tracks)
}

func (a *App) loadFeatured(ctx context.Context) {
	playlists, err := a.Client.GetFeatured(ctx)
	if err != nil {
		a.Logger.Warn("[player][app][loadFeatured] warning - could not load featured playlists", zap.Error(err))
		a.Page.FeaturedMessage = "Couldn’t load featured playlists."
		return
	}
	if len(playlists) == 0 {
		a.Page.FeaturedMessage = "No featured playlists."
		return
	}
	a.Page.Featured = PlaylistCards(playlists, featuredDisplayLimit)
	a.Page.FeaturedMessage = ""
}

// SelectFeatured handles a click on a featured-playlist card. The queue is
// replaced wholesale; a playlist with no previewable tracks raises an alert
// and leaves the current queue and cursor untouched.
func (a *App) SelectFeatured(ctx context.Context, playlistID string) {
	generation := a.beginLoad()

	detail, err := a.Client.GetPlaylist(ctx, playlistID)
	if err != nil || len(detail.Items) == 0 {
		if err != nil {
			a.Logger.Warn("[player][app][SelectFeatured] warning - could not load playlist", zap.String("playlist_id", playlistID), zap.Error(err))
		}
		a.Alert("This playlist has no 30-sec previews. Try another one.")
		return
	}

	if a.commitQueue(generation, detail.Items) {
		a.refreshFiller()
	}
}

// SelectTrack dispatches a click on a track card.
func (a *App) SelectTrack(index int) {
	a.Player.SelectIndex(index)
}

// refreshFiller re-derives the filler rows from the live queue.
func (a *App) refreshFiller() {
	a.Page.Artists, a.Page.Releases = FillerRows(a.Player.Queue.Tracks)
}
