package main

import (
	"context"
	"fmt"
	"os"

	"previewfm/logger"
	"previewfm/player"
)

// Headless demo client: runs the full init sequence against a running proxy
// and prints the rendered page plus the loaded track.
func main() {
	zapLogger := logger.NewLogger()
	defer func() {
		_ = zapLogger.Sync()
	}()

	config := player.DefaultConfig()
	if base := os.Getenv("API_BASE"); base != "" {
		config.APIBase = base
	}
	if id := os.Getenv("DEFAULT_PLAYLIST_ID"); id != "" {
		config.DefaultPlaylistID = id
	}

	client := player.NewAPIClient(config.APIBase)
	app := player.NewApp(client, player.NewStubEngine(), config, zapLogger)
	app.Alert = func(message string) {
		fmt.Println("! " + message)
	}

	app.Init(context.Background())

	printRow("Today's biggest hits", app.Page.Hits, app.Page.HitsMessage)
	printRow("Featured playlists", app.Page.Featured, app.Page.FeaturedMessage)
	printRow("Popular artists", app.Page.Artists, "")
	printRow("New releases", app.Page.Releases, "")

	if track := app.Player.NowPlaying(); track != nil {
		fmt.Printf("\nLoaded: %s — %s [%s/%s]\n", track.Title, track.Artist, app.Player.Elapsed(), app.Player.Total())
	}
}

func printRow(title string, cards []player.Card, message string) {
	fmt.Println("\n" + title)
	if message != "" {
		fmt.Println("  " + message)
		return
	}
	if len(cards) == 0 {
		fmt.Println("  (empty)")
		return
	}
	for _, card := range cards {
		fmt.Printf("  - %s — %s\n", card.Title, card.Subtitle)
	}
}
