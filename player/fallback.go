package player

import (
	"context"

	"go.uber.org/zap"

	"previewfm/blueprint"
)

// ResolveFallback assembles a substitute queue by searching each query in
// order and keeping the first playable hit per query. A query that fails or
// comes back empty contributes nothing; the sequence never aborts early.
// It exists because the default playlist can legitimately yield zero playable
// tracks (region licensing), and the backup picks are known-good searches.
func ResolveFallback(ctx context.Context, client Catalog, queries []string, logger *zap.Logger) []blueprint.Track {
	var tracks []blueprint.Track
	for _, query := range queries {
		results, err := client.Search(ctx, query)
		if err != nil {
			logger.Warn("[player][fallback][ResolveFallback] warning - fallback query failed", zap.String("query", query), zap.Error(err))
			continue
		}
		for _, track := range results {
			if track.Playable() {
				tracks = append(tracks, track)
				break
			}
		}
	}
	return tracks
}
