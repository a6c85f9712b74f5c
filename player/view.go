package player

import (
	"github.com/samber/lo"

	"previewfm/blueprint"
)

// Card is one clickable tile. Index points back into the queue for track
// cards; featured-playlist cards carry a PlaylistID instead (Index -1).
type Card struct {
	Index      int
	PlaylistID string
	Title      string
	Subtitle   string
	Image      string
}

// Page is the full set of render instructions for the view layer. It is pure
// data; the event layer maps clicks back onto App and Controller calls.
type Page struct {
	Hits            []Card
	Featured        []Card
	Artists         []Card
	Releases        []Card
	HitsMessage     string
	FeaturedMessage string
}

// display caps from the layout: eight hit tiles, six featured tiles.
const (
	hitsDisplayLimit     = 8
	featuredDisplayLimit = 6
)

// TrackCards maps queue tracks onto cards, capped at limit. Card indices are
// queue indices, so clicks can dispatch straight to SelectIndex.
func TrackCards(tracks []blueprint.Track, limit int) []Card {
	if limit > 0 && len(tracks) > limit {
		tracks = tracks[:limit]
	}
	return lo.Map(tracks, func(t blueprint.Track, i int) Card {
		return Card{Index: i, Title: t.Title, Subtitle: t.Artist, Image: t.Cover}
	})
}

// PlaylistCards maps featured playlists onto cards, capped at limit.
func PlaylistCards(playlists []blueprint.PlaylistSummary, limit int) []Card {
	if limit > 0 && len(playlists) > limit {
		playlists = playlists[:limit]
	}
	return lo.Map(playlists, func(p blueprint.PlaylistSummary, _ int) Card {
		return Card{Index: -1, PlaylistID: p.ID, Title: p.Name, Subtitle: p.Description, Image: p.Image}
	})
}

// FillerRows derives the artists/releases rows from whatever is currently
// queued: tracks 1-3 fill the artists row, tracks 0-1 the releases row.
// Purely cosmetic; no network involved.
func FillerRows(tracks []blueprint.Track) (artists, releases []Card) {
	if len(tracks) >= 3 {
		end := 4
		if len(tracks) < end {
			end = len(tracks)
		}
		artists = lo.Map(tracks[1:end], func(t blueprint.Track, i int) Card {
			return Card{Index: i + 1, Title: t.Title, Subtitle: t.Artist, Image: t.Cover}
		})
	}
	if len(tracks) >= 2 {
		releases = lo.Map(tracks[0:2], func(t blueprint.Track, i int) Card {
			return Card{Index: i, Title: t.Title, Subtitle: t.Artist, Image: t.Cover}
		})
	}
	return artists, releases
}
