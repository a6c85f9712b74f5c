package spotify

const IDENTIFIER = "spotify"

// Payload shapes for the slice of the catalog API this service reads. Only
// the fields we actually map are declared.

type Image struct {
	URL string `json:"url"`
}

type Artist struct {
	Name string `json:"name"`
}

type TrackObject struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PreviewURL string   `json:"preview_url"`
	Artists    []Artist `json:"artists"`
	Album      struct {
		Images []Image `json:"images"`
	} `json:"album"`
}

type FeaturedPlaylistsResponse struct {
	Playlists struct {
		Items []struct {
			ID          string  `json:"id"`
			Name        string  `json:"name"`
			Description string  `json:"description"`
			Images      []Image `json:"images"`
		} `json:"items"`
	} `json:"playlists"`
}

type PlaylistResponse struct {
	Name   string `json:"name"`
	Tracks struct {
		Items []struct {
			Track *TrackObject `json:"track"`
		} `json:"items"`
	} `json:"tracks"`
}

type SearchResponse struct {
	Tracks struct {
		Items []TrackObject `json:"items"`
	} `json:"tracks"`
}
