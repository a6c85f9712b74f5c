package player

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/vicanso/go-axios"

	"previewfm/blueprint"
)

const defaultAPIBase = "http://localhost:5050"

// Catalog is the proxy surface the player consumes. APIClient is the real
// implementation; tests substitute fakes.
type Catalog interface {
	GetFeatured(ctx context.Context) ([]blueprint.PlaylistSummary, error)
	GetPlaylist(ctx context.Context, id string) (*blueprint.PlaylistDetail, error)
	Search(ctx context.Context, query string) ([]blueprint.Track, error)
}

// APIClient talks to the proxy's JSON API.
type APIClient struct {
	BaseURL string
}

func NewAPIClient(baseURL string) *APIClient {
	if baseURL == "" {
		baseURL = defaultAPIBase
	}
	return &APIClient{BaseURL: strings.TrimRight(baseURL, "/")}
}

func (c *APIClient) get(path string, params url.Values, out interface{}) error {
	instance := axios.NewInstance(&axios.InstanceConfig{
		BaseURL: c.BaseURL,
		Headers: map[string][]string{
			"Content-Type": {"application/json"},
		},
	})

	resp, err := instance.Get(path, params)
	if err != nil {
		return err
	}
	if resp.Status != http.StatusOK {
		return fmt.Errorf("api: %s returned %d", path, resp.Status)
	}
	return json.Unmarshal(resp.Data, out)
}

func (c *APIClient) GetFeatured(_ context.Context) ([]blueprint.PlaylistSummary, error) {
	var out []blueprint.PlaylistSummary
	if err := c.get("/api/featured", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) GetPlaylist(_ context.Context, id string) (*blueprint.PlaylistDetail, error) {
	var out blueprint.PlaylistDetail
	if err := c.get("/api/playlist/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) Search(_ context.Context, query string) ([]blueprint.Track, error) {
	params := url.Values{}
	params.Set("q", query)

	var out blueprint.SearchResult
	if err := c.get("/api/search", params, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}
