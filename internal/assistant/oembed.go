package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultOEmbedEndpoint is Spotify's public oEmbed endpoint.
const DefaultOEmbedEndpoint = "https://open.spotify.com/oembed"

// OEmbedClient reads song details from an oEmbed endpoint, which reports the
// track name as "title" and the artist as "author_name".
type OEmbedClient struct {
	endpoint string
	http     *http.Client
}

// NewOEmbedClient creates a client for endpoint, or DefaultOEmbedEndpoint when empty.
func NewOEmbedClient(endpoint string, httpClient *http.Client) *OEmbedClient {
	if endpoint == "" {
		endpoint = DefaultOEmbedEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &OEmbedClient{endpoint: endpoint, http: httpClient}
}

type oEmbedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// SongDetails fetches the title and artist for link.
func (c *OEmbedClient) SongDetails(ctx context.Context, link string) (SongInfo, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return SongInfo{}, ErrEmptyInput
	}
	if u, err := url.Parse(link); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return SongInfo{}, fmt.Errorf("%w: %q is not a URL", ErrFetchFailed, link)
	}

	reqURL := c.endpoint + "?url=" + url.QueryEscape(link)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return SongInfo{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return SongInfo{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return SongInfo{}, fmt.Errorf("%w: status %d: %s", ErrFetchFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var data oEmbedResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&data); err != nil {
		return SongInfo{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if data.Title == "" || data.AuthorName == "" {
		return SongInfo{}, fmt.Errorf("%w: title or author_name", ErrMissingFields)
	}
	return SongInfo{Title: data.Title, Artist: data.AuthorName}, nil
}
