package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tubenotes/tubenotes/pkg/config"
)

const (
	// Response size limit for the watch page and caption XML (10MB)
	maxResponseSize = 10 * 1024 * 1024

	// YouTube serves a reduced watch page to clients without a browser UA,
	// and that variant omits the caption track list.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Sentinel errors for caption fetching.
var (
	ErrNoCaptionTracks     = errors.New("video has no caption tracks")
	ErrLanguageUnavailable = errors.New("no caption track for requested language")
	ErrMalformedCaptions   = errors.New("malformed caption response")
)

// CaptionFragment is one caption cue as served by the timedtext endpoint.
// Text may contain HTML entities; timing fields are carried through unused.
type CaptionFragment struct {
	Text  string
	Start float64
	Dur   float64
}

// captionTrack mirrors the track entries embedded in the watch page.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind,omitempty"`
}

var (
	reCaptionTracks = regexp.MustCompile(`"captionTracks":(\[.*?\])`)
	reTextFragment  = regexp.MustCompile(`(?s)<text start="([0-9.]+)" dur="([0-9.]+)"[^>]*>(.*?)</text>`)
)

// Client fetches caption tracks from YouTube. It scrapes the caption track
// list out of the watch page and downloads the timedtext XML directly; no API
// key is involved.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a caption client using values from the provided config.
func NewClient(cfg *config.YouTubeConfig) *Client {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = "https://www.youtube.com"
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: base,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchCaptions returns the ordered caption fragments for a video. When lang
// is non-empty the matching track is required; when empty the first track
// listed by the watch page (the service default) is used. Fragments are
// returned raw, entities included.
func (c *Client) FetchCaptions(ctx context.Context, videoID, lang string) ([]CaptionFragment, error) {
	tracks, err := c.fetchCaptionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track, err := selectTrack(tracks, lang)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}

	return c.fetchTimedText(ctx, track.BaseURL)
}

// fetchCaptionTracks downloads the watch page and extracts the caption track list.
func (c *Client) fetchCaptionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	watchURL := fmt.Sprintf("%s/watch?v=%s", c.baseURL, url.QueryEscape(videoID))
	body, err := c.get(ctx, watchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch watch page for %s: %w", videoID, err)
	}

	m := reCaptionTracks.FindSubmatch(body)
	if m == nil {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrNoCaptionTracks)
	}

	var tracks []captionTrack
	if err := json.Unmarshal(m[1], &tracks); err != nil {
		return nil, fmt.Errorf("video %s: failed to parse caption track list: %w", videoID, err)
	}
	if len(tracks) == 0 {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrNoCaptionTracks)
	}
	return tracks, nil
}

// selectTrack picks the track for lang, or the first listed track when lang is empty.
func selectTrack(tracks []captionTrack, lang string) (captionTrack, error) {
	if lang == "" {
		return tracks[0], nil
	}
	for _, t := range tracks {
		if t.LanguageCode == lang {
			return t, nil
		}
	}
	return captionTrack{}, fmt.Errorf("%w: %s", ErrLanguageUnavailable, lang)
}

// fetchTimedText downloads and parses the caption XML for a track.
func (c *Client) fetchTimedText(ctx context.Context, trackURL string) ([]CaptionFragment, error) {
	body, err := c.get(ctx, trackURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caption track: %w", err)
	}

	matches := reTextFragment.FindAllSubmatch(body, -1)
	if len(matches) == 0 {
		return nil, ErrMalformedCaptions
	}

	fragments := make([]CaptionFragment, 0, len(matches))
	for _, m := range matches {
		start, _ := strconv.ParseFloat(string(m[1]), 64)
		dur, _ := strconv.ParseFloat(string(m[2]), 64)
		fragments = append(fragments, CaptionFragment{
			Text:  string(m[3]),
			Start: start,
			Dur:   dur,
		})
	}
	return fragments, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
