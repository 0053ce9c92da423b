package data

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lk2023060901/yt-scraper-api/internal/video/biz"
	"github.com/lk2023060901/yt-scraper-api/internal/video/types"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	opSearch   = "search.list"
	opVideos   = "videos.list"
	opChannels = "channels.list"
)

// YouTubeConfig configures the YouTube Data API client
type YouTubeConfig struct {
	APIKey string
	// Endpoint overrides the API base URL, used by tests
	Endpoint string
	Timeout  time.Duration
}

// YouTubeProvider implements biz.VideoProvider on the YouTube Data API v3
type YouTubeProvider struct {
	service *youtube.Service
}

var _ biz.VideoProvider = (*YouTubeProvider)(nil)

// NewYouTubeProvider creates a new YouTube provider
func NewYouTubeProvider(ctx context.Context, cfg YouTubeConfig) (*YouTubeProvider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	// WithHTTPClient disables WithAPIKey, so the key rides on the transport
	opts := []option.ClientOption{
		option.WithHTTPClient(&http.Client{
			Timeout:   timeout,
			Transport: &transport.APIKey{Key: cfg.APIKey, Transport: http.DefaultTransport},
		}),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	return &YouTubeProvider{service: service}, nil
}

// SearchVideos issues one search.list call restricted to videos
func (p *YouTubeProvider) SearchVideos(ctx context.Context, query string, maxResults int, pageToken string) (*types.SearchPage, error) {
	call := p.service.Search.
		List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(maxResults)).
		Context(ctx)

	if pageToken != "" {
		call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		return nil, wrapAPIError(opSearch, err)
	}

	page := &types.SearchPage{
		Hits:          make([]types.SearchHit, 0, len(response.Items)),
		NextPageToken: response.NextPageToken,
	}
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		hit := types.SearchHit{VideoID: item.Id.VideoId}
		if item.Snippet != nil {
			hit.Title = item.Snippet.Title
			hit.ChannelID = item.Snippet.ChannelId
			hit.ChannelName = item.Snippet.ChannelTitle
			hit.PublishedAt = item.Snippet.PublishedAt
		}
		page.Hits = append(page.Hits, hit)
	}

	return page, nil
}

// VideoViews issues one videos.list call for the given IDs
func (p *YouTubeProvider) VideoViews(ctx context.Context, videoIDs []string) (types.StatisticsPatch, error) {
	if len(videoIDs) > biz.BatchSize {
		return nil, tooManyIDs(opVideos, len(videoIDs))
	}

	response, err := p.service.Videos.
		List([]string{"statistics"}).
		Id(strings.Join(videoIDs, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapAPIError(opVideos, err)
	}

	patch := make(types.StatisticsPatch, len(response.Items))
	for _, item := range response.Items {
		if item.Statistics == nil {
			patch[item.Id] = types.Unavailable
			continue
		}
		patch[item.Id] = strconv.FormatUint(item.Statistics.ViewCount, 10)
	}

	return patch, nil
}

// ChannelSubscribers issues one channels.list call for the given IDs.
// Channels hiding their subscriber count report the sentinel.
func (p *YouTubeProvider) ChannelSubscribers(ctx context.Context, channelIDs []string) (types.SubscriberPatch, error) {
	if len(channelIDs) > biz.BatchSize {
		return nil, tooManyIDs(opChannels, len(channelIDs))
	}

	response, err := p.service.Channels.
		List([]string{"statistics"}).
		Id(strings.Join(channelIDs, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapAPIError(opChannels, err)
	}

	patch := make(types.SubscriberPatch, len(response.Items))
	for _, item := range response.Items {
		if item.Statistics == nil || item.Statistics.HiddenSubscriberCount {
			patch[item.Id] = types.Unavailable
			continue
		}
		patch[item.Id] = strconv.FormatUint(item.Statistics.SubscriberCount, 10)
	}

	return patch, nil
}

// wrapAPIError converts a client error into a ProviderError
func tooManyIDs(op string, n int) error {
	return &ProviderError{
		Operation: op,
		Code:      "TOO_MANY_IDS",
		Message:   fmt.Sprintf("%d ids, limit %d", n, biz.BatchSize),
		Err:       ErrTooManyIDs,
	}
}

func wrapAPIError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = http.StatusText(apiErr.Code)
		}
		return &ProviderError{
			Operation: op,
			Code:      fmt.Sprintf("HTTP_%d", apiErr.Code),
			Message:   message,
			Err:       err,
		}
	}

	return &ProviderError{
		Operation: op,
		Code:      "REQUEST_FAILED",
		Message:   "failed to execute request",
		Err:       err,
	}
}
