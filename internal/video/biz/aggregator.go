package biz

import (
	"context"
	"strings"

	"github.com/lk2023060901/yt-scraper-api/internal/video/types"
	"go.uber.org/zap"
)

const (
	// MinResults and MaxResults bound the requested result count
	MinResults = 1
	MaxResults = 500

	// BatchSize is the provider's per-call item limit
	BatchSize = 50
)

// VideoProvider is the remote video platform the aggregator talks to
type VideoProvider interface {
	// SearchVideos returns up to maxResults hits starting at pageToken
	SearchVideos(ctx context.Context, query string, maxResults int, pageToken string) (*types.SearchPage, error)

	// VideoViews looks up view counts for at most BatchSize video IDs
	VideoViews(ctx context.Context, videoIDs []string) (types.StatisticsPatch, error)

	// ChannelSubscribers looks up subscriber counts for at most BatchSize channel IDs
	ChannelSubscribers(ctx context.Context, channelIDs []string) (types.SubscriberPatch, error)
}

// AggregatorUseCase searches videos and enriches them with view and subscriber counts
type AggregatorUseCase struct {
	provider  VideoProvider
	watchHost string
	logger    *zap.Logger
}

// NewAggregatorUseCase creates a new aggregator use case
func NewAggregatorUseCase(provider VideoProvider, watchHost string, logger *zap.Logger) *AggregatorUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AggregatorUseCase{
		provider:  provider,
		watchHost: watchHost,
		logger:    logger,
	}
}

// ValidateRequest checks a query before any remote call is made
func ValidateRequest(query string, maxResults int) error {
	if strings.TrimSpace(query) == "" {
		return ErrInvalidQuery
	}
	if maxResults < MinResults || maxResults > MaxResults {
		return ErrInvalidMaxResults
	}
	return nil
}

// Aggregate runs search, view count and subscriber count phases in order.
// Any provider failure aborts the whole operation; no partial result is returned.
func (uc *AggregatorUseCase) Aggregate(ctx context.Context, query string, maxResults int) ([]*types.EnrichedVideo, error) {
	if err := ValidateRequest(query, maxResults); err != nil {
		return nil, err
	}

	log := uc.logger.With(zap.String("query", query), zap.Int("max_results", maxResults))

	hits, err := uc.search(ctx, query, maxResults)
	if err != nil {
		log.Error("video search failed", zap.Error(err))
		return nil, &AggregationError{Phase: PhaseSearch, Err: err}
	}
	log.Debug("search phase complete", zap.Int("hits", len(hits)))

	if len(hits) == 0 {
		return []*types.EnrichedVideo{}, nil
	}

	views, err := uc.viewCounts(ctx, hits)
	if err != nil {
		log.Error("video statistics lookup failed", zap.Error(err))
		return nil, &AggregationError{Phase: PhaseStatistics, Err: err}
	}
	log.Debug("statistics phase complete", zap.Int("videos", len(views)))

	subscribers, err := uc.subscriberCounts(ctx, hits)
	if err != nil {
		log.Error("channel statistics lookup failed", zap.Error(err))
		return nil, &AggregationError{Phase: PhaseSubscribers, Err: err}
	}
	log.Debug("subscriber phase complete", zap.Int("channels", len(subscribers)))

	videos := make([]*types.EnrichedVideo, len(hits))
	for i, hit := range hits {
		videos[i] = uc.project(hit, views, subscribers)
	}
	return videos, nil
}

// search pages through search results until maxResults hits are collected,
// the provider runs out of pages, or ceil(maxResults/BatchSize) calls were made.
func (uc *AggregatorUseCase) search(ctx context.Context, query string, maxResults int) ([]types.SearchHit, error) {
	maxCalls := (maxResults + BatchSize - 1) / BatchSize
	hits := make([]types.SearchHit, 0, maxResults)
	pageToken := ""

	for calls := 0; len(hits) < maxResults && calls < maxCalls; calls++ {
		page, err := uc.provider.SearchVideos(ctx, query, min(BatchSize, maxResults-len(hits)), pageToken)
		if err != nil {
			return nil, err
		}
		hits = append(hits, page.Hits...)

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}
	return hits, nil
}

func (uc *AggregatorUseCase) viewCounts(ctx context.Context, hits []types.SearchHit) (types.StatisticsPatch, error) {
	ids := make([]string, len(hits))
	for i, hit := range hits {
		ids[i] = hit.VideoID
	}

	patch := types.StatisticsPatch{}
	for _, chunk := range chunk(distinct(ids), BatchSize) {
		part, err := uc.provider.VideoViews(ctx, chunk)
		if err != nil {
			return nil, err
		}
		for id, views := range part {
			patch[id] = views
		}
	}
	return patch, nil
}

func (uc *AggregatorUseCase) subscriberCounts(ctx context.Context, hits []types.SearchHit) (types.SubscriberPatch, error) {
	ids := make([]string, len(hits))
	for i, hit := range hits {
		ids[i] = hit.ChannelID
	}

	patch := types.SubscriberPatch{}
	for _, chunk := range chunk(distinct(ids), BatchSize) {
		part, err := uc.provider.ChannelSubscribers(ctx, chunk)
		if err != nil {
			return nil, err
		}
		for id, subscribers := range part {
			patch[id] = subscribers
		}
	}
	return patch, nil
}

func (uc *AggregatorUseCase) project(hit types.SearchHit, views types.StatisticsPatch, subscribers types.SubscriberPatch) *types.EnrichedVideo {
	video := &types.EnrichedVideo{
		VideoTitle:         hit.Title,
		ChannelName:        hit.ChannelName,
		VideoLink:          types.WatchURL(uc.watchHost, hit.VideoID),
		UploadDate:         hit.PublishedAt,
		Views:              types.Unavailable,
		ChannelSubscribers: types.Unavailable,
	}
	if v, ok := views[hit.VideoID]; ok && v != "" {
		video.Views = v
	}
	if s, ok := subscribers[hit.ChannelID]; ok && s != "" {
		video.ChannelSubscribers = s
	}
	return video
}

// distinct drops empty and repeated IDs, keeping first-seen order
func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func chunk(ids []string, size int) [][]string {
	var chunks [][]string
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
