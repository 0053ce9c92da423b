package types

import "net/url"

// Unavailable is reported for a statistic the provider did not return.
const Unavailable = "N/A"

// WatchHost is the host used to build canonical watch links.
const WatchHost = "www.youtube.com"

// SearchHit is one video returned by the search phase. The IDs are only
// needed to join the statistics lookups and never leave the aggregator.
type SearchHit struct {
	VideoID     string
	Title       string
	ChannelID   string
	ChannelName string
	PublishedAt string
}

// SearchPage is a single page of search.list results
type SearchPage struct {
	Hits          []SearchHit
	NextPageToken string
}

// StatisticsPatch maps video ID to view count
type StatisticsPatch map[string]string

// SubscriberPatch maps channel ID to subscriber count
type SubscriberPatch map[string]string

// EnrichedVideo is the public record returned to every consumer
type EnrichedVideo struct {
	VideoTitle         string `json:"video_title"`
	ChannelName        string `json:"channel_name"`
	VideoLink          string `json:"video_link"`
	UploadDate         string `json:"upload_date"`
	Views              string `json:"views"`
	ChannelSubscribers string `json:"channel_subscribers"`
}

// SearchResult is the body of the search endpoint
type SearchResult struct {
	Query        string           `json:"query"`
	TotalResults int              `json:"total_results"`
	Videos       []*EnrichedVideo `json:"videos"`
}

// WatchURL builds https://<host>/watch?v=<videoID>.
func WatchURL(host, videoID string) string {
	if host == "" {
		host = WatchHost
	}
	u := url.URL{
		Scheme:   "https",
		Host:     host,
		Path:     "/watch",
		RawQuery: url.Values{"v": []string{videoID}}.Encode(),
	}
	return u.String()
}
