package service

// DefaultMaxResults applies when max_results is omitted
const DefaultMaxResults = 100

// SearchRequest query parameters of /search
type SearchRequest struct {
	Query      string `form:"query" binding:"required"`
	MaxResults *int   `form:"max_results" binding:"omitempty,min=1,max=500"`
}

// DownloadRequest query parameters of /download
type DownloadRequest struct {
	SearchRequest
	Filename string `form:"filename" binding:"omitempty,max=255"`
}

func (r *SearchRequest) maxResults() int {
	if r.MaxResults == nil {
		return DefaultMaxResults
	}
	return *r.MaxResults
}
