package biz

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuery search query is empty
	ErrInvalidQuery = errors.New("search query is required")

	// ErrInvalidMaxResults max results outside the accepted range
	ErrInvalidMaxResults = fmt.Errorf("max results must be between %d and %d", MinResults, MaxResults)
)

// Aggregation phases, reported in AggregationError.
const (
	PhaseSearch      = "search"
	PhaseStatistics  = "video statistics"
	PhaseSubscribers = "channel statistics"
)

// AggregationError wraps the first fault that aborted an aggregation
type AggregationError struct {
	Phase string
	Err   error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregation failed during %s: %v", e.Phase, e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}
