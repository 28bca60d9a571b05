package repository

import (
	"fmt"
	"log/slog"
)

// Query holds listing options.
type Query struct {
	Limit int

	Paginator *Paginator
}

func NewQuery() *Query {
	return &Query{}
}

// ApplyPagination sets the page size and decodes the page token, if any.
func (q *Query) ApplyPagination(limit int32, token string) error {
	queryLimit := DefaultPaginationLimit
	if limit > 0 {
		queryLimit = min(maxPaginationLimit, int(limit))
	}
	q.Limit = queryLimit

	if token == "" {
		return nil
	}

	paginator, err := DecodePageToken(token)
	if err != nil {
		slog.Error("failed to decode page token", slog.Any("err", err), slog.String("token", token))
		return fmt.Errorf("invalid page token: %w", ErrInvalidPaginationToken)
	}
	q.Paginator = paginator
	return nil
}

// EffectiveLimit returns the limit to use in a statement.
func (q Query) EffectiveLimit() int {
	if q.Limit <= 0 {
		return DefaultPaginationLimit
	}
	return min(q.Limit, maxPaginationLimit)
}

// After returns the id the page starts after, or 0 for the first page.
func (q Query) After() int64 {
	if q.Paginator == nil {
		return 0
	}
	return q.Paginator.LastID
}
