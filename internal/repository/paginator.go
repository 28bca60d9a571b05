package repository

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidPaginationToken is returned when a pagination token cannot be decoded.
	ErrInvalidPaginationToken = errors.New("token is invalid")
)

const (
	// DefaultPaginationLimit is the default number of items per page.
	DefaultPaginationLimit = 10
	maxPaginationLimit     = 100

	tokenPrefix = "id:"
)

// Paginator represents pagination state using cursor-based pagination over product ids.
type Paginator struct {
	LastID int64
}

// Encode encodes the paginator state into a base64-encoded token.
func (t Paginator) Encode() string {
	key := tokenPrefix + strconv.FormatInt(t.LastID, 10)
	return base64.StdEncoding.EncodeToString([]byte(key))
}

// DecodePageToken decodes a base64-encoded pagination token into a Paginator.
func DecodePageToken(encodedToken string) (*Paginator, error) {
	bytes, err := base64.StdEncoding.DecodeString(encodedToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 token: %w", err)
	}
	decodedStr := string(bytes)
	if !strings.HasPrefix(decodedStr, tokenPrefix) {
		return nil, fmt.Errorf("invalid token format: %w", ErrInvalidPaginationToken)
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(decodedStr, tokenPrefix), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token ID: %w", err)
	}
	if id <= 0 {
		return nil, fmt.Errorf("non-positive token ID: %w", ErrInvalidPaginationToken)
	}

	return &Paginator{LastID: id}, nil
}
