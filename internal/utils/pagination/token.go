// Package pagination implements opaque, time-based continuation tokens used by the
// listing endpoints (sessions, members). A token encodes the sort key of the last
// row returned; the next page starts strictly after it.
package pagination

import (
	"encoding/base64"
	"fmt"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeToken creates a base64 encoded continuation token from a row creation time.
func EncodeToken(createdAt time.Time) string {
	return base64.StdEncoding.EncodeToString([]byte(createdAt.Format(timeFormat)))
}

// DecodeToken parses a continuation token back into the row creation time it encodes.
func DecodeToken(token string) (time.Time, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	createdAt, err := time.Parse(timeFormat, string(decodedBytes))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pagination token format (time parse): %w", err)
	}

	return createdAt, nil
}
