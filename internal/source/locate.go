package source

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadLocation        = errors.New("malformed source location")
	ErrBackendUnavailable = errors.New("source backend not configured")
)

// Locator turns a location string into a Source:
//
//	s3://bucket/key   object in S3
//	pg:name           row of the Postgres documents table
//	file:path, path   local file
//
// DB and S3 may be nil when the matching locations are not used.
type Locator struct {
	DB    Querier
	Table string
	S3    ObjectGetter
}

func (l *Locator) Locate(loc string) (Source, error) {
	switch {
	case strings.HasPrefix(loc, "s3://"):
		bucket, key, ok := strings.Cut(strings.TrimPrefix(loc, "s3://"), "/")
		if !ok || bucket == "" || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadLocation, loc)
		}
		if l.S3 == nil {
			return nil, fmt.Errorf("%w: s3", ErrBackendUnavailable)
		}
		return NewS3(l.S3, bucket, key), nil
	case strings.HasPrefix(loc, "pg:"):
		name := strings.TrimPrefix(loc, "pg:")
		if name == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadLocation, loc)
		}
		if l.DB == nil {
			return nil, fmt.Errorf("%w: postgres", ErrBackendUnavailable)
		}
		return NewPostgres(l.DB, l.Table, name), nil
	}
	path := strings.TrimPrefix(loc, "file:")
	if path == "" {
		return nil, fmt.Errorf("%w: %q", ErrBadLocation, loc)
	}
	return NewFile(path)
}
