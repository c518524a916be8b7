package export

import (
	"context"
	"path"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Sink stores rendered reports under a destination
type Sink interface {
	// Put writes data as name under the destination and returns the full location
	Put(ctx context.Context, name string, data []byte) (string, error)
}

// Destination is a parsed export target
type Destination struct {
	Scheme string // "file", "gs" or "s3"
	Bucket string
	Prefix string
}

// ParseDestination parses gs://bucket/prefix, s3://bucket/prefix, or a local directory
func ParseDestination(dst string) (*Destination, error) {
	if dst == "" {
		return nil, goerr.New("export destination is empty")
	}

	for _, scheme := range []string{"gs", "s3"} {
		rest, ok := strings.CutPrefix(dst, scheme+"://")
		if !ok {
			continue
		}
		bucket, prefix, _ := strings.Cut(rest, "/")
		if bucket == "" {
			return nil, goerr.New("bucket name is missing", goerr.V("destination", dst))
		}
		return &Destination{Scheme: scheme, Bucket: bucket, Prefix: strings.Trim(prefix, "/")}, nil
	}

	if strings.Contains(dst, "://") {
		return nil, goerr.New("unsupported export scheme", goerr.V("destination", dst))
	}
	return &Destination{Scheme: "file", Prefix: dst}, nil
}

// objectKey joins the prefix and the object name
func (d *Destination) objectKey(name string) string {
	if d.Prefix == "" {
		return name
	}
	return path.Join(d.Prefix, name)
}

// New returns the sink for the destination
func New(ctx context.Context, dst string) (Sink, error) {
	d, err := ParseDestination(dst)
	if err != nil {
		return nil, err
	}

	switch d.Scheme {
	case "gs":
		sink, err := NewGCS(ctx, d)
		if err != nil {
			return nil, err
		}
		return sink, nil
	case "s3":
		sink, err := NewS3(ctx, d)
		if err != nil {
			return nil, err
		}
		return sink, nil
	default:
		return NewFile(d.Prefix), nil
	}
}
