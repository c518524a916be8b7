package export

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/utils/safe"
)

// GCS writes reports into a Cloud Storage bucket
type GCS struct {
	client *storage.Client
	dst    *Destination
}

func NewGCS(ctx context.Context, dst *Destination) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", dst.Bucket))
	}
	return &GCS{client: client, dst: dst}, nil
}

func (g *GCS) Put(ctx context.Context, name string, data []byte) (string, error) {
	key := g.dst.objectKey(name)
	w := g.client.Bucket(g.dst.Bucket).Object(key).NewWriter(ctx)
	w.ContentType = "text/markdown; charset=utf-8"

	if _, err := w.Write(data); err != nil {
		safe.Close(ctx, w)
		return "", goerr.Wrap(err, "failed to write object", goerr.V("bucket", g.dst.Bucket), goerr.V("key", key))
	}
	// the object is committed on Close
	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to commit object", goerr.V("bucket", g.dst.Bucket), goerr.V("key", key))
	}
	return "gs://" + g.dst.Bucket + "/" + key, nil
}

func (g *GCS) Close() error {
	return g.client.Close()
}
