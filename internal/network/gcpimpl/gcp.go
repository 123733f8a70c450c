package gcpimpl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"mongosync/pkg/helper"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

type GcpImpl struct {
	gcsBucket string

	// Clients
	gcsClient *storage.Client
	ctx       context.Context
}

func New() *GcpImpl {
	return &GcpImpl{}
}

func (g *GcpImpl) Setup(ctx context.Context, bucketId string) error {
	g.ctx = ctx
	g.gcsBucket = bucketId

	// Initialize GCS client
	gcsClient, err := storage.NewClient(g.ctx)
	if err != nil {
		return fmt.Errorf("failed to create GCS client: %w", err)
	}
	g.gcsClient = gcsClient
	// Test GCS connection
	_, err = g.gcsClient.Bucket(g.gcsBucket).Attrs(g.ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to GCS bucket: %w", err)
	}

	return nil
}

func (g *GcpImpl) Close() error {
	if g.gcsClient == nil {
		return nil
	}
	if err := g.gcsClient.Close(); err != nil {
		return fmt.Errorf("failed to close GCS client: %w", err)
	}
	return nil
}

func (g *GcpImpl) UploadToGcs(objectName string, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", file, err)
	}
	defer f.Close()

	obj := g.gcsClient.Bucket(g.gcsBucket).Object(objectName)
	w := obj.NewWriter(g.ctx)
	w.ContentType = "application/json"

	if _, err := io.Copy(w, f); err != nil {
		w.Close()
		return fmt.Errorf("failed to upload %s: %w", file, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize upload %s: %w", file, err)
	}
	return nil
}

func (g *GcpImpl) DownloadFromGcs(objectName string, file string) error {
	r, err := g.gcsClient.Bucket(g.gcsBucket).Object(objectName).NewReader(g.ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || helper.IsNotFoundError(err) {
			return fmt.Errorf("GCS object %s does not exist: %w", objectName, err)
		}
		return fmt.Errorf("failed to open GCS object %s: %w", objectName, err)
	}
	defer r.Close()

	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", file, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("failed to download %s: %w", objectName, err)
	}
	return f.Close()
}

func (g *GcpImpl) ListObjects(prefix string) ([]string, error) {
	it := g.gcsClient.Bucket(g.gcsBucket).Objects(g.ctx, &storage.Query{Prefix: prefix})

	var names []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list GCS objects under %s: %w", prefix, err)
		}
		names = append(names, attrs.Name)
	}
	return names, nil
}
