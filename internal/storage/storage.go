package storage

import "context"

// ArchiveOptions conveys archive destination metadata.
type ArchiveOptions struct {
	Bucket    string
	KeyPrefix string
}

// Service archives records to remote object storage as JSON documents.
type Service interface {
	PutJSON(ctx context.Context, key string, record any, opts ArchiveOptions) (string, error)
}
