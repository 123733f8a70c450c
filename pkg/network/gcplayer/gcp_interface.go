package gcplayer

//go:generate mockgen -source=gcp_interface.go -package=mocks -destination=../../../internal/mocks/gcp_mock.go

import "context"

// GcpLayer is the object storage transport used to mirror snapshot directories
type GcpLayer interface {
	Setup(ctx context.Context, bucketId string) error
	Close() error
	UploadToGcs(objectName string, file string) error
	DownloadFromGcs(objectName string, file string) error
	ListObjects(prefix string) ([]string, error)
}
