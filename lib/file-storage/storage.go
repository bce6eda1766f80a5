package filestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"chef-karigar-backend/config"
	s3client "chef-karigar-backend/s3"
)

type Provider interface {
	// IsAvailable reports whether an object store is configured.
	IsAvailable() bool
	UploadReport(ctx context.Context, key string, data []byte) error
	GetReport(ctx context.Context, key string) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		s3client: s3client.Client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) IsAvailable() bool {
	return i.s3client != nil
}

func (i impl) UploadReport(ctx context.Context, key string, data []byte) error {
	if i.s3client == nil {
		return errors.New("s3 client is not configured")
	}
	if err := i.makeBucket(ctx); err != nil {
		return errors.Wrap(err, "error preparing report bucket")
	}
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"})
	if err != nil {
		return errors.Wrap(err, "error uploading report")
	}
	return nil
}

func (i impl) GetReport(ctx context.Context, key string) ([]byte, error) {
	if i.s3client == nil {
		return nil, errors.New("s3 client is not configured")
	}
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "error fetching report")
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(err, "error reading report")
	}
	return data, nil
}

func (i impl) makeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
}
