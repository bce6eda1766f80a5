package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"chef-karigar-backend/config"
	s3client "chef-karigar-backend/s3"
)

func InitS3() {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 is not configured, report storage disabled")
		return
	}
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV2(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("error initializing S3 client")
		return
	}

	// connection check
	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 connection failed, ListBuckets returned an error")
	}

	s3client.Client = minioClient
	log.Info("S3 client initialized")
}
