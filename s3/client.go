package s3client

import (
	"github.com/minio/minio-go/v7"
)

// Client is the shared S3 connection, set on startup. Nil when S3 is not
// configured; consumers must treat it as optional.
var Client *minio.Client
