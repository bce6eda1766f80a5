package fiberlog

import "github.com/sirupsen/logrus"

// Config controls the request logging middleware
type Config struct {
	Logger *logrus.Logger
	Tags   []string // field names to extract per request
}

// ConfigDefault is the default config
var ConfigDefault Config = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
