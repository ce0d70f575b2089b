package fiberlog

import "github.com/sirupsen/logrus"

// Config is config for middleware
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// defaultTags are used when a config carries no tags
var defaultTags = []string{
	TagStatus,
	TagLatency,
	TagMethod,
	TagPath,
}
