package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrEmptyConnectionURL     = errors.New("empty mongo connection URL")
	ErrEmptyDatabaseName      = errors.New("empty mongo database name")
	ErrInvalidConfig          = errors.New("invalid mongo config")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
)
