package opensearch

import "errors"

var (
	// ErrConnectionFailed indicates the OpenSearch client could not be created
	// due to configuration or network issues. Use errors.Is() to check.
	ErrConnectionFailed = errors.New("opensearch connection failed")

	// ErrInvalidConfig indicates a violated configuration contract such as a
	// missing address list or blank credentials.
	ErrInvalidConfig = errors.New("invalid opensearch config")

	// ErrHealthcheckFailed indicates the cluster is unreachable or unhealthy.
	// Returned by both Connect() during initialization and Healthcheck() during monitoring.
	ErrHealthcheckFailed = errors.New("opensearch healthcheck failed")
)
