package cache

import (
	"strings"

	"MindAlchemy/pkg/errors"
)

// NewCache builds the backend named by config.Type.
func NewCache(config Config) (Cache, error) {
	switch strings.ToLower(config.Type) {
	case "", "local", "gocache":
		return NewGoCache(config.Local), nil
	case "redis":
		return NewRedisCache(config.Redis)
	default:
		return nil, errors.Errorf("unsupported cache type: %s", config.Type)
	}
}
