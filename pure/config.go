package pure

import (
	"go.uber.org/zap"
)

// Config tunes a memo table.
type Config struct {
	NumShards int         // default: 1, root-level shards picked by hashing the first argument
	Logger    *zap.Logger // default: the library logger
}

func NewConfig(numShards int, logger *zap.Logger) Config {
	if numShards <= 0 {
		numShards = 1
	}
	return Config{
		NumShards: numShards,
		Logger:    logger,
	}
}

func DefaultConfig() Config {
	return NewConfig(1, nil)
}
