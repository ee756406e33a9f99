package destinations

import (
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/tickerboard/tickerboard/constants"
	"go.uber.org/zap"
)

// Redis define redis publisher
type Redis struct {
	destination RedisKey
	client      *redis.Client
}

// NewRedis create redis publisher
func NewRedis(destination RedisKey) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:         destination.Address,
		Password:     destination.Password,
		DB:           0, // use default DB
		MaxRetries:   2,
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	})

	return &Redis{destination: destination, client: client}
}

// Publish set the whole document as one string value
func (s Redis) Publish(document []byte) error {
	err := s.client.Set(s.destination.Key, document, 0).Err()
	if err != nil {
		zap.L().Error("set dashboard key failed",
			zap.Error(err),
			zap.String("address", s.destination.Address),
			zap.String("key", s.destination.Key),
			zap.Int("size", len(document)))
		return fmt.Errorf("%w: %s", constants.ErrUpload, err)
	}

	return nil
}

// Close close publisher
func (s Redis) Close() error {
	if s.client == nil {
		return nil
	}

	return s.client.Close()
}
