package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/tickerboard/tickerboard/config"
	"github.com/tickerboard/tickerboard/destinations"
	"github.com/tickerboard/tickerboard/groups"
	"github.com/tickerboard/tickerboard/pipeline"
	"github.com/tickerboard/tickerboard/sources"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	undo := zap.ReplaceGlobals(logger)
	defer undo()

	cfg, err := config.Load("")
	if err != nil {
		zap.L().Fatal("get environment variables failed", zap.Error(err))
	}
	zap.L().Info("get environment variables success")

	for _, gc := range cfg.Groups {
		groups.Register(groups.Group{Name: gc.Name, Tickers: gc.Tickers})
	}

	renderer := NewRenderer(cfg, sources.NewYahooFinance())
	lambda.Start(renderer.Handler)
}

// Renderer define dashboard render service
type Renderer struct {
	config *config.Config
	source sources.Source
}

// NewRenderer create dashboard render service
func NewRenderer(config *config.Config, source sources.Source) *Renderer {
	return &Renderer{config, source}
}

// Handler process lambda event
func (s Renderer) Handler(ctx context.Context, event events.CloudWatchEvent) error {
	group, err := groups.Resolve(s.config.Group)
	if err != nil {
		zap.L().Error("resolve group failed", zap.Error(err), zap.String("group", s.config.Group))
		return err
	}

	dest := s.destination(group)

	pub, err := destinations.NewPublisher(dest)
	if err != nil {
		zap.L().Error("create publisher failed",
			zap.Error(err),
			zap.String("group", group.Name),
			zap.String("destination", dest.String()))
		return err
	}
	defer pub.Close()

	_, err = pipeline.New(s.source, dest, pub).Run(ctx, group, s.config.Range)
	return err
}

// destination resolve the configured output into an artifact destination
func (s Renderer) destination(group groups.Group) destinations.Destination {
	key := s.config.Output.Key
	if key == "" {
		key = pipeline.ArtifactName(group, s.config.Range)
	}

	switch s.config.Output.Mode {
	case "cos":
		return destinations.CosObject{
			BucketURL: s.config.Cos.BucketURL,
			SecretID:  s.config.Cos.SecretID,
			SecretKey: s.config.Cos.SecretKey,
			Key:       key,
		}
	case "redis":
		return destinations.RedisKey{
			Address:  s.config.Redis.Address,
			Password: s.config.Redis.Password,
			Key:      key,
		}
	default:
		// a lambda deployment publishes to s3 unless told otherwise
		return destinations.S3Object{
			AccessKeyID:     s.config.AWS.AccessKeyID,
			SecretAccessKey: s.config.AWS.SecretAccessKey,
			Region:          s.config.AWS.Region,
			Bucket:          s.config.Output.Bucket,
			Key:             key,
		}
	}
}
