package command

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tickerboard/tickerboard/config"
	"github.com/tickerboard/tickerboard/destinations"
	"github.com/tickerboard/tickerboard/groups"
	"github.com/tickerboard/tickerboard/pipeline"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Commander interface {
	Command() *cli.Command
}

var (
	Commands = []Commander{
		ShowVersion{},
		RenderDashboard{},
		ListGroups{},
		ExportWorkbook{},
		Serve{},
		History{},
	}
)

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "config file path",
	}
}

// setup load config, switch the global logger and register configured groups
func setup(filePath string) (*config.Config, error) {
	cfg, err := config.Load(filePath)
	if err != nil {
		return nil, err
	}

	err = initLogger(cfg)
	if err != nil {
		return nil, err
	}

	for _, gc := range cfg.Groups {
		groups.Register(groups.Group{Name: gc.Name, Tickers: gc.Tickers})
	}

	return cfg, nil
}

func initLogger(cfg *config.Config) error {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	if cfg.Log.File == "" {
		lc := zap.NewDevelopmentConfig()
		lc.Level = zap.NewAtomicLevelAt(level)
		logger, err := lc.Build()
		if err != nil {
			return err
		}

		zap.ReplaceGlobals(logger)
		return nil
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    100,
		MaxBackups: 7,
		MaxAge:     30,
	})

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), writer, level)
	zap.ReplaceGlobals(zap.New(core))

	return nil
}

// destination resolve the configured output into an artifact destination
func destination(cfg *config.Config, group groups.Group, window string) destinations.Destination {
	artifact := pipeline.ArtifactName(group, window)

	key := cfg.Output.Key
	if key == "" {
		key = artifact
	}

	switch cfg.Output.Mode {
	case "s3":
		return destinations.S3Object{
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			Region:          cfg.AWS.Region,
			Bucket:          cfg.Output.Bucket,
			Key:             key,
		}
	case "cos":
		return destinations.CosObject{
			BucketURL: cfg.Cos.BucketURL,
			SecretID:  cfg.Cos.SecretID,
			SecretKey: cfg.Cos.SecretKey,
			Key:       key,
		}
	case "redis":
		return destinations.RedisKey{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			Key:      key,
		}
	default:
		return destinations.LocalPath{Path: localPath(cfg.Output.Path, artifact)}
	}
}

// localPath resolve an output path, joining the artifact name when the path is a directory
func localPath(path, artifact string) string {
	if path == "" {
		return artifact
	}

	if strings.HasSuffix(path, string(os.PathSeparator)) {
		return filepath.Join(path, artifact)
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return filepath.Join(path, artifact)
	}

	return path
}
