package notifiers

import (
	"crypto/tls"

	"github.com/bytedance/sonic"
	"github.com/nsqio/go-nsq"
	"go.uber.org/zap"
)

// Nsq notify by nsq
type Nsq struct {
	topic    string
	producer *nsq.Producer
}

// NewNsq create new nsq notifier, tls is enabled when both cert and key are set
func NewNsq(broker, tlsCert, tlsKey, topic string) (Notifier, error) {
	config := nsq.NewConfig()
	if tlsCert != "" && tlsKey != "" {
		cert, err := tls.LoadX509KeyPair(tlsCert, tlsKey)
		if err != nil {
			zap.L().Error("init tls certificate failed",
				zap.Error(err),
				zap.String("tlsCert", tlsCert),
				zap.String("tlsKey", tlsKey))
			return nil, err
		}

		config.TlsV1 = true
		config.TlsConfig = &tls.Config{
			InsecureSkipVerify: true,
			Certificates:       []tls.Certificate{cert},
		}
	}

	producer, err := nsq.NewProducer(broker, config)
	if err != nil {
		zap.L().Error("init nsq producer failed",
			zap.Error(err),
			zap.String("broker", broker))
		return nil, err
	}

	return &Nsq{topic: topic, producer: producer}, nil
}

// Notify notify dashboard publish result
func (s Nsq) Notify(result *PublishResult) {
	buffer, err := sonic.ConfigFastest.Marshal(result)
	if err != nil {
		zap.L().Warn("marshal publish result failed",
			zap.Error(err),
			zap.Any("result", result))
		return
	}

	err = s.producer.Publish(s.topic, buffer)
	if err != nil {
		zap.L().Warn("publish result notification failed",
			zap.Error(err),
			zap.String("topic", s.topic),
			zap.Any("result", result))
		return
	}

	zap.L().Info("publish result notification success",
		zap.String("topic", s.topic),
		zap.String("run_id", result.RunID),
		zap.Bool("success", result.Success))
}

// Close close producer
func (s Nsq) Close() {
	if s.producer == nil {
		return
	}

	s.producer.Stop()
}
