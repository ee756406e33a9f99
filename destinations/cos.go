package destinations

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mozillazg/go-cos"
	"github.com/tickerboard/tickerboard/constants"
	"go.uber.org/zap"
)

// Cos define tencent cos publisher
type Cos struct {
	destination CosObject
	client      *cos.Client
}

// NewCos create tencent cos publisher
func NewCos(destination CosObject) (*Cos, error) {
	bucketURL, err := url.Parse(destination.BucketURL)
	if err != nil {
		zap.L().Error("parse cos bucket url failed",
			zap.Error(err),
			zap.String("bucketURL", destination.BucketURL))
		return nil, fmt.Errorf("%w: %s", constants.ErrUpload, err)
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: bucketURL}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  destination.SecretID,
			SecretKey: destination.SecretKey,
		},
	})

	return &Cos{destination: destination, client: client}, nil
}

// Publish upload document as one object, overwrite semantics are the store's
func (s Cos) Publish(document []byte) error {
	opt := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType: constants.HTMLContentType,
		},
	}

	_, err := s.client.Object.Put(context.Background(), s.destination.Key, bytes.NewReader(document), opt)
	if err != nil {
		zap.L().Error("put dashboard object failed",
			zap.Error(err),
			zap.String("bucketURL", s.destination.BucketURL),
			zap.String("key", s.destination.Key),
			zap.Int("size", len(document)))
		return fmt.Errorf("%w: %s", constants.ErrUpload, err)
	}

	return nil
}

// Close close publisher
func (s Cos) Close() error {
	return nil
}
