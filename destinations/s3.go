package destinations

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/tickerboard/tickerboard/constants"
	"go.uber.org/zap"
)

// S3 define aws s3 publisher
type S3 struct {
	destination S3Object
	client      *s3.S3
}

// NewS3 create aws s3 publisher
func NewS3(destination S3Object) (*S3, error) {
	credential := credentials.NewStaticCredentialsFromCreds(credentials.Value{
		AccessKeyID:     destination.AccessKeyID,
		SecretAccessKey: destination.SecretAccessKey,
	})

	conf := aws.Config{
		Credentials: credential,
		Region:      aws.String(destination.Region),
	}

	sess, err := session.NewSession(&conf)
	if err != nil {
		zap.L().Error("create aws session failed",
			zap.Error(err),
			zap.String("region", destination.Region),
			zap.String("bucket", destination.Bucket))
		return nil, fmt.Errorf("%w: %s", constants.ErrUpload, err)
	}

	return &S3{
		destination: destination,
		client:      s3.New(sess),
	}, nil
}

// Publish upload document as one object, overwrite semantics are the store's
func (s S3) Publish(document []byte) error {
	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s.destination.Bucket),
		Key:         aws.String(s.destination.Key),
		Body:        bytes.NewReader(document),
		ContentType: aws.String(constants.HTMLContentType),
	})
	if err != nil {
		zap.L().Error("put dashboard object failed",
			zap.Error(err),
			zap.String("bucket", s.destination.Bucket),
			zap.String("key", s.destination.Key),
			zap.Int("size", len(document)))
		return fmt.Errorf("%w: %s", constants.ErrUpload, err)
	}

	return nil
}

// Close close publisher
func (s S3) Close() error {
	return nil
}
