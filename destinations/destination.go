package destinations

import (
	"fmt"
)

// Publisher writes one assembled dashboard document to its destination
type Publisher interface {
	// Publish write the whole document, nothing is written on failure
	Publish(document []byte) error
	// Close close the publisher
	Close() error
}

// Destination a closed set of artifact targets
type Destination interface {
	fmt.Stringer
	destination()
}

// LocalPath write the artifact to a local file
type LocalPath struct {
	Path string
}

func (LocalPath) destination() {}

func (d LocalPath) String() string {
	return "fs:" + d.Path
}

// S3Object upload the artifact to an aws s3 bucket
type S3Object struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	Key             string
}

func (S3Object) destination() {}

func (d S3Object) String() string {
	return fmt.Sprintf("s3://%s/%s", d.Bucket, d.Key)
}

// CosObject upload the artifact to a tencent cos bucket
type CosObject struct {
	BucketURL string
	SecretID  string
	SecretKey string
	Key       string
}

func (CosObject) destination() {}

func (d CosObject) String() string {
	return fmt.Sprintf("cos:%s/%s", d.BucketURL, d.Key)
}

// RedisKey set the artifact as a redis string value
type RedisKey struct {
	Address  string
	Password string
	Key      string
}

func (RedisKey) destination() {}

func (d RedisKey) String() string {
	return fmt.Sprintf("redis://%s/%s", d.Address, d.Key)
}

// NewPublisher create the publisher of a destination
func NewPublisher(destination Destination) (Publisher, error) {
	switch d := destination.(type) {
	case LocalPath:
		return NewFileSystem(d), nil
	case S3Object:
		return NewS3(d)
	case CosObject:
		return NewCos(d)
	case RedisKey:
		return NewRedis(d), nil
	default:
		return nil, fmt.Errorf("destination type invalid: %T", destination)
	}
}
