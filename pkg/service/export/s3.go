package export

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/m-mizutani/goerr/v2"
)

// S3API is the part of the S3 client used by the sink
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 writes reports into an S3 bucket
type S3 struct {
	client S3API
	dst    *Destination
}

// NewS3 builds a client from the default AWS credential chain
func NewS3(ctx context.Context, dst *Destination) (*S3, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load AWS config", goerr.V("bucket", dst.Bucket))
	}
	return NewS3WithClient(s3.NewFromConfig(awsCfg), dst), nil
}

func NewS3WithClient(client S3API, dst *Destination) *S3 {
	return &S3{client: client, dst: dst}
}

func (s *S3) Put(ctx context.Context, name string, data []byte) (string, error) {
	key := s.dst.objectKey(name)
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.dst.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/markdown; charset=utf-8"),
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", goerr.Wrap(err, "failed to put object", goerr.V("bucket", s.dst.Bucket), goerr.V("key", key))
	}
	return "s3://" + s.dst.Bucket + "/" + key, nil
}
