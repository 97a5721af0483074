package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/radar-speed-sign/video_uploads/internal/config"
	"github.com/radar-speed-sign/video_uploads/internal/model"
	"github.com/sirupsen/logrus"
)

// S3Store writes uploads to Amazon S3 or an S3-compatible endpoint.
type S3Store struct {
	client *s3.Client
	log    *logrus.Logger
}

// NewS3Store builds an S3 client from the default AWS chain, overridden by
// any static credentials or custom endpoint in cfg.
func NewS3Store(ctx context.Context, cfg config.S3Config, log *logrus.Logger) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("[S3] :: failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{client: client, log: log}, nil
}

// PutObject writes obj in a single request.
func (s *S3Store) PutObject(ctx context.Context, obj model.StoredObject) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(obj.Bucket),
		Key:           aws.String(obj.Key),
		Body:          bytes.NewReader(obj.Body),
		ContentLength: aws.Int64(int64(len(obj.Body))),
		ContentType:   aws.String(obj.ContentType),
		Metadata:      obj.Metadata,
	})
	if err != nil {
		entry := s.log.WithError(err).WithFields(logrus.Fields{
			"bucket": obj.Bucket,
			"key":    obj.Key,
		})
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			entry = entry.WithField("error_code", apiErr.ErrorCode())
		}
		entry.Debug("S3 put failed")
		return fmt.Errorf("[S3] :: failed to put object (key: %s): %w", obj.Key, err)
	}

	s.log.WithFields(logrus.Fields{
		"bucket": obj.Bucket,
		"key":    obj.Key,
		"size":   len(obj.Body),
	}).Debug("S3 put complete")
	return nil
}
