package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3manager "github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	appconfig "github.com/zenndi/zenndi-ops/internal/config"
)

const defaultRegion = "us-east-1"

// S3API is the subset of *s3.Client used by S3Storage.
type S3API interface {
	s3manager.UploadAPIClient
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type Logger interface {
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
}

// S3Storage archives artifacts in a single bucket of an S3-compatible store.
type S3Storage struct {
	client   S3API
	uploader *s3manager.Uploader
	bucket   string
	region   string
	logger   Logger
}

// NewS3 creates a new S3Storage for the configured endpoint using AWS SDK v2.
// Path-style addressing is forced so MinIO and similar stores work without
// bucket DNS.
func NewS3(ctx context.Context, cfg *appconfig.StorageConfig, logger Logger) (*S3Storage, error) {
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
		config.WithRequestChecksumCalculation(aws.RequestChecksumCalculationWhenRequired),
		config.WithResponseChecksumValidation(aws.ResponseChecksumValidationWhenRequired),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	return newS3(client, cfg.Bucket, region, logger), nil
}

func newS3(client S3API, bucket, region string, logger Logger) *S3Storage {
	return &S3Storage{
		client:   client,
		uploader: s3manager.NewUploader(client),
		bucket:   bucket,
		region:   region,
		logger:   logger,
	}
}

func (s *S3Storage) Bucket() string {
	return s.bucket
}

// EnsureBucket probes the bucket and attempts to create it once when the
// probe fails. Any probe failure leads to creation, not only a missing
// bucket; causes other than NotFound are logged so a transient error is
// visible rather than silently read as absence.
func (s *S3Storage) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}

	if isNotFound(err) {
		s.logger.Infof("Bucket %s not found, creating it", s.bucket)
	} else {
		s.logger.Warnf("Bucket probe for %s failed (%s), attempting to create it anyway", s.bucket, describeError(err))
	}

	input := &s3.CreateBucketInput{Bucket: aws.String(s.bucket)}
	if s.region != "" && s.region != defaultRegion {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(s.region),
		}
	}

	if _, err := s.client.CreateBucket(ctx, input); err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &owned) {
			return nil
		}
		return fmt.Errorf("failed to create bucket %s: %s", s.bucket, describeError(err))
	}

	return nil
}

// Upload ensures the bucket exists and stores the local file under
// remoteName, replacing any object with the same key.
func (s *S3Storage) Upload(ctx context.Context, localPath string, remoteName string) error {
	if err := s.EnsureBucket(ctx); err != nil {
		return err
	}

	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(remoteName),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	return nil
}

// Download writes the object stored under remoteName to w.
func (s *S3Storage) Download(ctx context.Context, remoteName string, w io.Writer) error {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(remoteName),
	})
	if err != nil {
		return fmt.Errorf("failed to get object %s: %w", remoteName, err)
	}
	defer out.Body.Close()

	if _, err := io.Copy(w, out.Body); err != nil {
		return fmt.Errorf("failed to read object %s: %w", remoteName, err)
	}

	return nil
}

func isNotFound(err error) bool {
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var noSuchBucket *types.NoSuchBucket
	if errors.As(err, &noSuchBucket) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NotFound" || code == "NoSuchBucket"
	}
	return false
}

func describeError(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return err.Error()
}
