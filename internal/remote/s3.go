package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"aquafarm/internal/farm"
	"aquafarm/internal/model"
)

// S3Remote mirrors the aggregate to an S3-compatible store (AWS S3 or
// MinIO). The whole farm lives in a single object:
//
//	<prefix>/farm_data/singleton.json
type S3Remote struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

var _ farm.Remote = (*S3Remote)(nil)

// NewS3Remote creates an S3 remote from the runtime remote config.
// Static credentials from the config take precedence; otherwise the default
// AWS credential chain applies.
func NewS3Remote(ctx context.Context, cfg model.RemoteConfig) (*S3Remote, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 remote requires a bucket")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
	})

	return &S3Remote{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   cfg.Bucket,
		prefix:   cfg.Prefix,
	}, nil
}

// key returns the object key of the singleton row.
func (r *S3Remote) key() string {
	k := "farm_data/" + model.SingletonID + ".json"
	if r.prefix != "" {
		k = r.prefix + "/" + k
	}
	return k
}

// Fetch reads the singleton object. A missing object means the farm has
// never been synced and yields (nil, nil).
func (r *S3Remote) Fetch(ctx context.Context) (*model.SyncEnvelope, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key()),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetching remote state: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading remote state: %w", err)
	}

	var env model.SyncEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing remote state: %w", err)
	}
	return &env, nil
}

// Upsert inserts or replaces the singleton object.
func (r *S3Remote) Upsert(ctx context.Context, env *model.SyncEnvelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encoding remote state: %w", err)
	}

	_, err = r.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(r.key()),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("uploading remote state: %w", err)
	}
	return nil
}

// Validate verifies that the bucket is reachable with the configured
// credentials.
func (r *S3Remote) Validate(ctx context.Context) error {
	_, err := r.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(r.bucket),
	})
	if err != nil {
		return fmt.Errorf("remote bucket not accessible: %w", err)
	}
	return nil
}
