package images

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/gallerie-app/gallerie/internal/config"
	"github.com/gallerie-app/gallerie/internal/logging"
	"github.com/gallerie-app/gallerie/internal/netx"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	uploadPresigned = netx.UploadPresigned

	now = time.Now
)

// S3Uploader uploads images to an S3-compatible bucket (AWS or MinIO)
// through presigned PUT URLs and returns the public object URL.
type S3Uploader struct {
	cfg *config.Config
	log logging.Logger
}

func NewS3Uploader(cfg *config.Config, log logging.Logger) *S3Uploader {
	return &S3Uploader{cfg: cfg, log: log}
}

func randomStorageKey() string {
	d := now()
	return fmt.Sprintf("artworks/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (u *S3Uploader) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(u.cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.cfg.S3AccessKey,
			u.cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if u.cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(u.cfg.S3BaseEndpoint)
		}
	})

	return newS3PresignClient(client), nil
}

// Upload presigns a PUT for a date-partitioned random key, pushes the bytes
// there and returns the object's public URL.
func (u *S3Uploader) Upload(ctx context.Context, data []byte) (string, error) {
	presignClient, err := u.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := u.cfg.S3Bucket
	key := randomStorageKey()
	contentType := http.DetectContentType(data)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	if err := uploadPresigned(ctx, req.URL, data, contentType); err != nil {
		return "", err
	}

	u.log.Info(ctx, "image uploaded", "bucket", bucket, "key", key, "size", len(data))
	return u.objectURL(key), nil
}

func (u *S3Uploader) objectURL(key string) string {
	if u.cfg.S3BaseEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(u.cfg.S3BaseEndpoint, "/"), u.cfg.S3Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.S3Bucket, u.cfg.S3Region, key)
}
