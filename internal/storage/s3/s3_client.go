package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"seosik/internal/config"
	"seosik/internal/port"
)

type s3Client struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
}

// NewS3Client creates an S3-backed RemoteStorage. All paths are rooted at
// the configured bucket; a custom endpoint switches to path-style addressing
// for S3-compatible stores.
func NewS3Client(cfg *config.StorageConfig) (port.RemoteStorage, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)
	return &s3Client{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   cfg.Bucket,
	}, nil
}

// List returns the entry names directly under folder, subfolders stripped
// to their base name.
func (c *s3Client) List(ctx context.Context, folder string) ([]string, error) {
	prefix := ObjectKey(folder)
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	var names []string
	paginator := s3.NewListObjectsV2Paginator(c.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(c.bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 list %s: %w", folder, err)
		}
		for _, cp := range page.CommonPrefixes {
			if cp.Prefix != nil {
				names = append(names, baseName(strings.TrimSuffix(*cp.Prefix, "/")))
			}
		}
		for _, obj := range page.Contents {
			if obj.Key != nil && *obj.Key != prefix {
				names = append(names, baseName(*obj.Key))
			}
		}
	}
	return names, nil
}

func (c *s3Client) Download(ctx context.Context, path string) ([]byte, error) {
	result, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(ObjectKey(path)),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 download %s: %w", path, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 download read %s: %w", path, err)
	}
	return data, nil
}

func (c *s3Client) Upload(ctx context.Context, path string, body []byte) (string, error) {
	_, err := c.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(ObjectKey(path)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentTypeFor(path)),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s: %w", path, err)
	}
	return NormalizePath(path), nil
}

func (c *s3Client) UploadJSON(ctx context.Context, path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	_, err := c.Upload(ctx, path, buf.Bytes())
	return err
}

// NormalizePath returns the canonical remote form of a path: a single
// leading slash, no trailing slash.
func NormalizePath(path string) string {
	return "/" + ObjectKey(path)
}

// ObjectKey converts a remote path to its S3 object key.
func ObjectKey(path string) string {
	return strings.Trim(path, "/")
}

func baseName(key string) string {
	if i := strings.LastIndex(key, "/"); i >= 0 {
		return key[i+1:]
	}
	return key
}

func contentTypeFor(path string) string {
	switch {
	case strings.HasSuffix(path, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(path, ".json"):
		return "application/json; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
