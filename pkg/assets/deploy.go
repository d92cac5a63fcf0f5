package assets

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the slice of the S3 client the deployer uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Deployer uploads a built asset directory to an S3 bucket.
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	d := assets.NewDeployer(s3.NewFromConfig(cfg), "my-bucket", "static/")
//	result, err := d.Sync(ctx, "dist")
type Deployer struct {
	client s3API
	bucket string
	prefix string
	logger *slog.Logger

	// CacheControl is set on every uploaded object. Fingerprinted assets
	// are immutable, so the default allows long-lived caching.
	CacheControl string

	// Prune removes remote objects under the prefix that no longer exist
	// locally. Default: false.
	Prune bool
}

// NewDeployer creates a Deployer targeting bucket with the given key
// prefix.
func NewDeployer(client s3API, bucket, prefix string, logger *slog.Logger) *Deployer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Deployer{
		client:       client,
		bucket:       bucket,
		prefix:       prefix,
		logger:       logger.With("component", "assets"),
		CacheControl: "public, max-age=31536000, immutable",
	}
}

// SyncResult summarizes one deploy.
type SyncResult struct {
	Uploaded int
	Pruned   int
	Bytes    int64
	Took     time.Duration
}

// Sync uploads every file under dir to the bucket, keyed by its path
// relative to dir under the configured prefix. With Prune set, remote
// objects with no local counterpart are deleted afterwards.
func (d *Deployer) Sync(ctx context.Context, dir string) (*SyncResult, error) {
	start := time.Now()
	result := &SyncResult{}
	local := make(map[string]bool)

	err := filepath.WalkDir(dir, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		key := d.prefix + filepath.ToSlash(rel)
		local[key] = true

		n, err := d.upload(ctx, p, key)
		if err != nil {
			return fmt.Errorf("assets: upload %s: %w", rel, err)
		}

		result.Uploaded++
		result.Bytes += n
		return nil
	})
	if err != nil {
		return nil, err
	}

	if d.Prune {
		pruned, err := d.prune(ctx, local)
		if err != nil {
			return nil, err
		}
		result.Pruned = pruned
	}

	result.Took = time.Since(start)
	d.logger.Info("sync complete",
		"uploaded", result.Uploaded,
		"pruned", result.Pruned,
		"bytes", result.Bytes,
		"took", result.Took)
	return result, nil
}

func (d *Deployer) upload(ctx context.Context, file, key string) (int64, error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}

	_, err = d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(d.bucket),
		Key:          aws.String(key),
		Body:         f,
		ContentType:  aws.String(contentType(key)),
		CacheControl: aws.String(d.CacheControl),
	})
	if err != nil {
		return 0, err
	}

	d.logger.Debug("uploaded", "key", key, "bytes", info.Size())
	return info.Size(), nil
}

// prune deletes remote objects under the prefix that are not in keep.
func (d *Deployer) prune(ctx context.Context, keep map[string]bool) (int, error) {
	pruned := 0
	var continuation *string

	for {
		page, err := d.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(d.bucket),
			Prefix:            aws.String(d.prefix),
			ContinuationToken: continuation,
		})
		if err != nil {
			return pruned, fmt.Errorf("assets: list objects: %w", err)
		}

		for _, obj := range page.Contents {
			if obj.Key == nil || keep[*obj.Key] {
				continue
			}
			_, err := d.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(d.bucket),
				Key:    obj.Key,
			})
			if err != nil {
				return pruned, fmt.Errorf("assets: delete %s: %w", *obj.Key, err)
			}
			d.logger.Debug("pruned", "key", *obj.Key)
			pruned++
		}

		if page.IsTruncated == nil || !*page.IsTruncated {
			return pruned, nil
		}
		continuation = page.NextContinuationToken
	}
}

func contentType(key string) string {
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		return ct
	}
	if strings.HasSuffix(key, ".map") {
		return "application/json"
	}
	return "application/octet-stream"
}
