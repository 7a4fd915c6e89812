// Package publish uploads the extracted output tree to S3 so the card
// images are reachable by URL from simulator tables.
package publish

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// Publisher uploads files to a single S3 bucket under a key prefix.
type Publisher struct {
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

// New creates a Publisher using the default AWS credential chain.
func New(ctx context.Context, bucket, prefix string) (*Publisher, error) {
	if bucket == "" {
		return nil, fmt.Errorf("publish bucket not configured")
	}
	cfg, err := awscfg.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &Publisher{
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
	}, nil
}

// PublishDir walks root and uploads every regular file, keyed by its
// path relative to root. Returns the number of uploaded files.
func (p *Publisher) PublishDir(ctx context.Context, root string) (int, error) {
	uploaded := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if err := p.uploadFile(ctx, path, filepath.ToSlash(rel)); err != nil {
			return err
		}
		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, fmt.Errorf("publish %s: %w", root, err)
	}

	log.Info().Int("files", uploaded).Str("bucket", p.bucket).Str("prefix", p.prefix).Msg("published output tree")
	return uploaded, nil
}

func (p *Publisher) uploadFile(ctx context.Context, path, relKey string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	key := relKey
	if p.prefix != "" {
		key = p.prefix + "/" + relKey
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = p.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}

	log.Debug().Str("key", key).Msg("uploaded")
	return nil
}
