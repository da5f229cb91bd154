package storage

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Presigner is the part of s3.PresignClient the resolver needs.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// MediaResolver turns testimonial media references into URLs a browser can
// load. Absolute http(s) URLs pass through. Other references are object keys:
// presigned against the media bucket when one is configured, otherwise served
// from the embedded static assets.
type MediaResolver struct {
	presigner Presigner
	bucket    string
	prefix    string
	expiry    time.Duration
}

func NewMediaResolver(presigner Presigner, bucket, prefix string, expiry time.Duration) *MediaResolver {
	if expiry <= 0 {
		expiry = time.Hour
	}

	return &MediaResolver{
		presigner: presigner,
		bucket:    bucket,
		prefix:    strings.Trim(prefix, "/"),
		expiry:    expiry,
	}
}

func NewS3MediaResolver(client *s3.Client, bucket, prefix string, expiry time.Duration) *MediaResolver {
	return NewMediaResolver(s3.NewPresignClient(client), bucket, prefix, expiry)
}

// StaticMediaResolver serves every key from /static.
func StaticMediaResolver() *MediaResolver {
	return &MediaResolver{}
}

func (m *MediaResolver) Resolve(ctx context.Context, src string) (string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", nil
	}

	if u, err := url.Parse(src); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return src, nil
	}

	key := strings.TrimPrefix(src, "/")

	if m == nil || m.presigner == nil || m.bucket == "" {
		return "/static/" + key, nil
	}

	if m.prefix != "" {
		key = path.Join(m.prefix, key)
	}

	req, err := m.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(m.expiry))
	if err != nil {
		return "", fmt.Errorf("presign media %s: %w", key, err)
	}

	return req.URL, nil
}
