// Package storage issues presigned S3 URLs for media uploads. Clients upload
// directly to the bucket; the API only hands out short-lived URLs.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"ripple/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appconfig "ripple/internal/config"
)

// Upload kinds map to their backing bucket.
const (
	KindPost   = "post"
	KindVideo  = "video"
	KindAvatar = "avatar"
)

const presignTTL = 5 * time.Minute

// MediaStore issues presigned upload URLs against per-kind buckets.
type MediaStore struct {
	presigner     *s3.PresignClient
	postsBucket   string
	videosBucket  string
	avatarsBucket string
	region        string
}

// NewMediaStore builds a MediaStore from the application config, loading AWS
// credentials from the default chain.
func NewMediaStore(ctx context.Context, cfg *appconfig.Config) (*MediaStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg)
	return &MediaStore{
		presigner:     s3.NewPresignClient(client),
		postsBucket:   cfg.PostsBucket,
		videosBucket:  cfg.VideosBucket,
		avatarsBucket: cfg.AvatarsBucket,
		region:        cfg.AWSRegion,
	}, nil
}

// UploadTicket is the response to an upload request: PUT the file to
// UploadURL, then reference it by PublicURL.
type UploadTicket struct {
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
	Key       string `json:"key"`
}

func (m *MediaStore) bucketFor(kind string) (string, error) {
	switch kind {
	case KindPost:
		return m.postsBucket, nil
	case KindVideo:
		return m.videosBucket, nil
	case KindAvatar:
		return m.avatarsBucket, nil
	default:
		return "", models.NewValidationError("Unknown upload kind")
	}
}

// CreateUploadTicket presigns a PUT for one object. The key is namespaced by
// user so uploads never collide and cleanup by owner stays possible.
func (m *MediaStore) CreateUploadTicket(ctx context.Context, userID uint, kind, fileName, contentType string) (*UploadTicket, error) {
	bucket, err := m.bucketFor(kind)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(fileName))
	key := fmt.Sprintf("%d/%s%s", userID, uuid.NewString(), ext)

	req, err := m.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &UploadTicket{
		UploadURL: req.URL,
		PublicURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, m.region, key),
		Key:       key,
	}, nil
}
