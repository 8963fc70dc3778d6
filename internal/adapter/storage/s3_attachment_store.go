package storage

import (
	"context"
	"io"
	"sort"
	"strings"

	"fluxo_notas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const secundarioPrefix = "secundario/"

// S3AttachmentStore keeps note attachments in a single S3-compatible bucket
// (AWS S3 or MinIO).
//
// Key layout:
//   - primary:   <notaID>/<name>
//   - secondary: <notaID>/secundario/<name>  (finance-side receipts)

type S3AttachmentStore struct {
	client *s3.Client
	bucket string
}

var _ interfaces.IAttachmentStore = (*S3AttachmentStore)(nil)

func NewS3AttachmentStore(client *s3.Client, bucket string) *S3AttachmentStore {
	return &S3AttachmentStore{client: client, bucket: bucket}
}

func (s *S3AttachmentStore) ListAttachments(ctx context.Context, notaID string) ([]string, error) {
	names, err := s.list(ctx, notaID+"/")
	if err != nil {
		return nil, err
	}
	// The primary listing excludes the secondary subtree.
	primary := names[:0]
	for _, n := range names {
		if !strings.HasPrefix(n, secundarioPrefix) {
			primary = append(primary, n)
		}
	}
	return primary, nil
}

func (s *S3AttachmentStore) ListSecondaryAttachments(ctx context.Context, notaID string) ([]string, error) {
	return s.list(ctx, notaID+"/"+secundarioPrefix)
}

func (s *S3AttachmentStore) list(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	var token *string
	for {
		out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, err
		}
		for _, obj := range out.Contents {
			names = append(names, strings.TrimPrefix(aws.ToString(obj.Key), prefix))
		}
		if out.IsTruncated != nil && *out.IsTruncated && out.NextContinuationToken != nil {
			token = out.NextContinuationToken
			continue
		}
		break
	}
	sort.Strings(names)
	return names, nil
}

func (s *S3AttachmentStore) Upload(ctx context.Context, notaID, name string, body io.Reader) error {
	key := notaID + "/" + name
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	return err
}

func (s *S3AttachmentStore) Delete(ctx context.Context, notaID, name string) error {
	key := notaID + "/" + name
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
