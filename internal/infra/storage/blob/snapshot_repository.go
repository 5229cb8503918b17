// Package blob stores the catalog snapshot in a Go CDK bucket (file://, mem://, gs://, s3://).
package blob

import (
	"context"
	"log/slog"

	"coshare/internal/domain/repository"
	"coshare/internal/errors"
	"coshare/internal/util"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const snapshotContentType = "application/json"

type snapshotRepository struct {
	bucket *blob.Bucket
	key    string
	logger *slog.Logger
}

// OpenBucket opens the bucket behind a Go CDK URL.
func OpenBucket(ctx context.Context, url string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", url)
	}

	return bucket, nil
}

// NewSnapshotRepository stores the snapshot under key in bucket.
func NewSnapshotRepository(bucket *blob.Bucket, key string, logger *slog.Logger) repository.CatalogSnapshotRepository {
	return &snapshotRepository{
		bucket: bucket,
		key:    key,
		logger: logger,
	}
}

// Load reads the snapshot object.
func (r *snapshotRepository) Load(ctx context.Context) ([]byte, error) {
	data, err := r.bucket.ReadAll(ctx, r.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrapf(err, "failed to read snapshot %s", r.key)
	}

	r.logger.Debug("Catalog snapshot read",
		slog.String("key", r.key),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return data, nil
}

// Save replaces the snapshot object. The object only becomes visible once fully written.
func (r *snapshotRepository) Save(ctx context.Context, snapshot []byte) error {
	err := r.bucket.WriteAll(ctx, r.key, snapshot, &blob.WriterOptions{
		ContentType: snapshotContentType,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to write snapshot %s", r.key)
	}

	r.logger.Debug("Catalog snapshot written",
		slog.String("key", r.key),
		slog.String("size", util.FormatBytes(int64(len(snapshot)))),
		slog.String("checksum", util.Checksum(snapshot)),
	)

	return nil
}
