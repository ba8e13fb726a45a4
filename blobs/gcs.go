package blobs

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/vinoterra/winery-registry/common"
)

// urlExpiry is far enough in the future that issued links never rotate.
var urlExpiry = time.Date(2500, time.March, 1, 0, 0, 0, 0, time.UTC)

// StorageFromContextFun resolves the blob store client bound to a request.
type StorageFromContextFun = func(ctx context.Context) *storage.Client

type CloudStorageBlobs struct {
	storageClientFun StorageFromContextFun
	bucket           string
}

func NewCloudStorageBlobsWithClient(fun StorageFromContextFun) *CloudStorageBlobs {
	return &CloudStorageBlobs{
		storageClientFun: fun,
		bucket:           bucketName(),
	}
}

func bucketName() string {
	return common.GetEnv("BUCKET", fmt.Sprintf("%s.appspot.com", common.ProjectID))
}

func (b *CloudStorageBlobs) SignedURL(ctx context.Context, path string) (string, error) {
	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV2,
		Method:  http.MethodGet,
		Expires: urlExpiry,
	}

	url, err := b.storageClientFun(ctx).Bucket(b.bucket).SignedURL(path, opts)
	if err != nil {
		return "", fmt.Errorf("signing url for %s: %w", path, err)
	}

	return url, nil
}

// DeletePrefix removes every object under the prefix and returns the number
// of objects deleted. Objects already gone are not an error.
func (b *CloudStorageBlobs) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	bucket := b.storageClientFun(ctx).Bucket(b.bucket)
	it := bucket.Objects(ctx, &storage.Query{Prefix: prefix})

	deleted := 0

	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return deleted, err
		}

		if err := bucket.Object(attrs.Name).Delete(ctx); err != nil && err != storage.ErrObjectNotExist {
			return deleted, err
		}

		deleted++
	}

	return deleted, nil
}
