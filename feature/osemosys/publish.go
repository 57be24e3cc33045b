package osemosys

import (
	"bytes"
	"context"
	"fmt"

	"res-builder/core/res"
	"res-builder/core/storage"

	"github.com/minio/minio-go/v7"
)

// workbookContentType is the MIME type of an xlsx workbook.
const workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Publish renders the workbook and uploads it to object storage, next to the
// input workbooks. The bucket must already exist; publishing never creates
// buckets on its own.
func Publish(ctx context.Context, client storage.Client, bucket, objectName string, techs []*res.Technology) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}

	var buf bytes.Buffer
	if err := Write(techs, &buf); err != nil {
		return err
	}

	_, err = client.PutObject(ctx, bucket, objectName, &buf, int64(buf.Len()),
		minio.PutObjectOptions{ContentType: workbookContentType})
	if err != nil {
		return fmt.Errorf("failed to upload workbook %s: %w", objectName, err)
	}
	return nil
}
