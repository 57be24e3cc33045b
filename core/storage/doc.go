// Package storage provides the object storage client used to fetch input
// workbooks and publish generated model files.
//
// It wraps the Minio Go SDK behind a small Client interface so that features
// and the balance loader can be tested against mocks without a live S3
// endpoint. The wrapper narrows GetObject to io.ReadCloser, which is all the
// workbook loader needs.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	rc, err := client.GetObject(ctx, bucket, "matrix.xlsx", minio.GetObjectOptions{})
package storage
