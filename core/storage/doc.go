// Package storage provides the S3-compatible object storage client used to
// archive raw supplier feeds. The Client interface is deliberately narrow
// (bucket check, bucket create, object put) so tests can mock it; the
// Minio client satisfies it directly.
package storage
