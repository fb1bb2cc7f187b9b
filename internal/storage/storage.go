// Package storage keeps rendered resume exports in an S3-compatible object store
// and hands out time-limited download URLs for them.
package storage

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// PutObjectOptions define optional parameters for uploading objects.
// Size is -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored export.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// Storage is the export object store.
type Storage interface {
	// Put uploads an object under key, streaming from r.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a URL that downloads the object without credentials until expiry.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ExportKey names a new export object: exports/<owner>/<uuid>-<template>.<ext>.
func ExportKey(owner, template, ext string) string {
	return "exports/" + url.PathEscape(owner) + "/" + uuid.NewString() + "-" + template + "." + ext
}
