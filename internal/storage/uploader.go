// Package storage uploads media files into an asset's blob container through
// the SAS URL returned by Assets.ListContainerSas.
package storage

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"golang.org/x/sync/errgroup"

	"github.com/fivetwenty-io/media-client/internal/constants"
	"github.com/fivetwenty-io/media-client/pkg/media"
)

// UploadResult describes one uploaded blob.
type UploadResult struct {
	Path     string `json:"path"     yaml:"path"`
	BlobName string `json:"blobName" yaml:"blobName"`
	Size     int64  `json:"size"     yaml:"size"`
}

// Uploader writes files into a container addressed by a SAS URL.
type Uploader struct {
	concurrency   int
	logger        media.Logger
	clientOptions *container.ClientOptions
}

// Option configures an Uploader.
type Option func(*Uploader)

// WithConcurrency bounds the number of files uploaded at once.
func WithConcurrency(n int) Option {
	return func(u *Uploader) {
		if n > 0 {
			u.concurrency = n
		}
	}
}

// WithLogger reports each finished upload at info level.
func WithLogger(logger media.Logger) Option {
	return func(u *Uploader) {
		u.logger = logger
	}
}

// WithClientOptions passes options to the blob container client.
func WithClientOptions(opts *container.ClientOptions) Option {
	return func(u *Uploader) {
		u.clientOptions = opts
	}
}

// NewUploader creates an uploader.
func NewUploader(opts ...Option) *Uploader {
	uploader := &Uploader{concurrency: constants.DefaultUploadConcurrency}

	for _, opt := range opts {
		opt(uploader)
	}

	return uploader
}

// PrimarySasURL returns the first container URL of sas.
func PrimarySasURL(sas *media.AssetContainerSas) (string, error) {
	if sas == nil || len(sas.AssetContainerSasUrls) == 0 || sas.AssetContainerSasUrls[0] == "" {
		return "", constants.ErrNoContainerSas
	}

	return sas.AssetContainerSasUrls[0], nil
}

// UploadFiles uploads every path into the container, named by its base name.
// Results keep the order of paths. The first failure cancels the rest.
func (u *Uploader) UploadFiles(ctx context.Context, containerSasURL string, paths []string) ([]UploadResult, error) {
	if len(paths) == 0 {
		return nil, constants.ErrNoFilesToUpload
	}

	client, err := u.containerClient(containerSasURL)
	if err != nil {
		return nil, err
	}

	results := make([]UploadResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			result, err := u.uploadFile(gctx, client, path)
			if err != nil {
				return err
			}

			results[i] = *result

			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return nil, fmt.Errorf("uploading files: %w", err)
	}

	return results, nil
}

// UploadBuffer uploads data as a single blob.
func (u *Uploader) UploadBuffer(ctx context.Context, containerSasURL, blobName string, data []byte) (*UploadResult, error) {
	client, err := u.containerClient(containerSasURL)
	if err != nil {
		return nil, err
	}

	_, err = client.NewBlockBlobClient(blobName).UploadBuffer(ctx, data, &blockblob.UploadBufferOptions{
		HTTPHeaders: contentHeaders(blobName),
	})
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", blobName, err)
	}

	result := &UploadResult{BlobName: blobName, Size: int64(len(data))}
	u.logUpload(result)

	return result, nil
}

func (u *Uploader) uploadFile(ctx context.Context, client *container.Client, path string) (*UploadResult, error) {
	file, err := os.Open(path) //nolint:gosec // paths are supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	blobName := filepath.Base(path)

	if info.Size() == 0 {
		_, err = client.NewBlockBlobClient(blobName).UploadBuffer(ctx, nil, &blockblob.UploadBufferOptions{
			HTTPHeaders: contentHeaders(blobName),
		})
	} else {
		_, err = client.NewBlockBlobClient(blobName).UploadFile(ctx, file, &blockblob.UploadFileOptions{
			HTTPHeaders: contentHeaders(blobName),
		})
	}

	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", path, err)
	}

	result := &UploadResult{Path: path, BlobName: blobName, Size: info.Size()}
	u.logUpload(result)

	return result, nil
}

func (u *Uploader) containerClient(containerSasURL string) (*container.Client, error) {
	client, err := container.NewClientWithNoCredential(containerSasURL, u.clientOptions)
	if err != nil {
		return nil, fmt.Errorf("creating container client: %w", err)
	}

	return client, nil
}

func (u *Uploader) logUpload(result *UploadResult) {
	if u.logger == nil {
		return
	}

	u.logger.Info("uploaded blob", map[string]interface{}{
		"blob": result.BlobName,
		"size": result.Size,
	})
}

func contentHeaders(blobName string) *blob.HTTPHeaders {
	contentType := mime.TypeByExtension(filepath.Ext(blobName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &blob.HTTPHeaders{BlobContentType: &contentType}
}
