// Package upload wraps the Azure Blob Storage collaborator behind the
// Uploader interface: one blocking byte transfer per run, overwrite-always.
package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/rs/zerolog"
)

// AzureUploader uploads files to Azure Blob Storage using a connection
// string. A client is built per call because the connection string is part
// of the per-run effective settings.
type AzureUploader struct {
	logger zerolog.Logger
}

// NewAzureUploader creates a new Azure uploader.
func NewAzureUploader(logger zerolog.Logger) *AzureUploader {
	return &AzureUploader{logger: logger}
}

// Upload transfers the file at localPath to dest and returns the blob URL.
// An existing blob at the same key is overwritten.
func (u *AzureUploader) Upload(ctx context.Context, localPath string, dest Destination) (string, error) {
	client, err := azblob.NewClientFromConnectionString(dest.ConnectionString, nil)
	if err != nil {
		return "", fmt.Errorf("invalid storage connection string: %w", err)
	}

	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", localPath, err)
	}
	defer file.Close()

	u.logger.Info().
		Str("container", dest.Container).
		Str("blob", dest.BlobKey).
		Msg("Uploading to Azure")

	if _, err := client.UploadFile(ctx, dest.Container, dest.BlobKey, file, nil); err != nil {
		return "", fmt.Errorf("upload %s/%s: %w", dest.Container, dest.BlobKey, err)
	}

	blobURL := fmt.Sprintf("%s/%s/%s",
		strings.TrimSuffix(client.URL(), "/"), dest.Container, dest.BlobKey)
	u.logger.Info().Str("url", blobURL).Msg("Upload complete")
	return blobURL, nil
}

// BlobKey builds the destination object key: the folder prefix with
// surrounding slashes stripped plus the source file's base name.
func BlobKey(folder, localPath string) string {
	filename := filepath.Base(localPath)
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return filename
	}
	return folder + "/" + filename
}
