package upload

import "context"

// Destination identifies where a file lands in the blob store.
type Destination struct {
	ConnectionString string
	Container        string
	BlobKey          string
}

// Uploader defines the interface for the upload collaborator. Upload always
// overwrites an existing object at the destination key and returns the
// publicly resolvable URL of the uploaded blob.
type Uploader interface {
	Upload(ctx context.Context, localPath string, dest Destination) (string, error)
}
