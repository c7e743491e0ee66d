package port

import "context"

// RemoteStorage abstracts the remote object store that mirrors the shared bid
// folder. All paths are forward-slash and are normalized to a leading slash
// by the implementation; they are case- and whitespace-sensitive.
type RemoteStorage interface {
	// List returns the entry names directly under folder.
	List(ctx context.Context, folder string) ([]string, error)
	// Download fetches the object at path.
	Download(ctx context.Context, path string) ([]byte, error)
	// Upload writes body to path with overwrite semantics and returns the
	// normalized remote path.
	Upload(ctx context.Context, path string, body []byte) (string, error)
	// UploadJSON marshals v as indented UTF-8 JSON and uploads it to path.
	UploadJSON(ctx context.Context, path string, v any) error
}
