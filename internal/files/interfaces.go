package files

import "context"

// PickedFile is the result of a document-picker dialog: where the platform
// staged the picked file and its display name.
type PickedFile struct {
	URI  string
	Name string
}

// Picker is the platform document-picker boundary. Pick returns (nil, nil)
// when the user cancels the dialog; cancellation is not an error.
type Picker interface {
	Pick(ctx context.Context) (*PickedFile, error)
}

// Sharer is the platform share-sheet boundary.
type Sharer interface {
	Share(ctx context.Context, path, mimeType string) error
}

// Opener hands a file to an external application directly. Platforms without
// a direct-open path return an error and callers fall back to [Sharer].
type Opener interface {
	Open(ctx context.Context, path, mimeType string) error
}
