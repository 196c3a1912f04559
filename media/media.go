// Package media persists item photo attachments before the item record is
// written, so the stored paths always point at durable files.
package media

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/viper"
)

// Store saves an attachment under key and returns the public path recorded
// on the item.
type Store interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// New builds the media store selected by storage.media.
func New() (Store, error) {
	switch kind := viper.GetString("storage.media"); kind {
	case "local":
		return NewLocal(viper.GetString("storage.upload_dir"))
	case "s3":
		return NewS3()
	default:
		return nil, fmt.Errorf("invalid media storage type %q", kind)
	}
}
