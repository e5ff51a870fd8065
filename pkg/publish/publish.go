package publish

import (
	"context"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vango-dev/showcase/internal/errors"
)

// Publisher stores a rendered document under key and returns where it
// ended up.
type Publisher interface {
	Publish(ctx context.Context, key string, body []byte) (string, error)
}

// ContentType guesses the MIME type from key's extension. HTML is the
// fallback since exports are pages.
func ContentType(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".html", ".htm", "":
		return "text/html; charset=utf-8"
	case ".js":
		return "application/javascript; charset=utf-8"
	}
	if t := mime.TypeByExtension(path.Ext(key)); t != "" {
		return t
	}
	return "application/octet-stream"
}

// FilePublisher writes documents below Dir.
type FilePublisher struct {
	Dir    string
	Logger *slog.Logger
}

// Publish implements Publisher.
func (p *FilePublisher) Publish(ctx context.Context, key string, body []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(p.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", errors.New("E301").WithPath(dest).Wrap(err)
	}
	if err := os.WriteFile(dest, body, 0644); err != nil {
		return "", errors.New("E301").WithPath(dest).Wrap(err)
	}

	logger(p.Logger).Info("page written", "path", dest, "bytes", len(body))
	return dest, nil
}

// cleanKey normalizes key to a relative slash path that cannot escape the
// destination root.
func cleanKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("E300").WithDetail("empty object key")
	}
	cleaned := path.Clean("/" + strings.ReplaceAll(key, "\\", "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return "", errors.New("E300").WithDetail("invalid object key " + key)
	}
	return cleaned, nil
}

func logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With("component", "publish")
}
