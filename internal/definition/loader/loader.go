package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/goliatone/go-appgen/pkg/app"
	"github.com/goliatone/go-appgen/pkg/definition"
)

// Loader implements definition.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level appgen package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

var _ definition.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options definition.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load reads the document behind src and decodes it. The format comes from
// the location's extension.
func (l *Loader) Load(ctx context.Context, src definition.Source) (app.Definition, error) {
	if src == nil {
		return app.Definition{}, errors.New("definition loader: source is nil")
	}

	format, err := definition.FormatFromPath(formatPath(src))
	if err != nil {
		return app.Definition{}, err
	}

	var data []byte
	switch src.Kind() {
	case definition.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case definition.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case definition.SourceKindURL:
		if !l.allowHTTP {
			return app.Definition{}, errors.New("definition loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("definition loader: unsupported source kind")
	}
	if err != nil {
		return app.Definition{}, fmt.Errorf("definition loader: %s: %w", src.Location(), err)
	}

	def, err := definition.Decode(data, format)
	if err != nil {
		return app.Definition{}, fmt.Errorf("definition loader: %s: %w", src.Location(), err)
	}
	return def, nil
}

func formatPath(src definition.Source) string {
	if src.Kind() != definition.SourceKindURL {
		return src.Location()
	}
	parsed, err := url.Parse(src.Location())
	if err != nil {
		return src.Location()
	}
	return path.Base(parsed.Path)
}
