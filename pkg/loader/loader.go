// Package loader performs the one-shot fetch of the record list from the
// spreadsheet endpoint or from an exported snapshot on disk.
package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-houseprint/pkg/record"
)

// Option customises a Loader.
type Option func(*Loader)

// WithHTTPClient overrides the HTTP client. The client is copied.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		if client != nil {
			clone := *client
			l.http = &clone
		}
	}
}

// WithTimeout bounds the HTTP request. Zero keeps the request unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		l.timeout = timeout
	}
}

// WithFileSystem sets the filesystem used by SourceKindFS sources.
func WithFileSystem(files fs.FS) Option {
	return func(l *Loader) {
		l.fs = files
	}
}

// WithLogger attaches a logger. Defaults to zap.NewNop.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader fetches record lists.
type Loader struct {
	http    *http.Client
	fs      fs.FS
	timeout time.Duration
	logger  *zap.Logger
}

// New constructs a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	if l.http == nil {
		l.http = &http.Client{}
	}
	if l.timeout > 0 && l.http.Timeout == 0 {
		l.http.Timeout = l.timeout
	}
	return l
}

// Load reads src and returns its records. Transport, status and file errors
// are returned as *LoadError. A body that is not an array of objects yields
// an empty store and no error.
func (l *Loader) Load(ctx context.Context, src Source) (*record.Store, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	started := time.Now()

	var (
		data []byte
		err  error
	)
	switch src.Kind {
	case SourceKindURL:
		data, err = loadHTTP(ctx, l.http, src.Location)
	case SourceKindFile:
		data, err = loadFile(ctx, src.Location)
	case SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location)
	default:
		err = errors.New("unsupported source kind")
	}
	if err != nil {
		loadErr := &LoadError{Source: src, Err: err}
		var status statusError
		if errors.As(err, &status) {
			loadErr.StatusCode = status.code
		}
		l.logger.Error("record load failed", zap.Stringer("source", src), zap.Error(err))
		return nil, loadErr
	}

	if err := checkShape(data); err != nil {
		l.logger.Warn("record payload is not a list of objects; treating as empty",
			zap.Stringer("source", src),
			zap.Int("bytes", len(data)),
			zap.Error(err),
		)
		return record.Empty(), nil
	}

	records, err := record.Decode(data)
	if err != nil {
		l.logger.Warn("record payload could not be decoded; treating as empty",
			zap.Stringer("source", src),
			zap.Error(err),
		)
		return record.Empty(), nil
	}

	l.logger.Info("records loaded",
		zap.Stringer("source", src),
		zap.Int("count", len(records)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return record.NewStore(records), nil
}
