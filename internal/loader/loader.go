package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jorge-barreto/cex/internal/cex"
	"github.com/jorge-barreto/cex/internal/config"
)

// Document is a parsed CEX document together with where it came from.
type Document struct {
	ID       string
	Source   string
	LoadedAt time.Time
	Store    *cex.Store
}

// Fetcher retrieves CEX documents over HTTP.
type Fetcher struct {
	Client    *http.Client
	UserAgent string
	MaxBytes  int64
	Logger    *slog.Logger
}

func NewFetcher(cfg config.Fetch, log *slog.Logger) *Fetcher {
	return &Fetcher{
		Client: &http.Client{
			Timeout: cfg.TimeoutDuration(),
		},
		UserAgent: cfg.UserAgent,
		MaxBytes:  cfg.MaxBytes,
		Logger:    log,
	}
}

// FetchText downloads url and returns the response body as text.
func (f *Fetcher) FetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &TransportError{URL: url, Err: err}
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}
	req.Header.Set("Accept", "text/plain, */*")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", &TransportError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	r := io.Reader(resp.Body)
	if f.MaxBytes > 0 {
		r = io.LimitReader(resp.Body, f.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &TransportError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}
	if f.MaxBytes > 0 && int64(len(data)) > f.MaxBytes {
		return "", &TransportError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("document exceeds max size (%d bytes)", f.MaxBytes),
		}
	}
	return string(data), nil
}

// Fetch downloads and parses the document at url.
func (f *Fetcher) Fetch(ctx context.Context, url string, opts ...cex.Option) (*Document, error) {
	text, err := f.FetchText(ctx, url)
	if err != nil {
		return nil, err
	}
	return newDocument(url, text, f.Logger, opts...), nil
}

// Read parses the document read from r. name identifies r in errors.
func Read(name string, r io.Reader, log *slog.Logger, opts ...cex.Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Source: name, Err: err}
	}
	return newDocument(name, string(data), log, opts...), nil
}

// ReadFile parses the document stored at path.
func ReadFile(path string, log *slog.Logger, opts ...cex.Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Source: path, Err: err}
	}
	return newDocument(path, string(data), log, opts...), nil
}

// IsURL reports whether source should be fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load resolves source as a URL, "-" for stdin, or a file path.
func Load(ctx context.Context, source string, f *Fetcher, log *slog.Logger, opts ...cex.Option) (*Document, error) {
	switch {
	case source == "":
		return nil, errors.New("document source is required")
	case IsURL(source):
		if f == nil {
			return nil, fmt.Errorf("cannot fetch %s: no fetcher configured", source)
		}
		return f.Fetch(ctx, source, opts...)
	case source == "-":
		return Read("stdin", os.Stdin, log, opts...)
	default:
		return ReadFile(source, log, opts...)
	}
}

func newDocument(source, text string, log *slog.Logger, opts ...cex.Option) *Document {
	if log != nil {
		opts = append([]cex.Option{cex.WithLogger(log.With("source", source))}, opts...)
	}
	doc := &Document{
		ID:       uuid.NewString(),
		Source:   source,
		LoadedAt: time.Now(),
		Store:    cex.Parse(text, opts...),
	}
	if log != nil {
		log.Debug("document loaded",
			"id", doc.ID,
			"source", source,
			"bytes", len(text),
			"labels", doc.Store.Len(),
		)
	}
	return doc
}
