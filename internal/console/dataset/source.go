package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// RawRecord is one loosely-typed record as it arrives from a source,
// before normalization.
type RawRecord = map[string]any

// Source is one candidate origin for the user dataset.
type Source interface {
	// Name identifies the source in logs ("remote", "local").
	Name() string

	// Fetch returns the raw record collection or an error. Implementations
	// must honor ctx cancellation.
	Fetch(ctx context.Context) ([]RawRecord, error)
}

const httpFetchTimeout = 10 * time.Second

// HTTPSource fetches the dataset over HTTP GET. The body may be a bare
// JSON array or an object with a "users" field.
type HTTPSource struct {
	name   string
	url    string
	client *http.Client
}

func NewHTTPSource(name, url string) *HTTPSource {
	return &HTTPSource{
		name:   name,
		url:    url,
		client: &http.Client{Timeout: httpFetchTimeout},
	}
}

func (s *HTTPSource) Name() string { return s.name }

func (s *HTTPSource) Fetch(ctx context.Context) ([]RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("dataset: build request for %s: %w", s.url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset: fetch %s: %w", s.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("dataset: fetch failed (%d) for %s", resp.StatusCode, s.url)
	}

	return decodeRecords(resp.Body)
}

// FileSource reads the bundled fallback dataset from disk, in the same
// JSON shape the HTTP source expects.
type FileSource struct {
	name string
	path string
}

func NewFileSource(name, path string) *FileSource {
	return &FileSource{name: name, path: path}
}

func (s *FileSource) Name() string { return s.name }

func (s *FileSource) Fetch(ctx context.Context) ([]RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", s.path, err)
	}
	defer func() { _ = f.Close() }()

	return decodeRecords(f)
}

// decodeRecords accepts either a bare array of records or an envelope
// object carrying a "users" array.
func decodeRecords(r io.Reader) ([]RawRecord, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: read body: %w", err)
	}

	var records []RawRecord
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}

	var envelope struct {
		Users []RawRecord `json:"users"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Users != nil {
		return envelope.Users, nil
	}

	return nil, fmt.Errorf("dataset: body is neither a record array nor a users envelope")
}
