// SPDX-License-Identifier: MIT

package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/katalvlaran/linkrank/core"
)

// Load reads a graph document from a local path or an http(s) URL.
//
// Implementation:
//   - Stage 1: Resolve the format (WithFormat, else DetectFormat).
//   - Stage 2: Read at most maxBytes from the file or the HTTP response;
//     a non-2xx status is ErrFetch.
//   - Stage 3: Parse into a Graph with the configured corpus options.
func Load(ctx context.Context, resource string, opts ...Option) (*core.Graph, error) {
	o := options{client: http.DefaultClient, maxBytes: DefaultMaxBytes}
	for _, opt := range opts {
		opt(&o)
	}

	format := o.format
	if format == "" {
		f, err := DetectFormat(resource)
		if err != nil {
			return nil, err
		}
		format = f
	}

	data, err := Read(ctx, resource, o.client, o.maxBytes)
	if err != nil {
		return nil, err
	}

	g, err := Parse(data, format, o.corpus...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", resource, err)
	}

	return g, nil
}

// IsRemote reports whether resource is fetched over HTTP.
func IsRemote(resource string) bool {
	return strings.HasPrefix(resource, "http://") || strings.HasPrefix(resource, "https://")
}

// Read returns the raw bytes of a local file or an http(s) resource, capped
// at maxBytes.
func Read(ctx context.Context, resource string, client *http.Client, maxBytes int64) ([]byte, error) {
	if !IsRemote(resource) {
		f, err := os.Open(resource)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}
		defer f.Close()
		return readCapped(f, resource, maxBytes)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resource, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: %s", ErrFetch, resource, resp.Status)
	}

	return readCapped(resp.Body, resource, maxBytes)
}

func readCapped(r io.Reader, resource string, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, resource, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrFetch, resource, maxBytes)
	}

	return data, nil
}
