// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/katalvlaran/linkrank/core"
)

// Sentinel errors for graph documents.
var (
	// ErrUnknownFormat indicates an unsupported format name or file extension.
	ErrUnknownFormat = errors.New("loader: unknown graph format")

	// ErrMalformedLine indicates an edge-list line with more than two tokens.
	ErrMalformedLine = errors.New("loader: malformed edge-list line")

	// ErrDecode indicates a YAML, JSON or TOML syntax or shape error.
	ErrDecode = errors.New("loader: cannot decode document")

	// ErrFetch indicates a resource that could not be read or downloaded.
	ErrFetch = errors.New("loader: cannot fetch resource")
)

// Format names a graph document encoding.
type Format string

// Supported formats.
const (
	FormatEdgeList Format = "edges"
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatTOML     Format = "toml"
)

// DefaultMaxBytes caps how much of a resource Load reads.
const DefaultMaxBytes int64 = 32 << 20

// Document is the adjacency form shared by YAML, JSON and TOML.
type Document struct {
	Pages map[string][]string `yaml:"pages" toml:"pages" json:"pages"`
}

var extensions = map[string]Format{
	".txt":   FormatEdgeList,
	".edges": FormatEdgeList,
	".el":    FormatEdgeList,
	".csv":   FormatEdgeList,
	".tsv":   FormatEdgeList,
	".yaml":  FormatYAML,
	".yml":   FormatYAML,
	".json":  FormatJSON,
	".toml":  FormatTOML,
}

// ParseFormat resolves a format name ("edges", "yaml", "yml", "json",
// "toml", case-insensitive).
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "edges", "edgelist", "edge-list", "txt":
		return FormatEdgeList, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// DetectFormat picks a format from the extension of a path or URL.
// A query string or fragment is ignored.
func DetectFormat(name string) (Format, error) {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	ext := strings.ToLower(path.Ext(name))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}

	return "", fmt.Errorf("%w: extension %q of %q", ErrUnknownFormat, ext, name)
}

// Option configures Load.
type Option func(*options)

type options struct {
	format   Format
	corpus   []core.CorpusOption
	client   *http.Client
	maxBytes int64
}

// WithFormat forces a format instead of detecting it from the extension.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithCorpusOptions passes options to the Corpus the document is read into.
func WithCorpusOptions(opts ...core.CorpusOption) Option {
	return func(o *options) { o.corpus = append(o.corpus, opts...) }
}

// WithHTTPClient sets the client used for http(s) resources.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.client = c
		}
	}
}

// WithMaxBytes caps the resource size; n ≤ 0 keeps DefaultMaxBytes.
func WithMaxBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBytes = n
		}
	}
}
