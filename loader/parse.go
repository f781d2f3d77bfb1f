// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linkrank/core"
)

// Parse decodes data in the given format and freezes it into a Graph.
//
// Errors: ErrUnknownFormat, ErrMalformedLine, ErrDecode, and the core
// sentinels from Freeze (e.g. core.ErrEmptyGraph for an empty document).
func Parse(data []byte, format Format, opts ...core.CorpusOption) (*core.Graph, error) {
	c := core.NewCorpus(opts...)
	if err := Fill(c, data, format); err != nil {
		return nil, err
	}

	return c.Freeze()
}

// Fill decodes data into an existing corpus.
func Fill(c *core.Corpus, data []byte, format Format) error {
	switch format {
	case FormatEdgeList:
		return fillEdgeList(c, data)
	case FormatYAML, FormatJSON:
		// JSON is a subset of YAML 1.2, so one decoder serves both.
		var doc Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
		}
		return fillDocument(c, doc)
	case FormatTOML:
		var doc Document
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
		}
		return fillDocument(c, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func fillDocument(c *core.Corpus, doc Document) error {
	for from, targets := range doc.Pages {
		if err := c.AddLinks(from, targets...); err != nil {
			return err
		}
	}

	return nil
}

// fillEdgeList reads "from to" / "from,to" lines; both ends become pages.
func fillEdgeList(c *core.Corpus, data []byte) error {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		tokens := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		switch len(tokens) {
		case 1:
			if err := c.AddPage(tokens[0]); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
		case 2:
			if err := c.AddPage(tokens[1]); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			if err := c.AddLink(tokens[0], tokens[1]); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
		default:
			return fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return nil
}
