// Package convert turns the init callback of a dynamically assembled p5.js
// addon into a module literal that a declaration extractor can read.
//
// The conversion is line oriented and runs in one pass:
// strip line comments, isolate the init span, segment it into declaration
// blocks, keep the public ones and rewrite their declaration heads.
package convert

import (
	"errors"
	"fmt"
)

// Result is the outcome of a successful conversion
type Result struct {
	// Output is the assembled module text
	Output string
	// Span locates the init callback in the comment-stripped source
	Span Span
	// Blocks is the number of declaration blocks found in the span
	Blocks int
	// Kept is the number of blocks that passed the filter
	Kept     int
	Entries  []Entry
	Warnings []Warning
}

// Converter runs the conversion pipeline with fixed options
type Converter struct {
	opts        Options
	filter      *Filter
	transformer *Transformer
}

// New creates a converter. It fails when an option the heuristics depend on
// is missing.
func New(opts Options) (*Converter, error) {
	if opts.Marker == "" {
		return nil, errors.New("marker must not be empty")
	}
	if opts.Self == "" {
		return nil, errors.New("self token must not be empty")
	}
	if opts.Namespace == "" {
		return nil, errors.New("namespace must not be empty")
	}

	return &Converter{
		opts:        opts,
		filter:      NewFilter(opts),
		transformer: NewTransformer(opts),
	}, nil
}

// Convert runs the pipeline over source. Any error aborts the run and no
// partial result is returned.
func (c *Converter) Convert(source string) (*Result, error) {
	stripped := StripLineComments(source)

	body, span, err := Isolate(stripped, c.opts.Marker)
	if err != nil {
		return nil, err
	}

	blocks := Segment(body)
	result := &Result{
		Span:   span,
		Blocks: len(blocks),
	}

	for i, block := range blocks {
		if !c.filter.Keep(block) {
			continue
		}
		result.Kept++

		entries, warning, err := c.transformer.Transform(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		if warning != nil {
			result.Warnings = append(result.Warnings, *warning)
		}
		result.Entries = append(result.Entries, entries...)
	}

	result.Output = Assemble(result.Entries, c.opts.Namespace)
	return result, nil
}

// Convert is a shorthand for New followed by Converter.Convert
func Convert(source string, opts Options) (*Result, error) {
	c, err := New(opts)
	if err != nil {
		return nil, err
	}
	return c.Convert(source)
}
