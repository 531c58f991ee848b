// Package pipeline provides the core translation pipeline for layoutsmith.
//
// This package implements the complete parse → synthesize → render pipeline
// that is shared by the CLI, the HTTP API, and the playground. By centralizing
// this logic, we ensure consistent behavior across all entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: scan the example text into dimension and element structures
//  2. Synthesize: map the element set to a layout tree by fixed rule
//  3. Render: produce SwiftUI source text from the tree
//
// Control flow is strictly linear; each stage is a pure function over
// immutable inputs. The Runner keeps no state between calls, so a single
// Runner can serve concurrent requests with distinct options.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Input: text})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Code)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/layoutsmith/layoutsmith/pkg/errors"
	"github.com/layoutsmith/layoutsmith/pkg/example"
	"github.com/layoutsmith/layoutsmith/pkg/layout"
)

// Options contains all configuration for a pipeline run.
type Options struct {
	// Input is the raw example text, e.g.
	// {(width:390,height:844):{title:"Hello",button:"Click"}}.
	Input string `json:"input"`

	// Logger receives stage-level progress. Not serialized.
	Logger *log.Logger `json:"-"`
}

// Validate checks required fields and applies defaults.
func (o *Options) Validate() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "example input is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Examples are the parsed example structures (exactly one per input).
	Examples []example.Example

	// Tree is the synthesized layout tree.
	Tree layout.Node

	// Code is the rendered SwiftUI source text.
	Code string

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ParseTime  time.Duration
	SynthTime  time.Duration
	RenderTime time.Duration
}

// Total returns the combined duration of all stages.
func (s Stats) Total() time.Duration {
	return s.ParseTime + s.SynthTime + s.RenderTime
}
