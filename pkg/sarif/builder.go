package sarif

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dkoosis/ghannotate/pkg/stacktrace"
)

const (
	schemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/main/sarif-2.1/schema/sarif-schema-2.1.0.json"

	// RuleSpecFailure is the rule every spec failure is reported under.
	RuleSpecFailure = "spec-failure"
)

// Builder accumulates spec failures into a single-run SARIF document.
type Builder struct {
	doc Document
}

// NewBuilder creates a builder for the named tool.
func NewBuilder(toolName, toolVersion string) *Builder {
	return &Builder{
		doc: Document{
			Version: "2.1.0",
			Schema:  schemaURI,
			Runs: []Run{{
				Tool: Tool{Driver: Driver{
					Name:    toolName,
					Version: toolVersion,
					Rules: []Rule{{
						ID:               RuleSpecFailure,
						ShortDescription: Message{Text: "A test expectation failed"},
					}},
				}},
				Results: []Result{},
			}},
		},
	}
}

// AddFailure records one failed expectation of the named spec. The result
// carries a location only when the parser recovered one.
func (b *Builder) AddFailure(fullName string, parsed stacktrace.ParsedError) *Builder {
	r := Result{
		RuleID:  RuleSpecFailure,
		Level:   "error",
		Message: Message{Text: fullName + " FAILED: " + parsed.Message},
	}
	if loc := parsed.Location; loc != nil {
		r.Locations = []Location{{
			PhysicalLocation: PhysicalLocation{
				ArtifactLocation: ArtifactLocation{URI: loc.File},
				Region: Region{
					StartLine:   atoi(loc.Line),
					StartColumn: atoi(loc.Column),
				},
			},
		}}
	}
	run := &b.doc.Runs[0]
	run.Results = append(run.Results, r)
	return b
}

// Len returns the number of results added so far.
func (b *Builder) Len() int {
	return len(b.doc.Runs[0].Results)
}

// Document returns the constructed document.
func (b *Builder) Document() *Document {
	return &b.doc
}

// WriteTo writes the document as indented JSON to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(b.doc, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encoding sarif: %w", err)
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}

// atoi converts a frame position; values that do not fit an int become zero
// and are dropped from the region.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
