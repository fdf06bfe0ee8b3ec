package sarif_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/ghannotate/pkg/sarif"
	"github.com/dkoosis/ghannotate/pkg/stacktrace"
)

func TestBuilder_LocatedFailure(t *testing.T) {
	t.Parallel()

	b := sarif.NewBuilder("ghannotate", "1.2.3")
	b.AddFailure("Foo can Bar", stacktrace.Parse("Error: Expected 0 to be 1.\n    at Bar (test/foo.js:11:15)\n"))

	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	require.NoError(t, err)

	var doc sarif.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)
	assert.Equal(t, "ghannotate", doc.Runs[0].Tool.Driver.Name)
	assert.Equal(t, "1.2.3", doc.Runs[0].Tool.Driver.Version)
	require.Len(t, doc.Runs[0].Results, 1)

	r := doc.Runs[0].Results[0]
	assert.Equal(t, sarif.RuleSpecFailure, r.RuleID)
	assert.Equal(t, "error", r.Level)
	assert.Equal(t, "Foo can Bar FAILED: Error: Expected 0 to be 1.", r.Message.Text)
	require.Len(t, r.Locations, 1)
	pl := r.Locations[0].PhysicalLocation
	assert.Equal(t, "test/foo.js", pl.ArtifactLocation.URI)
	assert.Equal(t, 11, pl.Region.StartLine)
	assert.Equal(t, 15, pl.Region.StartColumn)
}

func TestBuilder_UnlocatedFailureHasNoLocations(t *testing.T) {
	t.Parallel()

	b := sarif.NewBuilder("ghannotate", "")
	b.AddFailure("Foo can Bar", stacktrace.Parse("Error: Expected 0 to be 1.\n    at <Jasmine>\n"))

	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "locations")
	assert.NotContains(t, buf.String(), `"version": ""`)
}

func TestBuilder_OversizedPositionIsDropped(t *testing.T) {
	t.Parallel()

	b := sarif.NewBuilder("ghannotate", "")
	b.AddFailure("T", stacktrace.ParsedError{
		Message:  "Error",
		Location: &stacktrace.Location{File: "a.js", Line: "99999999999999999999999", Column: "4"},
	})

	region := b.Document().Runs[0].Results[0].Locations[0].PhysicalLocation.Region
	assert.Zero(t, region.StartLine)
	assert.Equal(t, 4, region.StartColumn)
}

func TestBuilder_EmptyDocumentHasResultsArray(t *testing.T) {
	t.Parallel()

	b := sarif.NewBuilder("ghannotate", "")
	assert.Zero(t, b.Len())

	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"results": []`)
}

func TestBuilder_Chaining(t *testing.T) {
	t.Parallel()

	b := sarif.NewBuilder("ghannotate", "").
		AddFailure("A", stacktrace.ParsedError{Message: "one"}).
		AddFailure("B", stacktrace.ParsedError{Message: "two"})

	assert.Equal(t, 2, b.Len())
}
