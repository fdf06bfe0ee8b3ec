package karma_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/ghannotate/pkg/annotate"
	"github.com/dkoosis/ghannotate/pkg/karma"
)

func TestReadRecords(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		`{"browser":{"name":"Chrome (Linux)"},"fullName":"Foo can Bar","log":["Error: x\n    at a (a.js:1:2)"]}`,
		``,
		`   `,
		`not json`,
		`{"browser":{"name":"Chrome (Linux)"},"fullName":"Foo passes","success":true}`,
		`{"browser":{"name":"Firefox"},"fullName":"Foo skips","skipped":true}`,
	}, "\n")

	var got []karma.Record
	malformed, err := karma.ReadRecords(strings.NewReader(input), func(r karma.Record) {
		got = append(got, r)
	})

	require.NoError(t, err)
	assert.Equal(t, 1, malformed)
	require.Len(t, got, 3)

	assert.True(t, got[0].Failed())
	assert.Equal(t, annotate.Browser{Name: "Chrome (Linux)"}, got[0].Browser)
	assert.Equal(t, annotate.Result{FullName: "Foo can Bar", Log: []string{"Error: x\n    at a (a.js:1:2)"}}, got[0].Result())

	assert.False(t, got[1].Failed())
	assert.False(t, got[2].Failed())
}

func TestReadRecords_EmptyInput(t *testing.T) {
	t.Parallel()

	calls := 0
	malformed, err := karma.ReadRecords(strings.NewReader(""), func(karma.Record) { calls++ })

	require.NoError(t, err)
	assert.Zero(t, malformed)
	assert.Zero(t, calls)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestReadRecords_ReadError(t *testing.T) {
	t.Parallel()

	_, err := karma.ReadRecords(failingReader{}, func(karma.Record) {})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "scanning records")
	assert.Contains(t, err.Error(), "disk gone")
}
