package karma

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dkoosis/ghannotate/pkg/annotate"
)

// Record is one spec result, encoded as a single NDJSON line.
type Record struct {
	Browser  annotate.Browser `json:"browser"`
	FullName string           `json:"fullName"`
	Log      []string         `json:"log"`
	Success  bool             `json:"success"`
	Skipped  bool             `json:"skipped"`
}

// Failed reports whether the record describes a failed spec.
func (r Record) Failed() bool {
	return !r.Success && !r.Skipped
}

// Result converts the record to the reporter's result type.
func (r Record) Result() annotate.Result {
	return annotate.Result{FullName: r.FullName, Log: r.Log}
}

// ReadRecords decodes NDJSON records from r and calls fn for each one.
// Blank lines are ignored; lines that fail to decode are skipped and counted.
// Returns the number of malformed lines and any read error.
func ReadRecords(r io.Reader, fn func(Record)) (int, error) {
	scanner := bufio.NewScanner(r)
	// Stack traces can make single records large.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var malformed int
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			malformed++
			continue
		}
		fn(rec)
	}
	if err := scanner.Err(); err != nil {
		return malformed, fmt.Errorf("scanning records: %w", err)
	}
	return malformed, nil
}
