package collector

import (
	"errors"
	"fmt"
	"time"

	"github.com/hhvm-exporter/hhvm-exporter/internal/scraper"
)

// StartTimeLayout is the format HHVM uses for status.process.start,
// e.g. "Tue, 15-Nov-2016 10:30:02 UTC".
const StartTimeLayout = "Mon, 02-Jan-2006 15:04:05 MST"

// ErrStartTime is returned by MapStatus when the process start time is missing
// or cannot be parsed.
var ErrStartTime = errors.New("invalid process start time")

// MapStatus maps a /status.json document. Without a status.process section
// there is nothing to report. With one, a start time that does not parse is an
// error and no samples are returned.
func MapStatus(res scraper.Result) ([]Sample, error) {
	if !res.Present() {
		return nil, nil
	}

	status, _ := res.Doc.Section("status")
	process, ok := status.Section("process")
	if !ok || len(process) == 0 {
		return nil, nil
	}

	raw, _ := process.String("start")
	start, err := ParseStartTime(raw)
	if err != nil {
		return nil, err
	}

	return []Sample{
		sample(buildInfo, 1, process.Label("compiler"), process.Label("build")),
		sample(startup, float64(start.Unix())),
	}, nil
}

// ParseStartTime parses s with StartTimeLayout. UTC, GMT and abbreviations
// defined by the local zone carry their offset; unknown abbreviations are
// read with a zero offset.
func ParseStartTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrStartTime)
	}
	t, err := time.ParseInLocation(StartTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrStartTime, s, err)
	}
	return t, nil
}
