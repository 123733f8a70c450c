package mongosync

import (
	"time"

	"mongosync/internal/config"
)

// UnitResult is the outcome of exporting one collection or importing one file
type UnitResult struct {
	// Name is the collection name
	Name string
	// File is the snapshot file path
	File     string
	Count    int
	Err      error
	Duration time.Duration
}

func (u UnitResult) OK() bool {
	return u.Err == nil
}

// Report aggregates the units of one run
type Report struct {
	Mode    config.Mode
	Units   []UnitResult
	Elapsed time.Duration
	// MirrorErrors holds failed uploads keyed by snapshot file path
	MirrorErrors map[string]error
}

// Documents is the number of documents written or inserted. It includes the
// documents a failed import stored before its insert stopped.
func (r *Report) Documents() int {
	total := 0
	for _, u := range r.Units {
		total += u.Count
	}
	return total
}

func (r *Report) Failed() []UnitResult {
	var failed []UnitResult
	for _, u := range r.Units {
		if !u.OK() {
			failed = append(failed, u)
		}
	}
	return failed
}

// Unit returns the result for a collection name
func (r *Report) Unit(name string) (UnitResult, bool) {
	for _, u := range r.Units {
		if u.Name == name {
			return u, true
		}
	}
	return UnitResult{}, false
}
