package selector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLister struct {
	names []string
	err   error
	calls int
}

func (s *staticLister) ListCollectionNames(ctx context.Context) ([]string, error) {
	s.calls++
	return s.names, s.err
}

func TestParseExcludes(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		contains []string
		missing  []string
	}{
		{"empty", "", nil, []string{"", "logs"}},
		{"single", "logs", []string{"logs"}, []string{"log"}},
		{"multiple", "logs,audit", []string{"logs", "audit"}, []string{"logs,audit"}},
		{"whitespace is kept", "logs, audit", []string{"logs", " audit"}, []string{"audit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			excludes := ParseExcludes(tt.csv)
			for _, name := range tt.contains {
				assert.True(t, excludes.Contains(name), "should contain %q", name)
			}
			for _, name := range tt.missing {
				assert.False(t, excludes.Contains(name), "should not contain %q", name)
			}
		})
	}
}

func TestForExport_FiltersExcludes(t *testing.T) {
	lister := &staticLister{names: []string{"users", "logs", "orders", "audit"}}

	got, err := ForExport(context.Background(), lister, "", ParseExcludes("logs,audit"))
	require.NoError(t, err)
	assert.Equal(t, []string{"users", "orders"}, got)
}

func TestForExport_NoExcludes(t *testing.T) {
	lister := &staticLister{names: []string{"b", "a", "c"}}

	got, err := ForExport(context.Background(), lister, "", ParseExcludes(""))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, got, "enumeration order is kept")
}

func TestForExport_ExplicitBypassesExcludes(t *testing.T) {
	lister := &staticLister{names: []string{"widgets", "gadgets"}}

	got, err := ForExport(context.Background(), lister, "widgets", ParseExcludes("widgets"))
	require.NoError(t, err)
	assert.Equal(t, []string{"widgets"}, got)
	assert.Zero(t, lister.calls, "explicit collection does not list the database")
}

func TestForExport_ExcludeWithWhitespaceDoesNotMatch(t *testing.T) {
	lister := &staticLister{names: []string{"users", "logs"}}

	got, err := ForExport(context.Background(), lister, "", ParseExcludes("users, logs"))
	require.NoError(t, err)
	assert.Equal(t, []string{"logs"}, got)
}

func TestForExport_ListError(t *testing.T) {
	lister := &staticLister{err: errors.New("connection reset")}

	_, err := ForExport(context.Background(), lister, "", ParseExcludes(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestForImport(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		excludes string
		want     []string
	}{
		{"filters non-json and excludes", []string{"a.json", "b.txt", "c.json"}, "c", []string{"a"}},
		{"keeps listing order", []string{"z.json", "a.json"}, "", []string{"z", "a"}},
		{"dotted collection names", []string{"system.profile.json"}, "", []string{"system.profile"}},
		{"exclude matches stem only", []string{"a.json"}, "a.json", []string{"a"}},
		{"json inside name", []string{"a.json.bak", "notes.jsonl"}, "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForImport(tt.files, ParseExcludes(tt.excludes)))
		})
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "users.json", FileName("users"))

	name, ok := CollectionName("users.json")
	assert.True(t, ok)
	assert.Equal(t, "users", name)

	_, ok = CollectionName("users.txt")
	assert.False(t, ok)
}
