package mongosync

import (
	"context"
	"crypto/rand"

	"mongosync/pkg/document"
	"mongosync/pkg/storage/generic"
)

// memoryDatabase is an in-memory generic.Database that assigns generated ids on insert
type memoryDatabase struct {
	name        string
	order       []string
	collections map[string]*memoryCollection
}

func newMemoryDatabase(name string) *memoryDatabase {
	return &memoryDatabase{name: name, collections: map[string]*memoryCollection{}}
}

func (m *memoryDatabase) ListCollectionNames(ctx context.Context) ([]string, error) {
	return append([]string(nil), m.order...), nil
}

func (m *memoryDatabase) Collection(name string) generic.Collection {
	return m.collection(name)
}

func (m *memoryDatabase) Close() error { return nil }

func (m *memoryDatabase) collection(name string) *memoryCollection {
	c, ok := m.collections[name]
	if !ok {
		c = &memoryCollection{name: name}
		m.collections[name] = c
		m.order = append(m.order, name)
	}
	return c
}

type memoryCollection struct {
	name      string
	docs      []document.Document
	insertErr error
	inserts   int
}

func (c *memoryCollection) Find(ctx context.Context, fn func(document.Document) error) error {
	for _, doc := range c.docs {
		if err := fn(doc); err != nil {
			return err
		}
	}
	return nil
}

func (c *memoryCollection) InsertMany(ctx context.Context, docs []document.Document) (int, error) {
	if c.insertErr != nil {
		return 0, c.insertErr
	}
	c.inserts++
	for _, doc := range docs {
		if _, ok := doc.Get(document.IDField); !ok {
			var id [12]byte
			_, _ = rand.Read(id[:])
			doc = append(document.Document{{Key: document.IDField, Value: document.GeneratedID(id)}}, doc...)
		}
		c.docs = append(c.docs, doc)
	}
	return len(docs), nil
}

// fakeMirror records pushes and serves pulls from a callback
type fakeMirror struct {
	pushed   []string
	pulled   bool
	pullErr  error
	onPull   func(destDir string)
	pushErrs map[string]error
}

func (f *fakeMirror) Push(database string, files []string) map[string]error {
	f.pushed = append(f.pushed, files...)
	return f.pushErrs
}

func (f *fakeMirror) Pull(database string, destDir string) ([]string, error) {
	f.pulled = true
	if f.pullErr != nil {
		return nil, f.pullErr
	}
	if f.onPull != nil {
		f.onPull(destDir)
	}
	return nil, nil
}
