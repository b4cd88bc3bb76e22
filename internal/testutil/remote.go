package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dalemusser/lwandasite/internal/app/system/remote"
)

// FakeRemote is an in-memory remote.Client for handler tests.
//
// Rows are kept per table in the order they should be returned; Select
// applies filters, then the range or limit, but does not sort. Objects are
// kept per "bucket/prefix" key.
type FakeRemote struct {
	mu sync.Mutex

	rows    map[string][]map[string]any
	objects map[string][]remote.Object

	// Errors returned by the matching operation when set.
	SelectErr error
	InsertErr error
	ListErr   error

	// OnList, when set, replaces the stored-object lookup.
	OnList func(ctx context.Context, bucket, prefix string) ([]remote.Object, error)

	selects []remote.Query
	inserts []Inserted
	lists   []string
}

// Inserted is one recorded Insert call.
type Inserted struct {
	Table  string
	Record map[string]any
}

// NewFakeRemote returns an empty FakeRemote.
func NewFakeRemote() *FakeRemote {
	return &FakeRemote{
		rows:    map[string][]map[string]any{},
		objects: map[string][]remote.Object{},
	}
}

// AddRows appends rows to table. Each row is converted through JSON, so
// structs with json tags and plain maps both work.
func (f *FakeRemote) AddRows(table string, rows ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range rows {
		f.rows[table] = append(f.rows[table], toMap(r))
	}
}

// AddObjects registers entries under bucket/prefix.
func (f *FakeRemote) AddObjects(bucket, prefix string, names ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := bucket + "/" + prefix
	for _, n := range names {
		f.objects[key] = append(f.objects[key], remote.Object{Name: n, ID: key + "/" + n})
	}
}

// Select implements remote.Client.
func (f *FakeRemote) Select(ctx context.Context, q remote.Query, dest any) error {
	f.mu.Lock()
	f.selects = append(f.selects, q)
	err := f.SelectErr
	rows := slices.Clone(f.rows[q.Table])
	f.mu.Unlock()

	if err != nil {
		return &remote.Error{Kind: remote.KindQueryFailed, Op: "select", Target: q.Table, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return &remote.Error{Kind: remote.KindQueryFailed, Op: "select", Target: q.Table, Err: err}
	}

	matched := rows[:0]
	for _, r := range rows {
		if matchAll(r, q.Filters) {
			matched = append(matched, r)
		}
	}

	switch {
	case q.Range != nil:
		from, to := q.Range.From, q.Range.To+1
		if from > len(matched) {
			from = len(matched)
		}
		if to > len(matched) {
			to = len(matched)
		}
		if to < from {
			to = from
		}
		matched = matched[from:to]
	case q.Limit > 0 && len(matched) > q.Limit:
		matched = matched[:q.Limit]
	}

	b, err := json.Marshal(matched)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dest)
}

// Insert implements remote.Client.
func (f *FakeRemote) Insert(ctx context.Context, table string, record any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserts = append(f.inserts, Inserted{Table: table, Record: toMap(record)})
	if f.InsertErr != nil {
		return &remote.Error{Kind: remote.KindInsertFailed, Op: "insert", Target: table, Err: f.InsertErr}
	}
	return nil
}

// ListObjects implements remote.Client.
func (f *FakeRemote) ListObjects(ctx context.Context, bucket, prefix string, opts remote.ListOptions) ([]remote.Object, error) {
	f.mu.Lock()
	f.lists = append(f.lists, bucket+"/"+prefix)
	hook := f.OnList
	err := f.ListErr
	objs := slices.Clone(f.objects[bucket+"/"+prefix])
	f.mu.Unlock()

	if hook != nil {
		return hook(ctx, bucket, prefix)
	}
	if err != nil {
		return nil, &remote.Error{Kind: remote.KindQueryFailed, Op: "list", Target: bucket, Err: err}
	}

	slices.SortFunc(objs, func(a, b remote.Object) int {
		if opts.Descending {
			return strings.Compare(b.Name, a.Name)
		}
		return strings.Compare(a.Name, b.Name)
	})
	limit := opts.Limit
	if limit <= 0 {
		limit = remote.DefaultListLimit
	}
	if len(objs) > limit {
		objs = objs[:limit]
	}
	return objs, nil
}

// PublicURL implements remote.Client.
func (f *FakeRemote) PublicURL(bucket, path string) string {
	return "https://storage.test/" + bucket + "/" + strings.TrimLeft(path, "/")
}

// Selects returns the recorded queries.
func (f *FakeRemote) Selects() []remote.Query {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.selects)
}

// Inserts returns the recorded inserts.
func (f *FakeRemote) Inserts() []Inserted {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.inserts)
}

// Lists returns the "bucket/prefix" of every ListObjects call.
func (f *FakeRemote) Lists() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.lists)
}

// ListCount returns how many times bucket/prefix was listed.
func (f *FakeRemote) ListCount(bucket, prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, l := range f.lists {
		if l == bucket+"/"+prefix {
			n++
		}
	}
	return n
}

// Provider wraps f in a remote.Provider.
func (f *FakeRemote) Provider() *remote.Provider {
	return remote.Static(f)
}

func toMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("testutil: cannot encode %T: %v", v, err))
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		panic(fmt.Sprintf("testutil: %T is not an object: %v", v, err))
	}
	return m
}

func matchAll(row map[string]any, filters []remote.Filter) bool {
	for _, f := range filters {
		if !match(row, f) {
			return false
		}
	}
	return true
}

func match(row map[string]any, f remote.Filter) bool {
	switch {
	case f.IsEq():
		v, ok := row[f.Column()]
		return ok && v != nil && fmt.Sprint(v) == f.Value()
	case f.IsNullCheck():
		v, ok := row[f.Column()]
		return !ok || v == nil
	case f.IsOr():
		for _, sub := range f.Any() {
			if match(row, sub) {
				return true
			}
		}
		return false
	}
	return true
}
