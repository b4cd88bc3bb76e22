// Package remote is the boundary between the site and its hosted backend.
//
// A Client runs table queries and single-row inserts, lists objects in
// storage buckets, and derives public object URLs. Views never build a
// Client themselves: they ask a Provider, which constructs one lazily and
// reports ErrConfigurationUnavailable when the backend is not configured.
package remote

import (
	"context"
	"strings"
)

// Client is the surface every backend implementation provides.
type Client interface {
	// Select runs q and decodes the rows into dest, which must be a pointer
	// to a slice. Zero rows is a valid result, not an error.
	Select(ctx context.Context, q Query, dest any) error

	// Insert writes record as a single row of table.
	Insert(ctx context.Context, table string, record any) error

	// ListObjects returns the entries directly inside prefix in bucket.
	// The listing is flat: nested folders are not descended into.
	ListObjects(ctx context.Context, bucket, prefix string, opts ListOptions) ([]Object, error)

	// PublicURL derives the public URL of an object. It makes no network
	// call and does not check that the object exists.
	PublicURL(bucket, path string) string
}

// Query describes a read against one table.
type Query struct {
	Table   string
	Columns []string // empty selects every column
	Filters []Filter // combined with AND
	Order   []Order  // applied in order
	Limit   int      // 0 means no limit; ignored when Range is set
	Range   *Range
}

// Range selects rows From..To inclusive, counted from zero.
type Range struct {
	From int
	To   int
}

// Len returns the number of rows the range spans.
func (r Range) Len() int {
	if r.To < r.From {
		return 0
	}
	return r.To - r.From + 1
}

// Order is one sort key.
type Order struct {
	Column     string
	Descending bool
	NullsFirst bool
}

// Desc sorts column descending with nulls last.
func Desc(column string) Order {
	return Order{Column: column, Descending: true}
}

// Asc sorts column ascending with nulls last.
func Asc(column string) Order {
	return Order{Column: column}
}

type filterOp int

const (
	opEq filterOp = iota
	opIsNull
	opOr
)

// Filter is a row predicate. Build one with Eq, IsNull, or Or.
type Filter struct {
	op     filterOp
	column string
	value  string
	any    []Filter
}

// Eq matches rows where column equals value.
func Eq(column, value string) Filter {
	return Filter{op: opEq, column: column, value: value}
}

// IsNull matches rows where column is null (or, for document stores,
// absent).
func IsNull(column string) Filter {
	return Filter{op: opIsNull, column: column}
}

// Or matches rows satisfying at least one of filters.
func Or(filters ...Filter) Filter {
	return Filter{op: opOr, any: filters}
}

// Column returns the column the filter tests, or "" for Or.
func (f Filter) Column() string { return f.column }

// Value returns the comparison value of an Eq filter.
func (f Filter) Value() string { return f.value }

// Any returns the alternatives of an Or filter.
func (f Filter) Any() []Filter { return f.any }

// IsEq reports whether f was built with Eq.
func (f Filter) IsEq() bool { return f.op == opEq }

// IsNullCheck reports whether f was built with IsNull.
func (f Filter) IsNullCheck() bool { return f.op == opIsNull }

// IsOr reports whether f was built with Or.
func (f Filter) IsOr() bool { return f.op == opOr }

// String renders f in PostgREST filter syntax, e.g. "status.eq.published"
// or "or(status.is.null,status.eq.published)".
func (f Filter) String() string {
	switch f.op {
	case opEq:
		return f.column + ".eq." + f.value
	case opIsNull:
		return f.column + ".is.null"
	case opOr:
		parts := make([]string, len(f.any))
		for i, sub := range f.any {
			parts[i] = sub.String()
		}
		return "or(" + strings.Join(parts, ",") + ")"
	}
	return ""
}

// ListOptions controls an object listing.
type ListOptions struct {
	Limit      int  // 0 uses DefaultListLimit
	Descending bool // sort by name descending instead of ascending
}

// DefaultListLimit is the listing size used when ListOptions.Limit is 0.
const DefaultListLimit = 100

// Object is one entry of a bucket listing.
type Object struct {
	Name      string
	ID        string // empty for folder placeholders
	UpdatedAt string
}
