package remote

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig configures the self-hosted backend.
type MongoConfig struct {
	DB *mongo.Database

	// MediaRoot is the directory holding one subdirectory per bucket.
	MediaRoot string
	// Media derives public URLs for files under MediaRoot.
	Media storage.Store
}

// Mongo is a Client backed by MongoDB collections for tables and a local
// media directory for buckets.
//
// MongoDB orders null and missing values below every other value, so a
// descending sort puts nulls last and an ascending sort puts them first.
// Order.NullsFirst is not consulted.
type Mongo struct {
	db        *mongo.Database
	mediaRoot string
	media     storage.Store
}

// NewMongo validates cfg and builds a client.
func NewMongo(cfg MongoConfig) (*Mongo, error) {
	if cfg.DB == nil {
		return nil, configErr("mongo database is not connected")
	}
	if cfg.MediaRoot == "" || cfg.Media == nil {
		return nil, configErr("media_path is empty")
	}
	return &Mongo{db: cfg.DB, mediaRoot: cfg.MediaRoot, media: cfg.Media}, nil
}

// Select implements Client.
func (m *Mongo) Select(ctx context.Context, q Query, dest any) error {
	if q.Range != nil && q.Range.Len() == 0 {
		return queryErr("select", q.Table, errors.New("empty range"))
	}

	opts := options.Find()
	if len(q.Columns) > 0 {
		proj := bson.D{{Key: "_id", Value: 0}}
		for _, c := range q.Columns {
			proj = append(proj, bson.E{Key: c, Value: 1})
		}
		opts.SetProjection(proj)
	}
	if len(q.Order) > 0 {
		sort := bson.D{}
		for _, o := range q.Order {
			dir := 1
			if o.Descending {
				dir = -1
			}
			sort = append(sort, bson.E{Key: o.Column, Value: dir})
		}
		opts.SetSort(sort)
	}
	switch {
	case q.Range != nil:
		opts.SetSkip(int64(q.Range.From))
		opts.SetLimit(int64(q.Range.Len()))
	case q.Limit > 0:
		opts.SetLimit(int64(q.Limit))
	}

	cur, err := m.db.Collection(q.Table).Find(ctx, mongoFilter(q.Filters), opts)
	if err != nil {
		return queryErr("select", q.Table, err)
	}
	if err := cur.All(ctx, dest); err != nil {
		return queryErr("select", q.Table, err)
	}
	return nil
}

func mongoFilter(filters []Filter) bson.M {
	switch len(filters) {
	case 0:
		return bson.M{}
	case 1:
		return mongoPredicate(filters[0])
	}
	all := bson.A{}
	for _, f := range filters {
		all = append(all, mongoPredicate(f))
	}
	return bson.M{"$and": all}
}

func mongoPredicate(f Filter) bson.M {
	switch {
	case f.IsEq():
		return bson.M{f.Column(): f.Value()}
	case f.IsNullCheck():
		// matches both explicit null and a missing field
		return bson.M{f.Column(): nil}
	case f.IsOr():
		anyOf := bson.A{}
		for _, sub := range f.Any() {
			anyOf = append(anyOf, mongoPredicate(sub))
		}
		return bson.M{"$or": anyOf}
	}
	return bson.M{}
}

// Insert implements Client. A created_at timestamp is added when the record
// has none, matching the column default on the hosted tables.
func (m *Mongo) Insert(ctx context.Context, table string, record any) error {
	raw, err := bson.Marshal(record)
	if err != nil {
		return insertErr(table, err)
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return insertErr(table, err)
	}
	hasCreated := false
	for _, e := range doc {
		if e.Key == "created_at" {
			hasCreated = true
			break
		}
	}
	if !hasCreated {
		doc = append(doc, bson.E{Key: "created_at", Value: time.Now().UTC()})
	}
	if _, err := m.db.Collection(table).InsertOne(ctx, doc); err != nil {
		return insertErr(table, err)
	}
	return nil
}

// ListObjects implements Client. A missing folder lists as empty.
func (m *Mongo) ListObjects(ctx context.Context, bucket, prefix string, opts ListOptions) ([]Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, queryErr("list", bucket, err)
	}
	dir, err := m.resolve(bucket, prefix)
	if err != nil {
		return nil, queryErr("list", bucket, err)
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []Object{}, nil
	}
	if err != nil {
		return nil, queryErr("list", bucket, err)
	}

	entries = slices.DeleteFunc(entries, func(e fs.DirEntry) bool {
		return strings.HasPrefix(e.Name(), ".")
	})
	// os.ReadDir sorts by name ascending.
	if opts.Descending {
		slices.Reverse(entries)
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	out := make([]Object, 0, len(entries))
	for _, e := range entries {
		obj := Object{Name: e.Name()}
		if !e.IsDir() {
			obj.ID = path.Join(bucket, prefix, e.Name())
			if info, err := e.Info(); err == nil {
				obj.UpdatedAt = info.ModTime().UTC().Format(time.RFC3339)
			}
		}
		out = append(out, obj)
	}
	return out, nil
}

// resolve maps bucket/prefix to a directory, refusing paths that escape
// the media root.
func (m *Mongo) resolve(bucket, prefix string) (string, error) {
	root, err := filepath.Abs(m.mediaRoot)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, filepath.FromSlash(bucket), filepath.FromSlash(prefix))
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.New("path escapes media root")
	}
	return dir, nil
}

// PublicURL implements Client.
func (m *Mongo) PublicURL(bucket, p string) string {
	return m.media.URL(path.Join(bucket, strings.TrimLeft(p, "/")))
}
