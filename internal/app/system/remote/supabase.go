package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/supabase-community/postgrest-go"
	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseConfig holds the settings for a hosted Supabase project.
type SupabaseConfig struct {
	URL     string // project URL, e.g. https://abc.supabase.co
	AnonKey string // public anon key
	Schema  string // PostgREST schema, default "public"

	// Transport is used for table requests. Nil means http.DefaultTransport.
	Transport http.RoundTripper
}

// Supabase is a Client backed by PostgREST for tables and Supabase
// Storage for buckets.
type Supabase struct {
	restURL    string
	storageURL string
	schema     string
	headers    map[string]string
	transport  http.RoundTripper
	storage    *storage_go.Client
}

// NewSupabase validates cfg and builds a client. A missing URL or key
// yields an error wrapping ErrConfigurationUnavailable.
func NewSupabase(cfg SupabaseConfig) (*Supabase, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	key := strings.TrimSpace(cfg.AnonKey)
	if base == "" {
		return nil, configErr("supabase_url is empty")
	}
	if key == "" {
		return nil, configErr("supabase_anon_key is empty")
	}
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, configErr("supabase_url is not an http(s) URL")
	}

	schema := cfg.Schema
	if schema == "" {
		schema = "public"
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	storageURL := base + "/storage/v1"
	return &Supabase{
		restURL:    base + "/rest/v1",
		storageURL: storageURL,
		schema:     schema,
		headers: map[string]string{
			"apikey":        key,
			"Authorization": "Bearer " + key,
		},
		transport: transport,
		storage:   storage_go.NewClient(storageURL, key, map[string]string{"apikey": key}),
	}, nil
}

// rest returns a PostgREST client whose requests carry ctx. A fresh client
// per call keeps a builder error on one request from leaking into others.
func (s *Supabase) rest(ctx context.Context) *postgrest.Client {
	pc := postgrest.NewClient(s.restURL, s.schema, s.headers)
	pc.Transport.Parent = contextTransport{ctx: ctx, next: s.transport}
	return pc
}

// Select implements Client.
func (s *Supabase) Select(ctx context.Context, q Query, dest any) error {
	fb := s.rest(ctx).From(q.Table).Select(strings.Join(q.Columns, ","), "", false)
	for _, f := range q.Filters {
		fb = applyPostgrestFilter(fb, f)
	}
	for _, o := range q.Order {
		fb = fb.Order(o.Column, &postgrest.OrderOpts{
			Ascending:  !o.Descending,
			NullsFirst: o.NullsFirst,
		})
	}
	switch {
	case q.Range != nil:
		fb = fb.Range(q.Range.From, q.Range.To, "")
	case q.Limit > 0:
		fb = fb.Limit(q.Limit, "")
	}

	if _, err := fb.ExecuteTo(dest); err != nil {
		return queryErr("select", q.Table, err)
	}
	return nil
}

func applyPostgrestFilter(fb *postgrest.FilterBuilder, f Filter) *postgrest.FilterBuilder {
	switch {
	case f.IsEq():
		return fb.Eq(f.Column(), f.Value())
	case f.IsNullCheck():
		return fb.Is(f.Column(), "null")
	case f.IsOr():
		parts := make([]string, len(f.Any()))
		for i, sub := range f.Any() {
			parts[i] = sub.String()
		}
		return fb.Or(strings.Join(parts, ","), "")
	}
	return fb
}

// Insert implements Client.
func (s *Supabase) Insert(ctx context.Context, table string, record any) error {
	body, err := json.Marshal(record)
	if err != nil {
		return insertErr(table, err)
	}
	_, _, err = s.rest(ctx).From(table).
		Insert(json.RawMessage(body), false, "", "minimal", "").
		Execute()
	if err != nil {
		return insertErr(table, err)
	}
	return nil
}

// ListObjects implements Client.
func (s *Supabase) ListObjects(ctx context.Context, bucket, prefix string, opts ListOptions) ([]Object, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	order := "asc"
	if opts.Descending {
		order = "desc"
	}

	body := storage_go.ListFileRequestBody{
		Limit:         limit,
		Offset:        0,
		SortByOptions: storage_go.SortBy{Column: "name", Order: order},
		Prefix:        prefix,
	}
	req, err := s.storage.NewRequest(http.MethodPost, s.storageURL+"/object/list/"+bucket, &body)
	if err != nil {
		return nil, queryErr("list", bucket, err)
	}

	var files []storage_go.FileObject
	if _, err := s.storage.Do(req.WithContext(ctx), &files); err != nil {
		return nil, queryErr("list", bucket, err)
	}

	out := make([]Object, 0, len(files))
	for _, f := range files {
		out = append(out, Object{Name: f.Name, ID: f.Id, UpdatedAt: f.UpdatedAt})
	}
	return out, nil
}

// PublicURL implements Client.
func (s *Supabase) PublicURL(bucket, path string) string {
	return s.storage.GetPublicUrl(bucket, strings.TrimLeft(path, "/")).SignedURL
}

// contextTransport attaches a request-scoped context to requests issued by
// libraries that do not accept one.
type contextTransport struct {
	ctx  context.Context
	next http.RoundTripper
}

func (t contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.next.RoundTrip(req.WithContext(t.ctx))
}
