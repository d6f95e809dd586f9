package source

import (
	"context"
	"fmt"
	"strings"

	oerrors "github.com/alphasquad/create-storefront/internal/errors"
	"github.com/alphasquad/create-storefront/internal/output"
	"github.com/alphasquad/create-storefront/internal/schema"
	"github.com/alphasquad/create-storefront/internal/templates"
)

// DefaultBaseURL serves raw files from the template repositories.
const DefaultBaseURL = "https://raw.githubusercontent.com"

// Document paths inside a template repository.
const (
	SchemaPath = "template/config.schema.json"
	FlatPath   = ".env.example"
)

// OriginBundled marks a flat document that came from the CLI itself.
const OriginBundled = "bundled"

// Branches are tried in order; the first usable document wins.
var Branches = []string{"main", "master"}

// LoaderOptions configures a Loader.
type LoaderOptions struct {
	// Fetcher retrieves remote documents. Defaults to an HTTPFetcher.
	Fetcher Fetcher

	// BaseURL is the raw-content host. Defaults to DefaultBaseURL.
	BaseURL string
}

// Loader walks the fallback chain for a template's configuration documents.
// Every remote failure is treated as "not found" and the next location is
// tried; nothing is retried.
type Loader struct {
	fetcher Fetcher
	baseURL string
}

// NewLoader creates a Loader.
func NewLoader(opts LoaderOptions) *Loader {
	l := &Loader{fetcher: opts.Fetcher, baseURL: strings.TrimRight(opts.BaseURL, "/")}
	if l.fetcher == nil {
		l.fetcher = NewHTTPFetcher(DefaultTimeout)
	}
	if l.baseURL == "" {
		l.baseURL = DefaultBaseURL
	}
	return l
}

// Result is the configuration surface found for a template.
type Result struct {
	// Entries is the normalized entry list, in document order.
	Entries []schema.Entry

	// Format is the document shape the entries came from.
	Format schema.Format

	// Origin is the URL of the document, or OriginBundled.
	Origin string
}

// Load fetches and normalizes the configuration surface of a template. The
// flat document is only fetched when the structured schema yields no entries.
func (l *Loader) Load(ctx context.Context, d templates.Descriptor) (*Result, error) {
	doc, origin := l.LoadSchema(ctx, d)

	entries, format, ok := schema.Normalize(doc, func() string {
		text, flatOrigin := l.LoadFlat(ctx, d)
		origin = flatOrigin
		return text
	})
	if !ok {
		return nil, oerrors.NewSourceUnavailableError(d.ID.String())
	}

	output.Debug("configuration surface loaded",
		"template", d.ID,
		"format", format,
		"origin", origin,
		"entries", len(entries))

	return &Result{Entries: entries, Format: format, Origin: origin}, nil
}

// LoadSchema returns the first structured schema that can be fetched and
// decoded as a JSON object, and its URL. It returns nil when none is found.
func (l *Loader) LoadSchema(ctx context.Context, d templates.Descriptor) (*schema.Object, string) {
	for _, branch := range Branches {
		url := l.URL(d, branch, SchemaPath)
		if doc, ok := l.FetchSchema(ctx, url); ok {
			return doc, url
		}
	}
	return nil, ""
}

// LoadFlat returns the first non-blank remote flat document and its URL,
// falling back to the template's bundled document.
func (l *Loader) LoadFlat(ctx context.Context, d templates.Descriptor) (string, string) {
	for _, branch := range Branches {
		url := l.URL(d, branch, FlatPath)
		if text, ok := l.FetchText(ctx, url); ok && strings.TrimSpace(text) != "" {
			return text, url
		}
	}

	output.Debug("using bundled env example", "template", d.ID)
	return d.FallbackEnvExample(), OriginBundled
}

// FetchText fetches a document as text. Any failure is reported as absent.
func (l *Loader) FetchText(ctx context.Context, url string) (string, bool) {
	body, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		output.Debug("source absent", "url", url, "error", err)
		return "", false
	}
	return string(body), true
}

// FetchSchema fetches a document and decodes it as a JSON object. Transport
// failures and malformed payloads are both reported as absent.
func (l *Loader) FetchSchema(ctx context.Context, url string) (*schema.Object, bool) {
	text, ok := l.FetchText(ctx, url)
	if !ok {
		return nil, false
	}

	doc, err := schema.ParseDocument([]byte(text))
	if err != nil {
		output.Debug("source absent", "url", url, "error", err)
		return nil, false
	}
	return doc, true
}

// URL builds the raw-content URL of a file on a branch of a template repository.
func (l *Loader) URL(d templates.Descriptor, branch, path string) string {
	return fmt.Sprintf("%s/%s/%s/%s", l.baseURL, d.Repository, branch, path)
}
