// Package httpnorm canonicalizes request paths in front of an http.Handler,
// so routing and caching downstream see one spelling per logical path.
package httpnorm

import (
	"net/http"

	"github.com/urlpath/urlpath"
)

const (
	OutcomeClean      = "clean"
	OutcomeRewritten  = "rewritten"
	OutcomeRedirected = "redirected"
)

type Options struct {
	// Redirect answers with a redirect to the canonical path instead of
	// rewriting the request in place.
	Redirect bool
	// RedirectCode is the status used when Redirect is set. Defaults to 308.
	RedirectCode int
}

type Middleware struct {
	next    http.Handler
	opts    Options
	metrics *Metrics
}

func Handler(next http.Handler, opts Options) *Middleware {
	if opts.RedirectCode == 0 {
		opts.RedirectCode = http.StatusPermanentRedirect
	}
	return &Middleware{next: next, opts: opts}
}

func (m *Middleware) SetMetrics(metrics *Metrics) {
	m.metrics = metrics
}

func (m *Middleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if path == "" {
		path = "/"
	}

	canonical := urlpath.Normalize(path)
	if canonical == r.URL.Path {
		m.metrics.Observe(OutcomeClean)
		m.next.ServeHTTP(w, r)
		return
	}

	if m.opts.Redirect {
		m.metrics.Observe(OutcomeRedirected)
		target := canonical
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, m.opts.RedirectCode)
		return
	}

	m.metrics.Observe(OutcomeRewritten)
	clone := r.Clone(r.Context())
	clone.URL.Path = canonical
	m.next.ServeHTTP(w, clone)
}
