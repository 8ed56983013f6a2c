// Package hostrouter decides, from the host header and path alone, whether a
// request belongs to the platform itself or to one mosque's public site.
package hostrouter

import "strings"

// Kind tags a Decision.
type Kind int

const (
	PassThrough Kind = iota
	Rewrite
)

func (k Kind) String() string {
	if k == Rewrite {
		return "rewrite"
	}
	return "pass_through"
}

// Decision is the router's output. Tenant and InternalPath are only set
// when Kind is Rewrite.
type Decision struct {
	Kind         Kind
	Tenant       string
	InternalPath string
}

// Config holds the closed sets the router matches against.
type Config struct {
	// exact host matches, port included when relevant ("localhost:8080")
	ReservedHosts []string
	// path prefixes served by the platform on every host
	ReservedPathPrefixes []string
	// internal path prefix tenant content is mounted under
	TenantPrefix string
}

type Router struct {
	hosts    map[string]struct{}
	prefixes []string
	tenant   string
}

func New(cfg Config) *Router {
	hosts := make(map[string]struct{}, len(cfg.ReservedHosts))
	for _, h := range cfg.ReservedHosts {
		hosts[h] = struct{}{}
	}
	prefixes := make([]string, 0, len(cfg.ReservedPathPrefixes))
	for _, p := range cfg.ReservedPathPrefixes {
		if p != "" {
			prefixes = append(prefixes, p)
		}
	}
	return &Router{
		hosts:    hosts,
		prefixes: prefixes,
		tenant:   strings.TrimSuffix(cfg.TenantPrefix, "/"),
	}
}

// Route classifies a request. host must already be lowercased by the caller.
// Only the first DNS label is ever used as the tenant, so a.b.example.com
// resolves to tenant "a".
func (r *Router) Route(host, path, query string) Decision {
	if _, ok := r.hosts[host]; ok {
		return Decision{Kind: PassThrough}
	}

	label := host
	if i := strings.IndexByte(host, '.'); i >= 0 {
		label = host[:i]
	}
	if label == "" || label == "www" {
		return Decision{Kind: PassThrough}
	}

	for _, p := range r.prefixes {
		if strings.HasPrefix(path, p) {
			return Decision{Kind: PassThrough}
		}
	}
	if r.tenant != "" && strings.HasPrefix(path, r.tenant) {
		return Decision{Kind: PassThrough}
	}

	internal := r.tenant + path
	if query != "" {
		internal += "?" + query
	}
	return Decision{Kind: Rewrite, Tenant: label, InternalPath: internal}
}

// TenantPrefix returns the internal prefix rewritten paths start with.
func (r *Router) TenantPrefix() string {
	return r.tenant
}
