package hostrouter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testConfig() Config {
	return Config{
		ReservedHosts: []string{
			"masjidsite.my",
			"www.masjidsite.my",
			"app.masjidsite.my",
			"localhost:8080",
		},
		ReservedPathPrefixes: []string{"/api", "/admin", "/auth", "/static", "/uploads"},
		TenantPrefix:         "/_sites",
	}
}

func TestRoute_ReservedHostsAlwaysPassThrough(t *testing.T) {
	r := New(testConfig())
	paths := []string{"/", "/about", "/api/public/prayer-times", "/_sites/x", ""}
	queries := []string{"", "a=1", "zone=SGR01&x=y"}

	for _, h := range testConfig().ReservedHosts {
		for _, p := range paths {
			for _, q := range queries {
				d := r.Route(h, p, q)
				assert.Equal(t, PassThrough, d.Kind, "host=%q path=%q query=%q", h, p, q)
				assert.Empty(t, d.Tenant)
			}
		}
	}
}

func TestRoute(t *testing.T) {
	r := New(testConfig())

	cases := []struct {
		name  string
		host  string
		path  string
		query string
		want  Decision
	}{
		{
			name: "tenant root",
			host: "annur.masjidsite.my",
			path: "/",
			want: Decision{Kind: Rewrite, Tenant: "annur", InternalPath: "/_sites/"},
		},
		{
			name:  "tenant path with query",
			host:  "annur.masjidsite.my",
			path:  "/events",
			query: "page=2",
			want:  Decision{Kind: Rewrite, Tenant: "annur", InternalPath: "/_sites/events?page=2"},
		},
		{
			name: "www label",
			host: "www.othermosque.org",
			path: "/",
			want: Decision{Kind: PassThrough},
		},
		{
			name: "empty host",
			host: "",
			path: "/",
			want: Decision{Kind: PassThrough},
		},
		{
			name: "leading dot",
			host: ".masjidsite.my",
			path: "/",
			want: Decision{Kind: PassThrough},
		},
		{
			name: "reserved path on tenant host",
			host: "annur.masjidsite.my",
			path: "/api/public/prayer-times",
			want: Decision{Kind: PassThrough},
		},
		{
			name: "reserved prefix matches without separator",
			host: "annur.masjidsite.my",
			path: "/admin-panel",
			want: Decision{Kind: PassThrough},
		},
		{
			name: "already rewritten",
			host: "annur.masjidsite.my",
			path: "/_sites/events",
			want: Decision{Kind: PassThrough},
		},
		{
			name: "multi-level subdomain takes first label",
			host: "a.b.annur.masjidsite.my",
			path: "/",
			want: Decision{Kind: Rewrite, Tenant: "a", InternalPath: "/_sites/"},
		},
		{
			name: "tenant on local development host",
			host: "annur.localhost:8080",
			path: "/prayer-times",
			want: Decision{Kind: Rewrite, Tenant: "annur", InternalPath: "/_sites/prayer-times"},
		},
		{
			name: "reserved host port is part of the match",
			host: "localhost:3000",
			path: "/",
			want: Decision{Kind: Rewrite, Tenant: "localhost:3000", InternalPath: "/_sites/"},
		},
		{
			name: "matching is case sensitive",
			host: "MasjidSite.my",
			path: "/",
			want: Decision{Kind: Rewrite, Tenant: "MasjidSite", InternalPath: "/_sites/"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Route(tc.host, tc.path, tc.query))
		})
	}
}

func TestRoute_RewriteKeepsPathAsSuffix(t *testing.T) {
	r := New(testConfig())
	hosts := []string{"annur.masjidsite.my", "al-hidayah.masjidsite.my", "x.example.com"}
	paths := []string{"/", "/events", "/events/2026/raya", "/committee"}

	for _, h := range hosts {
		label := h[:strings.IndexByte(h, '.')]
		for _, p := range paths {
			d := r.Route(h, p, "")
			assert.Equal(t, Rewrite, d.Kind)
			assert.Equal(t, label, d.Tenant)
			assert.True(t, strings.HasSuffix(d.InternalPath, p), "internal path %q should end with %q", d.InternalPath, p)
			assert.True(t, strings.HasPrefix(d.InternalPath, "/_sites"))

			withQuery := r.Route(h, p, "q=1")
			assert.Equal(t, d.InternalPath+"?q=1", withQuery.InternalPath)
		}
	}
}

func TestRoute_NoDoubleRewrite(t *testing.T) {
	r := New(testConfig())
	first := r.Route("annur.masjidsite.my", "/events", "")
	assert.Equal(t, Rewrite, first.Kind)

	second := r.Route("annur.masjidsite.my", first.InternalPath, "")
	assert.Equal(t, PassThrough, second.Kind)
}

func TestRoute_CustomConfiguration(t *testing.T) {
	r := New(Config{
		ReservedHosts:        []string{"example.org"},
		ReservedPathPrefixes: []string{"/_next"},
		TenantPrefix:         "/tenant/",
	})

	assert.Equal(t, PassThrough, r.Route("example.org", "/", "").Kind)
	assert.Equal(t, PassThrough, r.Route("foo.example.org", "/_next/static/x.js", "").Kind)
	assert.Equal(t, Decision{Kind: Rewrite, Tenant: "foo", InternalPath: "/tenant/api"}, r.Route("foo.example.org", "/api", ""))
	assert.Equal(t, "/tenant", r.TenantPrefix())
}
