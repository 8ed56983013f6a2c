package hostrouter

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/metrics"
)

type tenantKey struct{}

// WithTenant stores a tenant label on ctx.
func WithTenant(ctx context.Context, tenant string) context.Context {
	return context.WithValue(ctx, tenantKey{}, tenant)
}

// TenantFromContext returns the tenant label set by Handler on a rewritten request.
func TenantFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(tenantKey{}).(string)
	return t, ok && t != ""
}

// Handler routes every request before it reaches next. Rewritten requests get
// the internal path and the tenant label on their context; the tenant never
// comes from anything the client can set directly.
func (r *Router) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		host := strings.ToLower(req.Host)
		d := r.Route(host, req.URL.Path, req.URL.RawQuery)
		metrics.RouteDecisions.WithLabelValues(d.Kind.String()).Inc()

		if d.Kind != Rewrite {
			next.ServeHTTP(w, req)
			return
		}

		path := d.InternalPath
		if req.URL.RawQuery != "" {
			path = strings.TrimSuffix(path, "?"+req.URL.RawQuery)
		}

		log.Debug().
			Str("host", host).
			Str("tenant", d.Tenant).
			Str("from", req.URL.Path).
			Str("to", path).
			Msg("[hostrouter] rewrite")

		rewritten := req.Clone(WithTenant(req.Context(), d.Tenant))
		rewritten.URL.Path = path
		rewritten.URL.RawPath = ""
		rewritten.RequestURI = rewritten.URL.RequestURI()
		next.ServeHTTP(w, rewritten)
	})
}
