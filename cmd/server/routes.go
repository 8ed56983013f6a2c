package main

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/config"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/db"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/hostrouter"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/http/api"
	adminapi "github.com/Nixie-Tech-LLC/masjidsite/internal/http/api/admin/endpoints"
	publicapi "github.com/Nixie-Tech-LLC/masjidsite/internal/http/api/public/endpoints"
	siteapi "github.com/Nixie-Tech-LLC/masjidsite/internal/http/api/site/endpoints"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/storage"
)

// Services are the collaborators the HTTP layer needs.
type Services struct {
	Store     db.Store
	Times     prayer.Source
	Storage   storage.Storage
	Templates *template.Template
}

// NewEngine returns a gin engine with zerolog request logging and recovery.
func NewEngine() *gin.Engine {
	r := gin.New()
	// a redirect would hand the internal tenant path back to the browser
	r.RedirectTrailingSlash = false
	r.Use(middleware.RequestLogger(), gin.Recovery())
	return r
}

// NewRouter builds the host router from cfg.
func NewRouter(cfg *config.Config) *hostrouter.Router {
	return hostrouter.New(hostrouter.Config{
		ReservedHosts:        cfg.ReservedHosts,
		ReservedPathPrefixes: cfg.ReservedPathPrefixes,
		TenantPrefix:         cfg.TenantPrefix,
	})
}

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, svc Services) {
	if svc.Templates != nil {
		r.SetHTMLTemplate(svc.Templates)
	}

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/public",
	},
		publicapi.PrayerModule(svc.Times),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: cfg.JWTSecret,
	},
		adminapi.TenantModule(svc.Store, svc.Times, svc.Storage),
	)

	// only reachable through a host rewrite
	api.MountGroup(r, api.GroupConfig{
		Prefix: NewRouter(cfg).TenantPrefix(),
	},
		siteapi.SiteModule(svc.Store, svc.Times),
	)

	if !cfg.UseSpaces {
		r.Static(uploadsURLPrefix, cfg.UploadDir)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}
