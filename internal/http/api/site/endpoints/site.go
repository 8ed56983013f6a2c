package endpoints

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/db"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/hostrouter"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/http/api"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/http/api/site/packets"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/model"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"
)

// SiteTemplate is the template name the home page renders.
const SiteTemplate = "site.html"

const pageDateLayout = "Monday, January 2, 2006"

type SiteController struct {
	store db.Store
	times prayer.Source
}

func newSiteController(store db.Store, times prayer.Source) *SiteController {
	return &SiteController{store: store, times: times}
}

// SiteModule mounts the tenant site. It only ever sees requests the host
// router rewrote, so the tenant comes from the request context.
func SiteModule(store db.Store, times prayer.Source) api.Module {
	ctl := newSiteController(store, times)
	return api.ModuleFunc(func(c *api.Controller) {
		c.Group.GET("/", ctl.home)
		c.PUBLIC_GET("/prayer-times", ctl.prayerTimes)
	})
}

func (s *SiteController) tenant(ctx *gin.Context) (*model.Tenant, *api.APIError) {
	subdomain, ok := hostrouter.TenantFromContext(ctx.Request.Context())
	if !ok {
		return nil, api.NewError(http.StatusNotFound, "not found")
	}

	tenant, err := s.store.GetTenantBySubdomain(ctx.Request.Context(), subdomain)
	if errors.Is(err, db.ErrTenantNotFound) {
		log.Debug().Str("tenant", subdomain).Msg("[site] unknown tenant")
		return nil, api.NewError(http.StatusNotFound, "site not found")
	}
	if err != nil {
		return nil, api.NewError(http.StatusInternalServerError, "could not load site")
	}
	return tenant, nil
}

// GET /
func (s *SiteController) home(ctx *gin.Context) {
	tenant, apiErr := s.tenant(ctx)
	if apiErr != nil {
		ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
		return
	}

	table := s.times.Today(ctx.Request.Context(), tenant.ZoneCode)
	ctx.HTML(http.StatusOK, SiteTemplate, PageData(tenant, table, s.times.Now()))
}

// GET /prayer-times
func (s *SiteController) prayerTimes(ctx *gin.Context) (any, *api.APIError) {
	tenant, apiErr := s.tenant(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	table := s.times.Today(ctx.Request.Context(), tenant.ZoneCode)
	return packets.PrayerTimesResponse{
		Tenant: packets.TenantResponse{
			Subdomain: tenant.Subdomain,
			Name:      tenant.Name,
			ZoneCode:  tenant.ZoneCode,
			LogoURL:   tenant.LogoURL,
		},
		Table:    table,
		Schedule: prayer.BuildSchedule(table, tenant.Offsets()),
		Next:     prayer.NextPrayer(table, s.times.Now()),
	}, nil
}

// PageData assembles the home page. The date shown is the table's own date
// when it parses, otherwise now's.
func PageData(tenant *model.Tenant, table *prayer.DailyTable, now time.Time) model.SitePageData {
	data := model.SitePageData{
		Name: tenant.Name,
		Zone: tenant.ZoneCode,
		Date: strings.ToUpper(now.Format(pageDateLayout)),
	}
	if tenant.LogoURL != nil {
		data.LogoURL = *tenant.LogoURL
	}
	if table == nil {
		return data
	}

	if day, err := time.Parse(prayer.ProviderDateLayout, table.Date); err == nil {
		data.Date = strings.ToUpper(day.Format(pageDateLayout))
	}
	data.Hijri = table.Hijri
	data.Prayers = prayer.BuildSchedule(table, tenant.Offsets())
	data.Next = prayer.NextPrayer(table, now)
	return data
}
