package endpoints

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/db"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/http/api"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/http/api/admin/packets"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/model"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/storage"
)

// MaxLogoSize caps logo uploads.
const MaxLogoSize = 2 << 20

type TenantController struct {
	store   db.Store
	times   prayer.Source
	storage storage.Storage
}

func newTenantController(store db.Store, times prayer.Source, storage storage.Storage) *TenantController {
	return &TenantController{store: store, times: times, storage: storage}
}

// TenantModule mounts the authenticated /tenants/:subdomain endpoints.
func TenantModule(store db.Store, times prayer.Source, storage storage.Storage) api.Module {
	ctl := newTenantController(store, times, storage)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/tenants/:subdomain", ctl.getSettings)
		c.PUT("/tenants/:subdomain/prayer", ctl.updatePrayerSettings)
		c.GET("/tenants/:subdomain/prayer/preview", ctl.previewPrayerTimes)
		c.POST("/tenants/:subdomain/logo", ctl.uploadLogo)
	})
}

// ownedTenant loads :subdomain and checks user owns it.
func (t *TenantController) ownedTenant(ctx *gin.Context, user *model.User) (*model.Tenant, *api.APIError) {
	subdomain := ctx.Param("subdomain")
	tenant, err := t.store.GetTenantBySubdomain(ctx.Request.Context(), subdomain)
	if errors.Is(err, db.ErrTenantNotFound) {
		return nil, api.NewError(http.StatusNotFound, "tenant not found")
	}
	if err != nil {
		return nil, api.NewError(http.StatusInternalServerError, "could not load tenant")
	}
	if tenant.OwnerID != user.ID {
		log.Warn().Str("owner", tenant.OwnerID).Str("user", user.ID).Str("tenant", subdomain).Msg("[tenants] forbidden")
		return nil, api.NewError(http.StatusForbidden, "forbidden")
	}
	return tenant, nil
}

func settingsResponse(t *model.Tenant) packets.TenantSettingsResponse {
	return packets.TenantSettingsResponse{
		ID:            t.ID,
		Subdomain:     t.Subdomain,
		Name:          t.Name,
		ZoneCode:      t.ZoneCode,
		IqamahEnabled: t.IqamahEnabled,
		Iqamah: packets.IqamahResponse{
			Subuh:   t.IqamahSubuh,
			Zohor:   t.IqamahZohor,
			Asar:    t.IqamahAsar,
			Maghrib: t.IqamahMaghrib,
			Isyak:   t.IqamahIsyak,
		},
		LogoURL:   t.LogoURL,
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}

// GET /api/admin/tenants/:subdomain
func (t *TenantController) getSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	tenant, apiErr := t.ownedTenant(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	return settingsResponse(tenant), nil
}

func offsetOrDefault(v *int) int {
	if v == nil {
		return prayer.DefaultIqamahOffset
	}
	return *v
}

// PUT /api/admin/tenants/:subdomain/prayer
func (t *TenantController) updatePrayerSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdatePrayerSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.NewError(http.StatusBadRequest, err.Error())
	}

	zone := prayer.NormalizeZone(request.ZoneCode)
	if !prayer.ValidZone(zone) {
		return nil, api.NewError(http.StatusBadRequest, "invalid zone code")
	}

	offsets := prayer.IqamahOffsets{
		Enabled: request.IqamahEnabled,
		Subuh:   offsetOrDefault(request.Iqamah.Subuh),
		Zohor:   offsetOrDefault(request.Iqamah.Zohor),
		Asar:    offsetOrDefault(request.Iqamah.Asar),
		Maghrib: offsetOrDefault(request.Iqamah.Maghrib),
		Isyak:   offsetOrDefault(request.Iqamah.Isyak),
	}
	if err := offsets.Validate(); err != nil {
		return nil, api.NewError(http.StatusBadRequest, err.Error())
	}

	tenant, apiErr := t.ownedTenant(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	updatedAt, err := t.store.UpdateTenantPrayerSettings(ctx.Request.Context(), tenant.ID, zone, offsets)
	if err != nil {
		return nil, api.NewError(http.StatusInternalServerError, "could not update prayer settings")
	}
	log.Info().Str("tenant", tenant.Subdomain).Str("zone", zone).Msg("[tenants] prayer settings updated")

	tenant.ZoneCode = zone
	tenant.IqamahEnabled = offsets.Enabled
	tenant.IqamahSubuh = offsets.Subuh
	tenant.IqamahZohor = offsets.Zohor
	tenant.IqamahAsar = offsets.Asar
	tenant.IqamahMaghrib = offsets.Maghrib
	tenant.IqamahIsyak = offsets.Isyak
	tenant.UpdatedAt = updatedAt
	return settingsResponse(tenant), nil
}

// GET /api/admin/tenants/:subdomain/prayer/preview
func (t *TenantController) previewPrayerTimes(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	tenant, apiErr := t.ownedTenant(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	table := t.times.Today(ctx.Request.Context(), tenant.ZoneCode)
	if table == nil {
		return nil, api.NewError(http.StatusServiceUnavailable, "prayer times unavailable")
	}
	return packets.PreviewResponse{
		ZoneCode: tenant.ZoneCode,
		Table:    table,
		Schedule: prayer.BuildSchedule(table, tenant.Offsets()),
		Next:     prayer.NextPrayer(table, t.times.Now()),
	}, nil
}

// POST /api/admin/tenants/:subdomain/logo
func (t *TenantController) uploadLogo(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	tenant, apiErr := t.ownedTenant(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		log.Warn().Err(err).Msg("[tenants] logo upload without file")
		return nil, api.NewError(http.StatusBadRequest, "missing file")
	}
	if file.Size > MaxLogoSize {
		return nil, api.NewError(http.StatusRequestEntityTooLarge, "logo too large")
	}
	if !storage.IsImage(file.Filename) {
		return nil, api.NewError(http.StatusBadRequest, "logo must be an image")
	}

	url, err := t.storage.SaveFile(file, "tenants/"+tenant.Subdomain, file.Filename)
	if err != nil {
		log.Error().Err(err).Str("tenant", tenant.Subdomain).Msg("[tenants] failed to store logo")
		return nil, api.NewError(http.StatusInternalServerError, "could not store logo")
	}

	if err := t.store.UpdateTenantLogo(ctx.Request.Context(), tenant.ID, url); err != nil {
		return nil, api.NewError(http.StatusInternalServerError, "could not update logo")
	}
	return packets.LogoResponse{LogoURL: url}, nil
}
