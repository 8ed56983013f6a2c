package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/http/api"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/http/api/public/packets"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"
)

type PrayerController struct {
	times prayer.Source
}

// PrayerModule mounts the unauthenticated zone lookup.
func PrayerModule(times prayer.Source) api.Module {
	ctl := &PrayerController{times: times}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/prayer-times", ctl.zonePrayerTimes)
	})
}

// GET /api/public/prayer-times?zone=SGR01
func (p *PrayerController) zonePrayerTimes(ctx *gin.Context) (any, *api.APIError) {
	zone := prayer.NormalizeZone(ctx.Query("zone"))
	if !prayer.ValidZone(zone) {
		return nil, api.NewError(http.StatusBadRequest, "invalid zone code")
	}

	table := p.times.Today(ctx.Request.Context(), zone)
	if table == nil {
		return nil, api.NewError(http.StatusNotFound, "prayer times unavailable")
	}
	return packets.ZonePrayerTimesResponse{
		Zone:  zone,
		Table: table,
		Next:  prayer.NextPrayer(table, p.times.Now()),
	}, nil
}
