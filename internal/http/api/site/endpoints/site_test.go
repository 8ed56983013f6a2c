package endpoints

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/db"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/hostrouter"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/http/api"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/http/api/site/packets"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/model"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStore struct {
	db.Store
	tenants map[string]*model.Tenant
	err     error
}

func (f *fakeStore) GetTenantBySubdomain(_ context.Context, subdomain string) (*model.Tenant, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.tenants[subdomain]
	if !ok {
		return nil, db.ErrTenantNotFound
	}
	return t, nil
}

type fakeTimes struct {
	table *prayer.DailyTable
	now   time.Time
	zones []string
}

func (f *fakeTimes) Today(_ context.Context, zone string) *prayer.DailyTable {
	f.zones = append(f.zones, zone)
	return f.table
}

func (f *fakeTimes) Now() time.Time { return f.now }

func testTable() *prayer.DailyTable {
	return &prayer.DailyTable{
		Date: "17-Oct-2026", Hijri: "1448-04-26", Day: "Saturday",
		Subuh: "05:50", Syuruk: "07:05", Zohor: "13:15", Asar: "16:30", Maghrib: "19:20", Isyak: "20:35",
	}
}

func annur() *model.Tenant {
	logo := "/uploads/tenants/annur/logo.png"
	return &model.Tenant{
		ID: 1, Subdomain: "annur", Name: "Masjid An-Nur", ZoneCode: "SGR01",
		IqamahEnabled: true, IqamahSubuh: 20, IqamahZohor: 10, IqamahAsar: 10, IqamahMaghrib: 5, IqamahIsyak: 10,
		LogoURL: &logo,
	}
}

const pageTemplate = `{{define "site.html"}}{{.Name}}|{{.Date}}|{{if .Next}}{{.Next.Name}}{{end}}|{{len .Prayers}}{{end}}`

func setup(store db.Store, times prayer.Source) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("").Parse(pageTemplate)))
	api.MountGroup(r, api.GroupConfig{Prefix: "/_sites"}, SiteModule(store, times))
	return r
}

func request(r http.Handler, path, tenant string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if tenant != "" {
		req = req.WithContext(hostrouter.WithTenant(req.Context(), tenant))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func kl(h, m int) time.Time {
	return time.Date(2026, 10, 17, h, m, 0, 0, time.FixedZone("MYT", 8*60*60))
}

func TestPrayerTimes(t *testing.T) {
	times := &fakeTimes{table: testTable(), now: kl(14, 0)}
	r := setup(&fakeStore{tenants: map[string]*model.Tenant{"annur": annur()}}, times)

	w := request(r, "/_sites/prayer-times", "annur")
	require.Equal(t, http.StatusOK, w.Code)

	var resp packets.PrayerTimesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "annur", resp.Tenant.Subdomain)
	assert.Equal(t, "Masjid An-Nur", resp.Tenant.Name)
	require.NotNil(t, resp.Table)
	assert.Equal(t, "13:15", resp.Table.Zohor)
	require.Len(t, resp.Schedule, 6)
	assert.Equal(t, "06:10", resp.Schedule[0].Iqamah)
	assert.Equal(t, prayer.NotApplicable, resp.Schedule[1].Iqamah)
	require.NotNil(t, resp.Next)
	assert.Equal(t, prayer.Upcoming{Name: prayer.Asar, Time: "16:30"}, *resp.Next)
	assert.Equal(t, []string{"SGR01"}, times.zones)
}

func TestPrayerTimes_UnavailableStillOK(t *testing.T) {
	r := setup(&fakeStore{tenants: map[string]*model.Tenant{"annur": annur()}}, &fakeTimes{now: kl(14, 0)})

	w := request(r, "/_sites/prayer-times", "annur")
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "null", string(raw["table"]))
	assert.Equal(t, "null", string(raw["schedule"]))
	assert.Equal(t, "null", string(raw["next"]))
}

func TestPrayerTimes_UnknownTenant(t *testing.T) {
	r := setup(&fakeStore{tenants: map[string]*model.Tenant{}}, &fakeTimes{})

	w := request(r, "/_sites/prayer-times", "ghost")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPrayerTimes_NoTenantInContext(t *testing.T) {
	r := setup(&fakeStore{tenants: map[string]*model.Tenant{"annur": annur()}}, &fakeTimes{})

	w := request(r, "/_sites/prayer-times", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPrayerTimes_StoreFailure(t *testing.T) {
	r := setup(&fakeStore{err: errors.New("connection refused")}, &fakeTimes{})

	w := request(r, "/_sites/prayer-times", "annur")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHome(t *testing.T) {
	r := setup(&fakeStore{tenants: map[string]*model.Tenant{"annur": annur()}}, &fakeTimes{table: testTable(), now: kl(21, 0)})

	w := request(r, "/_sites/", "annur")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Masjid An-Nur|SATURDAY, OCTOBER 17, 2026|Subuh|6", w.Body.String())
}

func TestHome_UnavailableOmitsPrayers(t *testing.T) {
	r := setup(&fakeStore{tenants: map[string]*model.Tenant{"annur": annur()}}, &fakeTimes{now: kl(9, 0)})

	w := request(r, "/_sites/", "annur")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Masjid An-Nur|SATURDAY, OCTOBER 17, 2026||0", w.Body.String())
}

func TestHome_UnknownTenant(t *testing.T) {
	r := setup(&fakeStore{tenants: map[string]*model.Tenant{}}, &fakeTimes{})

	w := request(r, "/_sites/", "ghost")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPageData(t *testing.T) {
	tenant := annur()
	data := PageData(tenant, testTable(), kl(5, 0))

	assert.Equal(t, "Masjid An-Nur", data.Name)
	assert.Equal(t, "/uploads/tenants/annur/logo.png", data.LogoURL)
	assert.Equal(t, "1448-04-26", data.Hijri)
	assert.Equal(t, "SGR01", data.Zone)
	assert.Len(t, data.Prayers, 6)
	require.NotNil(t, data.Next)
	assert.Equal(t, prayer.Subuh, data.Next.Name)

	tenant.LogoURL = nil
	data = PageData(tenant, nil, kl(5, 0))
	assert.Empty(t, data.LogoURL)
	assert.Empty(t, data.Prayers)
	assert.Nil(t, data.Next)
}
