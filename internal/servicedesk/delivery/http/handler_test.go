package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/skavtech/ict-platform/internal/servicedesk/domain"
	"github.com/skavtech/ict-platform/internal/servicedesk/repository"
	"github.com/skavtech/ict-platform/internal/servicedesk/usecase/command"
	"github.com/skavtech/ict-platform/internal/servicedesk/usecase/query"
	"github.com/skavtech/ict-platform/pkg/auth"
)

func init() {
	auth.Configure("servicedesk-handler-test", time.Hour)
}

type fixture struct {
	router     *mux.Router
	devices    *repository.MemoryDeviceRepository
	warranties *repository.MemoryWarrantyRepository
	fleet      *repository.MemoryFleetRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		devices:    repository.NewMemoryDeviceRepository(),
		warranties: repository.NewMemoryWarrantyRepository(),
		fleet:      repository.NewMemoryFleetRepository(),
	}
	tickets := repository.NewMemoryRepairTicketRepository()

	h := NewServiceDeskHandler(
		command.NewCreateDeviceHandler(f.devices),
		command.NewUpdateDeviceHandler(f.devices),
		command.NewCreateWarrantyHandler(f.warranties),
		command.NewCreateRepairHandler(tickets),
		command.NewUpdateRepairStatusHandler(tickets),
		command.NewAddFleetDeviceHandler(f.fleet),
		query.NewListDevicesHandler(f.devices),
		query.NewBoardStatsHandler(f.devices),
		query.NewLookupWarrantyHandler(f.warranties),
		query.NewGetRepairHandler(tickets),
		query.NewListFleetHandler(f.fleet),
		query.NewFleetStatsHandler(f.fleet),
		prometheus.NewRegistry(),
	)
	f.router = mux.NewRouter()
	h.RegisterRoutes(f.router)
	return f
}

func (f *fixture) do(t *testing.T, method, path, role string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		token, err := auth.GenerateToken(1, role+"-user", role)
		assert.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

type envelope[T any] struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  []domain.FieldError `json:"errors"`
	Data    T                   `json:"data"`
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var v envelope[T]
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestWarrantyLookup(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/warranties", "admin", map[string]any{
		"serialNumber":  "DL7420-CORP-001",
		"productId":     1,
		"purchaseDate":  time.Now().AddDate(-1, 0, 0).Format(time.DateOnly),
		"expiryDate":    time.Now().AddDate(0, 0, 10).Format(time.RFC3339),
		"coverage":      "3-Year Hardware & Software Support",
		"invoiceNumber": "INV-2023-001",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	check.True(t, decodeEnvelope[domain.Warranty](t, rec).Data.IsActive)

	rec = f.do(t, http.MethodGet, "/api/warranty/DL7420-CORP-001", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope[domain.WarrantyLookup](t, rec)
	check.Equal(t, domain.WarrantyActive, body.Data.Status)
	check.True(t, body.Data.DaysRemaining >= 9 && body.Data.DaysRemaining <= 10)
	check.Equal(t, "INV-2023-001", body.Data.InvoiceNumber)

	rec = f.do(t, http.MethodGet, "/api/warranty/NON-EXISTENT", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	check.Equal(t, "Warranty not found for this serial number", decodeEnvelope[any](t, rec).Error)
}

func TestCreateWarrantyRequiresAdmin(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/warranties", "technician", map[string]any{"serialNumber": "S"})
	check.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/warranties", "admin", map[string]any{"serialNumber": "S", "purchaseDate": "15/03/2023"})
	check.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/warranties", "admin", map[string]any{"serialNumber": "S"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	check.Equal(t, 3, len(decodeEnvelope[any](t, rec).Errors))
}

func TestRepairTicketFlow(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/repairs", "", map[string]any{
		"serialNumber":     "DL7420-CORP-001",
		"deviceModel":      "Dell Latitude 7420",
		"issueDescription": "Screen flickering issue",
		"customerInfo":     map[string]string{"name": "John Doe", "phone": "+254700123456"},
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	created := decodeEnvelope[domain.RepairTicket](t, rec).Data
	check.True(t, regexp.MustCompile(`^RPR-\d{4}-[0-9A-F]{6}$`).MatchString(created.TicketID))
	check.Equal(t, domain.RepairReceived, created.Status)
	check.Equal(t, "John Doe", created.CustomerInfo.Data().Name)

	path := "/api/repairs/" + created.TicketID
	rec = f.do(t, http.MethodPatch, path+"/status", "", map[string]string{"status": "diagnosed"})
	check.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = f.do(t, http.MethodPatch, path+"/status", "customer", map[string]string{"status": "diagnosed"})
	check.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodPatch, path+"/status", "technician", map[string]string{"status": "diagnosed", "notes": "Display cable"})
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(t, http.MethodPatch, path+"/status", "technician", map[string]string{"status": "done"})
	check.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	ticket := decodeEnvelope[domain.RepairTicket](t, rec).Data
	check.Equal(t, domain.RepairDiagnosed, ticket.Status)
	history := ticket.StatusHistory.Data()
	assert.Equal(t, 2, len(history))
	check.Equal(t, "Repair request submitted", history[0].Notes)
	check.Equal(t, "Display cable", history[1].Notes)

	rec = f.do(t, http.MethodGet, "/api/repairs/RPR-2024-000000", "", nil)
	check.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRepairTicketValidation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/repairs", "", map[string]any{"serialNumber": "S"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope[any](t, rec)
	check.Equal(t, "Invalid request data", body.Error)
	check.Equal(t, 2, len(body.Errors))
}

func TestIntakeBoard(t *testing.T) {
	f := newFixture(t)

	devices := []map[string]any{
		{"serialNumber": "DL7420-2023-001", "model": "Dell Latitude 7420", "brand": "Dell", "deviceType": "laptop", "status": "repaired", "assignedTechnician": "John Smith"},
		{"serialNumber": "HP850-2023-025", "model": "HP EliteBook 850", "brand": "HP", "deviceType": "laptop", "status": "ready", "assignedTechnician": "Sarah Johnson"},
		{"serialNumber": "TRD-1", "model": "MacBook Pro 14", "brand": "Apple", "deviceType": "laptop"},
	}
	for _, d := range devices {
		rec := f.do(t, http.MethodPost, "/api/admin/devices", "admin", d)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := f.do(t, http.MethodPost, "/api/admin/devices", "admin", devices[0])
	check.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/admin/devices?technician=John%20Smith", "admin", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	john := decodeEnvelope[[]domain.Device](t, rec).Data
	assert.Equal(t, 1, len(john))
	check.Equal(t, "DL7420-2023-001", john[0].SerialNumber)

	rec = f.do(t, http.MethodPatch, "/api/admin/devices/1", "admin", map[string]any{"status": "qc", "repairNotes": "Screen replacement completed"})
	assert.Equal(t, http.StatusOK, rec.Code)
	check.Equal(t, domain.DeviceQC, decodeEnvelope[domain.Device](t, rec).Data.Status)

	rec = f.do(t, http.MethodPatch, "/api/admin/devices/9", "admin", map[string]any{"status": "qc"})
	check.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/admin/stats", "admin", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	check.Equal(t, domain.BoardStats{Received: 1, QC: 1, Ready: 1, Total: 3}, decodeEnvelope[domain.BoardStats](t, rec).Data)

	rec = f.do(t, http.MethodGet, "/api/admin/stats", "technician", nil)
	check.Equal(t, http.StatusForbidden, rec.Code)
}

func TestFleetPortal(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/fleet/CORP-001", "", nil)
	check.Equal(t, http.StatusUnauthorized, rec.Code)

	for _, d := range []map[string]any{
		{"deviceId": "DL7420-CORP-001", "deviceModel": "Dell Latitude 7420", "assignedUser": "John Doe", "warrantyExpiry": time.Now().AddDate(1, 0, 0).Format(time.DateOnly)},
		{"deviceId": "MBP14-CORP-015", "deviceModel": "MacBook Pro 14", "status": "maintenance", "warrantyExpiry": "2024-08-31"},
	} {
		rec = f.do(t, http.MethodPost, "/api/fleet/CORP-001/devices", "customer", d)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/api/fleet/CORP-001", "customer", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	fleet := decodeEnvelope[[]domain.FleetDevice](t, rec).Data
	assert.Equal(t, 2, len(fleet))
	check.Equal(t, "MBP14-CORP-015", fleet[0].DeviceID)

	rec = f.do(t, http.MethodGet, "/api/fleet/CORP-001/stats", "customer", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	check.Equal(t, domain.FleetStats{Total: 2, Active: 1, Maintenance: 1, Expired: 1}, decodeEnvelope[domain.FleetStats](t, rec).Data)

	rec = f.do(t, http.MethodPost, "/api/fleet/CORP-001/devices", "customer", map[string]any{"deviceId": "X", "deviceModel": "Y", "status": "stolen"})
	check.Equal(t, http.StatusBadRequest, rec.Code)
}
