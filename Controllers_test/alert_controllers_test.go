package Controllers_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/kitchify/kitchify-server/controllers"
	"github.com/kitchify/kitchify-server/models"
	"github.com/kitchify/kitchify-server/services"
)

type recordingMailer struct {
	mu    sync.Mutex
	sends int
}

func (m *recordingMailer) Send(subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends++
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sends
}

func setupAlertRouter(db *gorm.DB, mailer services.Mailer, threshold int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	ledger := services.NewStockLedger(db)
	notifier := services.NewAlertNotifier(ledger, mailer, threshold, time.UTC)
	ctrl := controllers.NewAlertController(ledger, notifier)
	r.POST("/alerts/check", ctrl.CheckAlerts)
	r.POST("/alerts/force", ctrl.ForceAlert)
	return r
}

func TestCheckAlertsEndpoint(t *testing.T) {
	db := setupTestDB(t)
	mailer := &recordingMailer{}
	r := setupAlertRouter(db, mailer, 2)

	db.Create(&models.Ingredient{ID: "1", Name: "Low one", Quantity: 1, Unit: "units", Minimum: 5})
	db.Create(&models.Ingredient{ID: "2", Name: "Low two", Quantity: 2, Unit: "units", Minimum: 5})
	db.Create(&models.Ingredient{ID: "3", Name: "Fine", Quantity: 50, Unit: "units", Minimum: 5})

	w := doJSON(t, r, "POST", "/alerts/check", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 2.0, data["low_stock_count"])
	assert.Equal(t, 1, mailer.count())

	// Second check the same day: count still reported, no second email.
	w = doJSON(t, r, "POST", "/alerts/check", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mailer.count())
}

func TestCheckAlertsBelowThreshold(t *testing.T) {
	db := setupTestDB(t)
	mailer := &recordingMailer{}
	r := setupAlertRouter(db, mailer, 3)

	db.Create(&models.Ingredient{ID: "1", Name: "Low one", Quantity: 1, Unit: "units", Minimum: 5})

	w := doJSON(t, r, "POST", "/alerts/check", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 1.0, data["low_stock_count"])
	assert.Equal(t, 0, mailer.count())
}

func TestForceAlertEndpoint(t *testing.T) {
	db := setupTestDB(t)
	mailer := &recordingMailer{}
	r := setupAlertRouter(db, mailer, 10)

	// Nothing low: forced alert is a no-op.
	db.Create(&models.Ingredient{ID: "1", Name: "Fine", Quantity: 50, Unit: "units", Minimum: 5})
	w := doJSON(t, r, "POST", "/alerts/force", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, mailer.count())

	// One low ingredient: force sends even though the threshold is 10.
	db.Create(&models.Ingredient{ID: "2", Name: "Low", Quantity: 1, Unit: "units", Minimum: 5})
	w = doJSON(t, r, "POST", "/alerts/force", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mailer.count())
}
