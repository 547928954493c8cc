package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kitchify/kitchify-server/services"
	"github.com/kitchify/kitchify-server/utils"
)

type AlertController struct {
	Ledger   *services.StockLedger
	Notifier *services.AlertNotifier
}

func NewAlertController(ledger *services.StockLedger, notifier *services.AlertNotifier) *AlertController {
	return &AlertController{Ledger: ledger, Notifier: notifier}
}

// CheckAlerts -> POST /alerts/check. Runs the threshold-gated notifier path
// synchronously and reports how many ingredients are low.
func (ac *AlertController) CheckAlerts(c *gin.Context) {
	ingredients, err := ac.Ledger.All()
	if err != nil {
		utils.RespondError(c, utils.Internal(utils.CodeAlertCheckError, ""))
		return
	}

	ac.Notifier.CheckAndSendAlerts(ingredients)

	low := 0
	for _, ing := range ingredients {
		if ing.IsLowStock() {
			low++
		}
	}

	message := "All ingredients have sufficient stock"
	if low > 0 {
		message = fmt.Sprintf("%d ingredient(s) with low stock", low)
	}
	utils.RespondJSON(c, http.StatusOK, message, gin.H{"low_stock_count": low})
}

// ForceAlert -> POST /alerts/force. Sends regardless of threshold and the
// one-per-day limit, as long as anything is actually low.
func (ac *AlertController) ForceAlert(c *gin.Context) {
	ingredients, err := ac.Ledger.All()
	if err != nil {
		utils.RespondError(c, utils.Internal(utils.CodeAlertCheckError, ""))
		return
	}

	ac.Notifier.ForceAlert(ingredients)
	utils.RespondJSON(c, http.StatusOK, "Alert sent if any ingredients are low on stock", nil)
}
