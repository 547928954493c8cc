package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kitchify/kitchify-server/models"
	"github.com/kitchify/kitchify-server/services"
	"github.com/kitchify/kitchify-server/utils"
)

type OrderController struct {
	DB          *gorm.DB
	Fulfillment *services.FulfillmentService
	Loc         *time.Location
}

func NewOrderController(db *gorm.DB, fulfillment *services.FulfillmentService, loc *time.Location) *OrderController {
	return &OrderController{DB: db, Fulfillment: fulfillment, Loc: loc}
}

// GetAllOrders -> order history, newest first
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Order("created_at desc").Find(&orders).Error; err != nil {
		utils.RespondError(c, utils.Internal(utils.CodeOrderFetchError, ""))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetTodayOrders -> orders stamped with today's business date
func (oc *OrderController) GetTodayOrders(c *gin.Context) {
	today := time.Now().In(oc.Loc).Format("2006-01-02")

	var orders []models.Order
	if err := oc.DB.Where("date = ?", today).Order("created_at desc").Find(&orders).Error; err != nil {
		utils.RespondError(c, utils.Internal(utils.CodeOrderFetchError, ""))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Orders for today", orders)
}

type orderReq struct {
	RecipeID string `json:"recipe_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// CreateOrder -> POST /orders. Runs the fulfillment transaction: recipe
// lookup, availability check, atomic deduction, order record, async
// low-stock check.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body orderReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	order, err := oc.Fulfillment.PlaceOrder(body.RecipeID, body.Quantity)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// ResetOrders wipes the order history. Orders are append-only otherwise;
// this bulk reset exists for testing and demos.
func (oc *OrderController) ResetOrders(c *gin.Context) {
	if err := oc.DB.Where("1 = 1").Delete(&models.Order{}).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All orders deleted", nil)
}
