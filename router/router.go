package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kitchify/kitchify-server/config"
	"github.com/kitchify/kitchify-server/controllers"
	"github.com/kitchify/kitchify-server/middlewares"
	"github.com/kitchify/kitchify-server/services"
	"github.com/kitchify/kitchify-server/utils"
)

// SetupRouter wires middlewares, controllers and routes. The notifier is
// passed in because it owns state (worker goroutine, alert dedup date) with
// a lifecycle managed by main.
func SetupRouter(db *gorm.DB, notifier *services.AlertNotifier) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	loc := config.BusinessLocation()
	ledger := services.NewStockLedger(db)
	fulfillment := services.NewFulfillmentService(db, notifier, loc)

	ingredientCtrl := controllers.NewIngredientController(db)
	recipeCtrl := controllers.NewRecipeController(db)
	orderCtrl := controllers.NewOrderController(db, fulfillment, loc)
	alertCtrl := controllers.NewAlertController(ledger, notifier)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// INGREDIENTS (stock ledger)
	r.GET("/ingredients", ingredientCtrl.GetAllIngredients)
	r.GET("/ingredients/low-stock", ingredientCtrl.GetLowStockIngredients)
	r.POST("/ingredients", ingredientCtrl.CreateIngredient)
	r.PUT("/ingredients/:id", ingredientCtrl.UpdateIngredient)
	r.POST("/ingredients/:id/restock", ingredientCtrl.RestockIngredient)

	// RECIPES (catalog)
	r.GET("/recipes", recipeCtrl.GetAllRecipes)
	r.GET("/recipes/:id", recipeCtrl.GetRecipeByID)
	r.POST("/recipes", recipeCtrl.CreateRecipe)

	// ORDERS (fulfillment + history)
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.GET("/orders/today", orderCtrl.GetTodayOrders)
	r.POST("/orders", orderCtrl.CreateOrder)

	// Destructive reset paths share a tighter limiter.
	resets := r.Group("/")
	resets.Use(middlewares.NewResetRateLimiter())
	{
		resets.POST("/ingredients/reset-all", ingredientCtrl.ResetAllIngredients)
		resets.DELETE("/orders/reset", orderCtrl.ResetOrders)
	}

	// ALERTS (low-stock notifier)
	r.POST("/alerts/check", alertCtrl.CheckAlerts)
	r.POST("/alerts/force", alertCtrl.ForceAlert)

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, utils.NotFound(utils.CodeNotFound,
			"route "+c.Request.URL.Path+" not found"))
	})

	return r
}
