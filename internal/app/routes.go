package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/handler"
)

func (a *App) RegisterRoutes() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.Router.GET("/healthz", a.healthz)
}

func (a *App) RegisterGradingRoutes(h *handler.GatewayHandler) {
	app := a.Router.Group("/gradings")
	app.POST("", h.SubmitGrading)
}

func (a *App) RegisterRefundRoutes(h *handler.RefundHandler) {
	a.Router.POST("/refund-process", h.RefundProcess)
	a.Router.POST("/update-inspection-result", h.UpdateInspectionResult)
}

func (a *App) healthz(c *gin.Context) {
	if a.Broker == nil || !a.Broker.IsOpen() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "broker disconnected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
