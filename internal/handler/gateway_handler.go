package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/service"
	"github.com/sirupsen/logrus"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// GatewayHandler is the HTTP entry point of the grading saga.
type GatewayHandler struct {
	Publisher Publisher
}

func Gateway(p Publisher) *GatewayHandler {
	return &GatewayHandler{
		Publisher: p,
	}
}

// POST /gradings
func (h *GatewayHandler) SubmitGrading(c *gin.Context) {
	var req models.GradingRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := service.ValidateGradingRequest(req); err != nil {
		respondError(c, err)
		return
	}

	// Identity and state are owned by the grading worker.
	req.GradingID = ""
	req.Status = ""
	req.Result = ""
	req.DeliveryID = ""

	if err := h.Publisher.Publish(c.Request.Context(), models.CreateGradingKey, req); err != nil {
		logrus.Errorf("Error publishing grading request: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "Grading request accepted"})
}
