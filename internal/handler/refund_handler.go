package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/errorx"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
)

const maxFormMemory = 32 << 20

type RefundServiceIn interface {
	ForwardRefundProcess(ctx context.Context, form models.RefundProcessForm) (int, error)
	ProcessInspectionResult(ctx context.Context, req models.InspectionResultRequest) (*models.InspectionOutcome, error)
}

type RefundHandler struct {
	RefundService RefundServiceIn
}

func Refund(s RefundServiceIn) *RefundHandler {
	return &RefundHandler{
		RefundService: s,
	}
}

// POST /refund-process
func (h *RefundHandler) RefundProcess(c *gin.Context) {
	form, err := readRefundForm(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form body"})
		return
	}

	status, err := h.RefundService.ForwardRefundProcess(c.Request.Context(), form)
	if err != nil {
		logrus.Errorf("Error forwarding refund process: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(status, gin.H{"message": "Forwarded successfully"})
}

// POST /update-inspection-result
func (h *RefundHandler) UpdateInspectionResult(c *gin.Context) {
	var req models.InspectionResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	outcome, err := h.RefundService.ProcessInspectionResult(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Inspection result processed successfully.",
		"requestId":        outcome.RequestID,
		"inspectionResult": outcome.InspectionResult,
	})
}

// readRefundForm accepts multipart or urlencoded bodies. Only the photo file is carried.
func readRefundForm(r *http.Request) (models.RefundProcessForm, error) {
	form := models.RefundProcessForm{Fields: map[string]string{}}

	err := r.ParseMultipartForm(maxFormMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}
	if err != nil {
		return form, err
	}

	for name, values := range r.PostForm {
		if len(values) > 0 {
			form.Fields[name] = values[0]
		}
	}

	file, header, err := r.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return form, nil
	}
	if err != nil {
		return form, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return form, err
	}
	form.PhotoName = header.Filename
	form.PhotoContent = content
	form.PhotoMimeType = header.Header.Get("Content-Type")
	return form, nil
}

func respondError(c *gin.Context, err error) {
	var verr *errorx.ValidationError
	if errors.As(err, &verr) {
		c.JSON(verr.Code, gin.H{"error": verr.Message, "details": verr.Details})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
