package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/petros-hq/petros-api/internal/application/service"
	"github.com/petros-hq/petros-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer endpoints
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status handles GET /printer/status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.Status())
}

// Test handles POST /printer/test, printing a short test slip.
func (h *PrinterHandler) Test(c *gin.Context) {
	if err := h.printerService.TestPrint(); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test print sent", nil)
}
