package api

import (
	"net/http"

	"tripflow/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

// PaymentHandler receives the browser coming back from the external payment
// page. The controller deduplicates repeated returns for the same booking, so
// refreshing the return URL never confirms twice.
type PaymentHandler struct{}

func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{}
}

func (h *PaymentHandler) Return(c *gin.Context) {
	controller, ok := middleware.GetController(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	// A cancelled payment arrives with no booking_id; the controller treats
	// the empty ID as a cancellation notice.
	status := c.Query("payment")
	bookingID := c.Query("booking_id")
	if status != "" {
		controller.HandlePaymentReturn(c.Request.Context(), status, bookingID)
	}
	c.Redirect(http.StatusSeeOther, "/")
}
