package api

import (
	"context"
	"net/http"
	"strconv"

	"tripflow/internal/domain/booking"
	"tripflow/internal/gateway"
	resdto "tripflow/internal/handler/dto/response"
	"tripflow/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// BookingReader lists and mutates bookings on the travel backend.
type BookingReader interface {
	ListBookings(ctx context.Context) ([]booking.Projection, error)
	GetBooking(ctx context.Context, bookingID string) (booking.Projection, error)
	CancelBooking(ctx context.Context, bookingID string) error
}

// ItineraryReader lists and deletes saved itineraries.
type ItineraryReader interface {
	ListItineraries(ctx context.Context) ([]gateway.Itinerary, error)
	DeleteItinerary(ctx context.Context, itineraryID int64) error
}

// PreferenceReader fetches the planning agent's saved user preferences.
type PreferenceReader interface {
	Preferences(ctx context.Context) (map[string]any, error)
}

// TripsHandler serves the read-mostly trips page. These endpoints pass
// straight through to the backend; they never touch workflow state.
type TripsHandler struct {
	bookings    BookingReader
	itineraries ItineraryReader
	preferences PreferenceReader
}

func NewTripsHandler(bookings BookingReader, itineraries ItineraryReader, preferences PreferenceReader) *TripsHandler {
	return &TripsHandler{bookings: bookings, itineraries: itineraries, preferences: preferences}
}

func (h *TripsHandler) ListBookings(c *gin.Context) {
	projections, err := h.bookings.ListBookings(c.Request.Context())
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProjections(projections))
}

func (h *TripsHandler) GetBooking(c *gin.Context) {
	projection, err := h.bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProjection(projection))
}

func (h *TripsHandler) CancelBooking(c *gin.Context) {
	if err := h.bookings.CancelBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondGatewayError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TripsHandler) ListItineraries(c *gin.Context) {
	itineraries, err := h.itineraries.ListItineraries(c.Request.Context())
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItineraries(itineraries))
}

func (h *TripsHandler) DeleteItinerary(c *gin.Context) {
	itineraryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid itinerary ID")
		return
	}
	if err := h.itineraries.DeleteItinerary(c.Request.Context(), itineraryID); err != nil {
		respondGatewayError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TripsHandler) Preferences(c *gin.Context) {
	prefs, err := h.preferences.Preferences(c.Request.Context())
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPreferences(prefs))
}

// respondGatewayError surfaces backend rejections verbatim and hides
// everything else behind a 502.
func respondGatewayError(c *gin.Context, err error) {
	if gateway.IsKind(err, gateway.KindClientError) {
		status := gateway.StatusOf(err)
		if status < http.StatusBadRequest || status >= http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		httperr.AbortWithError(c, status, err, gateway.MessageOf(err))
		return
	}
	httperr.AbortWithError(c, http.StatusBadGateway, err, "Travel service is unavailable")
}
