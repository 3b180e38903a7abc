package api

import (
	"errors"
	"net/http"

	reqdto "tripflow/internal/handler/dto/request"
	resdto "tripflow/internal/handler/dto/response"
	"tripflow/internal/handler/httperr"
	"tripflow/internal/handler/middleware"
	"tripflow/internal/pkg/errs"
	"tripflow/internal/workflow"

	"github.com/gin-gonic/gin"
)

// SessionHandler translates user gestures into controller inputs. It never
// calls the gateway directly; every network-touching action goes through the
// workflow controller so the state machine stays the single writer.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// Chat handles one chat turn.
func (h *SessionHandler) Chat(c *gin.Context) {
	controller, ok := sessionController(c)
	if !ok {
		return
	}

	var req reqdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	snap, err := controller.HandleChat(c.Request.Context(), req.Message)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

// State returns the current view for rendering.
func (h *SessionHandler) State(c *gin.Context) {
	controller, ok := sessionController(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(controller.Snapshot()))
}

func (h *SessionHandler) SelectFlight(c *gin.Context) {
	h.applySelection(c, func(controller *workflow.Controller, index int) (workflow.Snapshot, error) {
		return controller.SelectFlight(index)
	})
}

func (h *SessionHandler) SelectHotel(c *gin.Context) {
	h.applySelection(c, func(controller *workflow.Controller, index int) (workflow.Snapshot, error) {
		return controller.SelectHotel(index)
	})
}

func (h *SessionHandler) applySelection(c *gin.Context, apply func(*workflow.Controller, int) (workflow.Snapshot, error)) {
	controller, ok := sessionController(c)
	if !ok {
		return
	}

	var req reqdto.SelectOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	snap, err := apply(controller, *req.Index)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

func (h *SessionHandler) SetNights(c *gin.Context) {
	controller, ok := sessionController(c)
	if !ok {
		return
	}

	var req reqdto.SetNightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	snap, err := controller.SetNights(*req.Nights)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

func (h *SessionHandler) SetPassengers(c *gin.Context) {
	controller, ok := sessionController(c)
	if !ok {
		return
	}

	var req reqdto.SetPassengersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	snap, err := controller.SetPassengers(*req.Passengers)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

// Submit drives booking creation and checkout-session creation.
func (h *SessionHandler) Submit(c *gin.Context) {
	controller, ok := sessionController(c)
	if !ok {
		return
	}

	var req reqdto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	snap, err := controller.Submit(c.Request.Context(), req.Email, req.GetSpecialRequests())
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

func (h *SessionHandler) Retry(c *gin.Context) {
	controller, ok := sessionController(c)
	if !ok {
		return
	}

	snap, err := controller.Retry(c.Request.Context())
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

func (h *SessionHandler) Dismiss(c *gin.Context) {
	controller, ok := sessionController(c)
	if !ok {
		return
	}

	snap, err := controller.Dismiss()
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

func (h *SessionHandler) Reset(c *gin.Context) {
	controller, ok := sessionController(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(controller.Reset(c.Request.Context())))
}

// respondWorkflowError maps controller errors onto the HTTP surface.
// Validation failures stay inline; a busy workflow conflicts rather than
// queueing a duplicate request.
func respondWorkflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBusy):
		httperr.AbortWithError(c, http.StatusConflict, err, "Another request is in progress")
	case errors.Is(err, errs.ErrWrongState):
		httperr.AbortWithError(c, http.StatusConflict, err, "Action not available right now")
	case errors.Is(err, errs.ErrOptionOutOfRange):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Selected option does not exist")
	case errors.Is(err, errs.ErrInvalidNights):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Nights must be at least 1")
	case errors.Is(err, errs.ErrInvalidPassengers):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Passengers must be between 1 and 10")
	case errors.Is(err, errs.ErrInvalidEmail):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Please enter a valid email address")
	case errors.Is(err, errs.ErrNoFlightSelected):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Select a flight to continue")
	case errors.Is(err, errs.ErrNoHotelSelected):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Select a hotel to continue")
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

// sessionController fetches the controller bound by the session middleware.
// A miss means a route was registered without Resolve, which is a wiring bug.
func sessionController(c *gin.Context) (*workflow.Controller, bool) {
	controller, ok := middleware.GetController(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrSessionNotFound, "Internal server error")
	}
	return controller, ok
}
