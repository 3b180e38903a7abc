//go:build unit

package api_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"tripflow/internal/gateway"
	"tripflow/internal/handler/api"
	resdto "tripflow/internal/handler/dto/response"
	"tripflow/internal/handler/middleware"
	"tripflow/internal/pkg/clock"
	"tripflow/internal/pkg/config"
	"tripflow/internal/pkg/cookie"
	"tripflow/internal/workflow"
	"tripflow/tests/common/builder"
	"tripflow/tests/common/httptest"
	workflowmock "tripflow/tests/mock/workflow"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const planReply = "Here is your plan!\nDestination: Paris\n" +
	"Travel dates: 2025-06-01 to 2025-06-10 for 2 passengers with a $3000.00 budget."

type SessionHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockGW   *workflowmock.MockGateway
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGW = workflowmock.NewMockGateway(s.mockCtrl)

	cfg := config.NewTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := workflow.NewStore(cfg.Session, s.mockGW, clock.NewRealClock(), logger)
	sessionMw := middleware.NewSessionMiddleware(store, cfg, clock.NewRealClock())

	handler := api.NewSessionHandler()
	payment := api.NewPaymentHandler()

	session := s.router.Group("/api/session")
	session.Use(sessionMw.Resolve())
	session.GET("/state", handler.State)
	session.POST("/chat", handler.Chat)
	session.POST("/select-flight", handler.SelectFlight)
	session.POST("/select-hotel", handler.SelectHotel)
	session.POST("/nights", handler.SetNights)
	session.POST("/passengers", handler.SetPassengers)
	session.POST("/submit", handler.Submit)
	session.POST("/retry", handler.Retry)
	session.POST("/dismiss", handler.Dismiss)
	session.POST("/reset", handler.Reset)

	paymentGroup := s.router.Group("/payment")
	paymentGroup.Use(sessionMw.Resolve())
	paymentGroup.GET("/return", payment.Return)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

// chatToSelecting drives a fresh session to option selection and returns the
// session cookies for follow-up requests.
func (s *SessionHandlerTestSuite) chatToSelecting() []*http.Cookie {
	s.mockGW.EXPECT().Plan(gomock.Any(), gomock.Any()).Return(planReply, nil)
	s.mockGW.EXPECT().CreateItinerary(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
	s.mockGW.EXPECT().BookingOptions(gomock.Any(), gomock.Any()).Return(builder.NewOptionsBuilder().Build(), nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/session/chat",
		map[string]any{"message": "plan a trip to Paris from London"})

	var state resdto.StateResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &state)
	s.Require().Equal("selecting_options", state.State)
	return httptest.SessionCookies(w)
}

func (s *SessionHandlerTestSuite) TestState() {
	s.Run("fresh session starts idle with a welcome message", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/session/state", nil)

		var state resdto.StateResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &state)
		s.Equal("idle", state.State)
		s.Require().Len(state.Messages, 1)
		s.Equal("assistant", state.Messages[0].Role)
	})

	s.Run("sets the session cookie", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/session/state", nil)
		s.NotEmpty(httptest.SessionCookies(w))
	})
}

func (s *SessionHandlerTestSuite) TestChat() {
	s.Run("plan reply renders the selection view", func() {
		s.mockGW.EXPECT().Plan(gomock.Any(), gomock.Any()).Return(planReply, nil)
		s.mockGW.EXPECT().CreateItinerary(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		s.mockGW.EXPECT().BookingOptions(gomock.Any(), gomock.Any()).Return(builder.NewOptionsBuilder().Build(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/session/chat",
			map[string]any{"message": "plan a trip to Paris from London"})

		var state resdto.StateResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &state)
		s.Equal("selecting_options", state.State)
		s.Require().NotNil(state.Trip)
		s.Equal("Paris", state.Trip.Destination)
		s.Require().NotNil(state.Selection)
		s.Len(state.Selection.Flights, 2)
		s.False(state.Selection.Submittable)
	})

	s.Run("empty message is a bad request", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/session/chat",
			map[string]any{"message": ""})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("empty option lists still render the selection view", func() {
		s.mockGW.EXPECT().Plan(gomock.Any(), gomock.Any()).Return(planReply, nil)
		s.mockGW.EXPECT().CreateItinerary(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		s.mockGW.EXPECT().BookingOptions(gomock.Any(), gomock.Any()).
			Return(builder.NewOptionsBuilder().BuildEmpty(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/session/chat",
			map[string]any{"message": "plan a trip to Paris from London"})

		var state resdto.StateResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &state)
		s.Equal("selecting_options", state.State)
		s.Require().NotNil(state.Selection)
		s.Empty(state.Selection.Flights)
		s.False(state.Selection.Submittable, "proceed stays unavailable with nothing selectable")
	})
}

func (s *SessionHandlerTestSuite) TestSelections() {
	s.Run("selection updates the running total", func() {
		cookies := s.chatToSelecting()

		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/session/select-flight",
			map[string]any{"index": 0}, cookies)

		var state resdto.StateResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &state)
		s.Require().NotNil(state.Selection)
		s.Require().NotNil(state.Selection.SelectedFlight)
		s.Equal(0, *state.Selection.SelectedFlight)
		s.Equal(900.0, state.Selection.Total) // $450 x 2 passengers
	})

	s.Run("selection without a session in selection state conflicts", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/session/select-flight",
			map[string]any{"index": 0})
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not available")
	})

	s.Run("out of range index is unprocessable", func() {
		cookies := s.chatToSelecting()

		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/session/select-hotel",
			map[string]any{"index": 9}, cookies)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "does not exist")
	})

	s.Run("missing index is a bad request", func() {
		cookies := s.chatToSelecting()

		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/session/select-flight",
			map[string]any{}, cookies)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("passengers outside bounds are rejected by binding", func() {
		cookies := s.chatToSelecting()

		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/session/passengers",
			map[string]any{"passengers": 11}, cookies)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})
}

func (s *SessionHandlerTestSuite) TestSubmit() {
	selectBoth := func(cookies []*http.Cookie) {
		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/session/select-flight",
			map[string]any{"index": 0}, cookies)
		s.Require().Equal(http.StatusOK, w.Code)
		w = httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/session/select-hotel",
			map[string]any{"index": 0}, cookies)
		s.Require().Equal(http.StatusOK, w.Code)
	}

	s.Run("redirects to checkout", func() {
		cookies := s.chatToSelecting()
		selectBoth(cookies)

		s.mockGW.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return("BK-1001", nil)
		s.mockGW.EXPECT().CreateCheckoutSession(gomock.Any(), "BK-1001", gomock.Any()).
			Return("https://pay.example.com/cs_1", nil)

		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/session/submit",
			map[string]any{"email": "traveler@example.com"}, cookies)

		var state resdto.StateResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &state)
		s.Equal("redirecting", state.State)
		s.Require().NotNil(state.Checkout)
		s.Equal("https://pay.example.com/cs_1", state.Checkout.CheckoutURL)
		s.Equal("BK-1001", state.Checkout.BookingID)
	})

	s.Run("malformed email is rejected by binding", func() {
		cookies := s.chatToSelecting()
		selectBoth(cookies)

		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/session/submit",
			map[string]any{"email": "not-an-email"}, cookies)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("missing selections are unprocessable", func() {
		cookies := s.chatToSelecting()

		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/session/submit",
			map[string]any{"email": "traveler@example.com"}, cookies)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "flight")
	})

	s.Run("checkout failure offers retry-payment", func() {
		cookies := s.chatToSelecting()
		selectBoth(cookies)

		s.mockGW.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return("BK-1001", nil)
		s.mockGW.EXPECT().CreateCheckoutSession(gomock.Any(), "BK-1001", gomock.Any()).
			Return("", &gateway.Error{Kind: gateway.KindServerError})

		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/session/submit",
			map[string]any{"email": "traveler@example.com"}, cookies)

		var state resdto.StateResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &state)
		s.Equal("failed", state.State)
		s.Require().NotNil(state.Failure)
		s.Equal("checkout", state.Failure.Step)
		s.Equal("retry-payment", state.Failure.Retry)
		s.Equal("BK-1001", state.Failure.BookingID)
	})
}

func (s *SessionHandlerTestSuite) TestPaymentReturn() {
	redirect := func(cookies []*http.Cookie) {
		selectFlight := map[string]any{"index": 0}
		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/session/select-flight", selectFlight, cookies)
		s.Require().Equal(http.StatusOK, w.Code)
		w = httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/session/select-hotel", map[string]any{"index": 0}, cookies)
		s.Require().Equal(http.StatusOK, w.Code)

		s.mockGW.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return("BK-1001", nil)
		s.mockGW.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://pay.example.com/cs_1", nil)
		w = httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/session/submit",
			map[string]any{"email": "traveler@example.com"}, cookies)
		s.Require().Equal(http.StatusOK, w.Code)
	}

	s.Run("success confirms once and redirects home", func() {
		cookies := s.chatToSelecting()
		redirect(cookies)

		s.mockGW.EXPECT().ConfirmBooking(gomock.Any(), "BK-1001").Return(nil).Times(1)

		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet,
			"/payment/return?payment=success&booking_id=BK-1001", nil, cookies)
		s.Equal(http.StatusSeeOther, w.Code)
		s.Equal("/", w.Header().Get("Location"))

		var state resdto.StateResponse
		sw := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/session/state", nil, cookies)
		httptest.AssertSuccessResponse(s.T(), sw, http.StatusOK, &state)
		s.Require().Len(state.Notices, 1)
		s.Equal("success", state.Notices[0].Level)
		s.Equal("idle", state.State)

		// Refreshing the return URL neither re-confirms nor re-notifies.
		w = httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet,
			"/payment/return?payment=success&booking_id=BK-1001", nil, cookies)
		s.Equal(http.StatusSeeOther, w.Code)
		sw = httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/session/state", nil, cookies)
		var refreshed resdto.StateResponse
		httptest.AssertSuccessResponse(s.T(), sw, http.StatusOK, &refreshed)
		s.Empty(refreshed.Notices)
	})

	s.Run("cancelled payment warns and keeps the booking unpaid", func() {
		cookies := s.chatToSelecting()
		redirect(cookies)

		// The payment page cancels without a booking_id on the return URL.
		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet,
			"/payment/return?payment=cancelled", nil, cookies)
		s.Equal(http.StatusSeeOther, w.Code)

		var state resdto.StateResponse
		sw := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/session/state", nil, cookies)
		httptest.AssertSuccessResponse(s.T(), sw, http.StatusOK, &state)
		s.Require().Len(state.Notices, 1)
		s.Equal("warning", state.Notices[0].Level)
	})
}

func (s *SessionHandlerTestSuite) TestReset() {
	cookies := s.chatToSelecting()

	s.mockGW.EXPECT().ResetMemory(gomock.Any()).Return(nil)
	w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/session/reset", nil, cookies)

	var state resdto.StateResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &state)
	s.Equal("idle", state.State)
	s.Nil(state.Trip)
	s.Require().Len(state.Messages, 1)
	s.Contains(state.Messages[0].Content, "Chat cleared")
}

func (s *SessionHandlerTestSuite) TestTokenCookieExpiry() {
	signed := func(exp time.Time) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
		raw, err := tok.SignedString([]byte("test-secret"))
		s.Require().NoError(err)
		return raw
	}

	s.Run("expired backend token cookie is dropped", func() {
		cookies := []*http.Cookie{{Name: cookie.TokenCookieName, Value: signed(time.Now().Add(-time.Hour))}}
		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/session/state", nil, cookies)
		s.Equal(http.StatusOK, w.Code)

		cleared := false
		for _, ck := range w.Result().Cookies() {
			if ck.Name == cookie.TokenCookieName {
				cleared = ck.Value == "" && ck.MaxAge < 0
			}
		}
		s.True(cleared, "expired token cookie must be cleared")
	})

	s.Run("valid backend token cookie is left alone", func() {
		cookies := []*http.Cookie{{Name: cookie.TokenCookieName, Value: signed(time.Now().Add(time.Hour))}}
		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/session/state", nil, cookies)
		s.Equal(http.StatusOK, w.Code)

		for _, ck := range w.Result().Cookies() {
			s.NotEqual(cookie.TokenCookieName, ck.Name)
		}
	})
}
