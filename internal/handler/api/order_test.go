//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"canteen-core/internal/domain/user"
	"canteen-core/internal/handler/api"
	"canteen-core/internal/pkg/errs"
	"canteen-core/internal/usecase/queries"
	"canteen-core/tests/common/builder"
	"canteen-core/tests/common/httptest"
	"canteen-core/tests/common/testutil"
	commandsmock "canteen-core/tests/mock/commands"
	queriesmock "canteen-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
	authUserID   uuid.UUID
	authRole     user.Role
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.authUserID = uuid.New()
	s.authRole = user.RoleStudent

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.authUserID)
		c.Set("user_role", s.authRole)
		c.Next()
	}

	// Setup routes
	s.router.POST("/orders", authMiddleware, s.handler.CreateOrder)
	s.router.GET("/orders", authMiddleware, s.handler.ListOrders)
	s.router.GET("/orders/:id", authMiddleware, s.handler.GetOrder)
	s.router.PATCH("/orders/:id/status", authMiddleware, s.handler.UpdateOrderStatus)
	s.router.POST("/orders/:id/cancel", authMiddleware, s.handler.CancelOrder)
	s.router.GET("/orders/:id/token", authMiddleware, s.handler.GetTokenCard)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

type testCaseOrder struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	url := "/orders"

	reqBody := builder.NewOrderBuilder().BuildCreateRequestDTO()
	returnView := builder.NewOrderBuilder().BuildViewQuery()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), s.authUserID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID.String(), body["id"])
		s.Equal(returnView.TokenNumber, body["tokenNumber"])
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseOrder{
			{name: "missing field: canteen_id (required)", mutate: testutil.Field("canteen_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: items (required)", mutate: testutil.Field("items", nil), expectCode: http.StatusBadRequest},
			{name: "empty items", mutate: testutil.Field("items", []any{}), expectCode: http.StatusBadRequest},
			{name: "zero quantity", mutate: testutil.Field("items", []any{map[string]any{"menu_item_id": uuid.New().String(), "quantity": 0}}), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: command failures map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"empty cart", errs.ErrEmptyCart, http.StatusBadRequest},
			{"unavailable menu item", errs.ErrMenuItemUnavailable, http.StatusBadRequest},
			{"token collision", errs.ErrTokenConflict, http.StatusConflict},
			{"domain rejection", errs.ErrDomainValidationFailed, http.StatusUnprocessableEntity},
			{"infrastructure failure", errors.New("connection refused"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), s.authUserID).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestListOrders
// ================================================================================

func (s *OrderHandlerTestSuite) TestListOrders() {
	s.Run("success: returns 200 with order list", func() {
		items := []*builder.OrderBuilder{builder.NewOrderBuilder(), builder.NewOrderBuilder()}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*queries.OrderListItem{items[0].BuildListItem(), items[1].BuildListItem()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?limit=10", nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(items[0].ID.String(), body[0]["id"])
	})

	s.Run("error: 400 on malformed canteen_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?canteen_id=not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "canteen_id")
	})

	s.Run("error: 400 on malformed limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?limit=abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "limit")
	})
}

// ================================================================================
// TestGetOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestGetOrder() {
	returnView := builder.NewOrderBuilder().BuildViewQuery()

	s.Run("success: returns 200 with order", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+returnView.ID.String(), nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID.String(), body["id"])
	})

	s.Run("error: 400 on malformed order ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when order is not visible", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).
			Return(nil, errs.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestUpdateOrderStatus
// ================================================================================

func (s *OrderHandlerTestSuite) TestUpdateOrderStatus() {
	s.authRole = user.RoleAdmin
	orderID := uuid.New()
	url := "/orders/" + orderID.String() + "/status"
	reqBody := map[string]any{"status": "Cooking"}

	s.Run("success: returns 200 with updated order", func() {
		returnView := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.ID = orderID
			b.Status = "Cooking"
		}).BuildViewQuery()

		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), orderID, "Cooking", gomock.Nil(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Cooking", body["status"])
	})

	s.Run("error: 400 when status field is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: command failures map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"order missing", errs.ErrOrderNotFound, http.StatusNotFound},
			{"terminal order", errs.ErrTerminalState, http.StatusConflict},
			{"invalid target status", errs.ErrDomainValidation, http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), orderID, "Cooking", gomock.Nil(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestCancelOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestCancelOrder() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String() + "/cancel"

	s.Run("success: returns 200 with cancelled order", func() {
		returnView := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.ID = orderID
			b.Status = "Cancelled"
			b.PaymentStatus = "Refunded"
		}).BuildViewQuery()

		s.mockCommands.EXPECT().CancelOrder(gomock.Any(), orderID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Cancelled", body["status"])
		s.Equal("Refunded", body["paymentStatus"])
	})

	s.Run("error: command failures map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"order missing", errs.ErrOrderNotFound, http.StatusNotFound},
			{"not the owner", errs.ErrNotOrderOwner, http.StatusForbidden},
			{"window closed", errs.ErrCancelWindowClosed, http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelOrder(gomock.Any(), orderID, gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestGetTokenCard
// ================================================================================

func (s *OrderHandlerTestSuite) TestGetTokenCard() {
	card := builder.NewOrderBuilder().BuildTokenCard()
	url := "/orders/" + card.OrderID.String() + "/token"

	s.Run("success: returns 200 with token card", func() {
		s.mockQueries.EXPECT().TokenCard(gomock.Any(), gomock.Any(), card.OrderID).
			Return(card, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(card.TokenNumber, body["tokenNumber"])
		s.NotEmpty(body["qrCodePng"])
	})

	s.Run("error: 404 when order is not visible", func() {
		s.mockQueries.EXPECT().TokenCard(gomock.Any(), gomock.Any(), card.OrderID).
			Return(nil, errs.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
