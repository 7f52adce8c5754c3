//go:build e2e

package order_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"canteen-core/internal/domain/user"
	"canteen-core/internal/handler/dto/request"
	"canteen-core/internal/handler/dto/response"
	"canteen-core/tests/common/dbtest"
	"canteen-core/tests/common/httptest"
	"canteen-core/tests/e2e"
	"canteen-core/tests/e2e/common/helper"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL      = "/api/orders"
	dailyReportURL = "/api/reports/daily"
)

type OrderSuite struct {
	e2e.SharedSuite
	jwtHelper *helper.JWTTestHelper
}

func (s *OrderSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = helper.NewJWTTestHelper(s.Config.JWT)
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderSuite))
}

func (s *OrderSuite) studentToken(userID uuid.UUID) string {
	return s.jwtHelper.GenerateToken(s.T(), userID, user.RoleStudent)
}

func (s *OrderSuite) adminToken() string {
	return s.jwtHelper.GenerateToken(s.T(), uuid.New(), user.RoleAdmin)
}

func (s *OrderSuite) seedCart(canteenID uuid.UUID) request.CreateOrderRequest {
	t := s.T()
	thaliID := dbtest.CreateTestMenuItem(t, s.DB, canteenID, "Veg Thali", 10000)
	lassiID := dbtest.CreateTestMenuItem(t, s.DB, canteenID, "Sweet Lassi", 5000)
	return request.CreateOrderRequest{
		CanteenID: canteenID,
		Items: []request.OrderItemRequest{
			{MenuItemID: thaliID, Quantity: 2},
			{MenuItemID: lassiID, Quantity: 1},
		},
	}
}

// =============================================================================
// TestCreateOrder
// =============================================================================

func (s *OrderSuite) TestCreateOrder() {
	s.Run("Normal case: student places an order and gets a priced bill", func() {
		t := s.T()
		userID := uuid.New()
		canteenID := uuid.New()
		reqBody := s.seedCart(canteenID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, s.studentToken(userID))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		// 25000 subtotal, 3 units of service charge, 5% GST on the subtotal
		expected := response.OrderResponse{
			UserID:             userID,
			CanteenID:          canteenID,
			SubtotalCents:      25000,
			ServiceChargeCents: 600,
			GSTCents:           1250,
			DiscountCents:      0,
			TotalCents:         26850,
			Status:             "Pending",
			PaymentStatus:      "Paid",
		}
		ignore := cmpopts.IgnoreFields(response.OrderResponse{},
			"ID", "TokenNumber", "Items", "Timeline", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(expected, created, ignore); diff != "" {
			t.Errorf("order response mismatch (-want +got):\n%s", diff)
		}

		require.Regexp(t, `^CTN-\d{7}$`, created.TokenNumber)
		require.Len(t, created.Items, 2)
		require.NotNil(t, created.Timeline.PendingAt)

		// The audit entry is written asynchronously
		require.Eventually(t, func() bool {
			return dbtest.CountActivityLogs(t, s.DB, "order.created") >= 1
		}, 2*time.Second, 50*time.Millisecond, "audit entry for order.created not recorded")
	})

	s.Run("Normal case: invalid coupon code falls back to full price", func() {
		t := s.T()
		canteenID := uuid.New()
		reqBody := s.seedCart(canteenID)
		code := "NO-SUCH-CODE"
		reqBody.CouponCode = &code

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, s.studentToken(uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.EqualValues(t, 0, created.DiscountCents)
		require.EqualValues(t, 26850, created.TotalCents)
		require.Nil(t, created.CouponID)
	})

	s.Run("Normal case: valid coupon discounts the bill and burns one use", func() {
		t := s.T()
		canteenID := uuid.New()
		reqBody := s.seedCart(canteenID)

		limit := int64(10)
		couponID := dbtest.CreateTestCoupon(t, s.DB, dbtest.CouponSpec{
			Code:       "FLAT15",
			Type:       "flat",
			Value:      1500,
			UsageLimit: &limit,
			IsActive:   true,
		})
		code := "FLAT15"
		reqBody.CouponCode = &code

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, s.studentToken(uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.EqualValues(t, 1500, created.DiscountCents)
		require.EqualValues(t, 25350, created.TotalCents)
		require.NotNil(t, created.CouponID)
		require.EqualValues(t, 1, dbtest.CouponUsageCount(t, s.DB, couponID))
	})

	s.Run("Error case: unavailable menu item rejects the order", func() {
		t := s.T()
		canteenID := uuid.New()
		itemID := dbtest.CreateTestMenuItem(t, s.DB, canteenID, "Sold Out Special", 8000)
		dbtest.MarkMenuItemUnavailable(t, s.DB, itemID)

		reqBody := request.CreateOrderRequest{
			CanteenID: canteenID,
			Items:     []request.OrderItemRequest{{MenuItemID: itemID, Quantity: 1}},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, s.studentToken(uuid.New()))
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Error case: expired token is rejected", func() {
		t := s.T()
		token := s.jwtHelper.CreateExpiredToken(t, uuid.New(), user.RoleStudent)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestOrderLifecycle
// =============================================================================

func (s *OrderSuite) TestOrderLifecycle() {
	s.Run("Normal case: staff walks an order to Delivered and the timeline fills in", func() {
		t := s.T()
		userID := uuid.New()
		orderID := s.placeOrder(userID)
		admin := s.adminToken()

		for _, status := range []string{"Cooking", "Ready", "Delivered"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
				fmt.Sprintf("%s/%s/status", ordersURL, orderID), request.UpdateOrderStatusRequest{Status: status}, admin)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", ordersURL, orderID), nil, s.studentToken(userID))
		require.Equal(t, http.StatusOK, w.Code)

		var got response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, "Delivered", got.Status)
		require.NotNil(t, got.Timeline.PendingAt)
		require.NotNil(t, got.Timeline.CookingAt)
		require.NotNil(t, got.Timeline.ReadyAt)
		require.NotNil(t, got.Timeline.DeliveredAt)
	})

	s.Run("Error case: a delivered order refuses further transitions", func() {
		t := s.T()
		orderID := s.placeOrder(uuid.New())
		admin := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s/status", ordersURL, orderID), request.UpdateOrderStatusRequest{Status: "Delivered"}, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s/status", ordersURL, orderID), request.UpdateOrderStatusRequest{Status: "Cooking"}, admin)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: students may not drive the lifecycle", func() {
		t := s.T()
		orderID := s.placeOrder(uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s/status", ordersURL, orderID), request.UpdateOrderStatusRequest{Status: "Cooking"},
			s.studentToken(uuid.New()))
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestCancelOrder
// =============================================================================

func (s *OrderSuite) TestCancelOrder() {
	s.Run("Normal case: owner cancels while the order is Pending", func() {
		t := s.T()
		userID := uuid.New()
		orderID := s.placeOrder(userID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/cancel", ordersURL, orderID), nil, s.studentToken(userID))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, "Cancelled", got.Status)
		require.Equal(t, "Refunded", got.PaymentStatus)
		require.NotNil(t, got.Timeline.CancelledAt)
	})

	s.Run("Error case: cancelling someone else's order is forbidden", func() {
		t := s.T()
		orderID := s.placeOrder(uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/cancel", ordersURL, orderID), nil, s.studentToken(uuid.New()))
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: the cancel window closes once the order is Ready", func() {
		t := s.T()
		userID := uuid.New()
		orderID := s.placeOrder(userID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s/status", ordersURL, orderID), request.UpdateOrderStatusRequest{Status: "Ready"}, s.adminToken())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/cancel", ordersURL, orderID), nil, s.studentToken(userID))
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestOrderVisibility
// =============================================================================

func (s *OrderSuite) TestOrderVisibility() {
	s.Run("Normal case: staff sees any order, other students see nothing", func() {
		t := s.T()
		orderID := s.placeOrder(uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", ordersURL, orderID), nil, s.adminToken())
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", ordersURL, orderID), nil, s.studentToken(uuid.New()))
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Normal case: the pickup token card carries a QR code", func() {
		t := s.T()
		userID := uuid.New()
		orderID := s.placeOrder(userID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s/token", ordersURL, orderID), nil, s.studentToken(userID))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var card response.TokenCardResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &card))
		require.Regexp(t, `^CTN-\d{7}$`, card.TokenNumber)
		require.NotEmpty(t, card.QRCodePNG)
	})
}

// =============================================================================
// TestDailyReport
// =============================================================================

func (s *OrderSuite) TestDailyReport() {
	s.Run("Normal case: admin reads aggregate counts for the day", func() {
		t := s.T()
		s.placeOrder(uuid.New())
		s.placeOrder(uuid.New())

		date := time.Now().UTC().Format("2006-01-02")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			dailyReportURL+"?date="+date, nil, s.adminToken())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var report response.DailyReportResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &report))
		require.Equal(t, date, report.Date)
		require.EqualValues(t, 2, report.TotalOrders)
		require.EqualValues(t, 2, report.StatusCounts["Pending"])
	})

	s.Run("Error case: students cannot read reports", func() {
		t := s.T()
		date := time.Now().UTC().Format("2006-01-02")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			dailyReportURL+"?date="+date, nil, s.studentToken(uuid.New()))
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *OrderSuite) placeOrder(userID uuid.UUID) uuid.UUID {
	t := s.T()
	reqBody := s.seedCart(uuid.New())

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, s.studentToken(userID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.OrderResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created.ID
}
