package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "canteen-core/internal/handler/dto/request"
	resdto "canteen-core/internal/handler/dto/response"
	"canteen-core/internal/handler/middleware"
	"canteen-core/internal/pkg/errs"
	"canteen-core/internal/usecase/commands"
	"canteen-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Create order
// @Description Place an order for menu items at one canteen
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	items := make([]commands.CartLine, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.CartLine{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
	}

	input := commands.CreateOrderInput{
		CanteenID:  req.CanteenID,
		CounterID:  req.CounterID,
		Items:      items,
		CouponCode: req.GetCouponCode(),
	}

	view, err := h.orderCommands.CreateOrder(c.Request.Context(), input, userID)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		case errs.Is(err, errs.ErrMenuItemUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "One or more menu items are unavailable",
			})
		case errs.Is(err, errs.ErrTokenConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Could not allocate a pickup token, please retry",
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid order request",
			})
		case errs.Is(err, errs.ErrDomainValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description List orders visible to the current user
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param canteen_id query string false "Filter by canteen"
// @Param status query string false "Filter by status"
// @Param limit query int false "Max rows to return"
// @Success 200 {array} resdto.OrderListResponse
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	viewer, ok := viewerFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	filter, err := h.parseListFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	items, err := h.orderQueries.List(c.Request.Context(), viewer, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.OrderListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromOrderListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get order
// @Description Get order by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	viewer, ok := viewerFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), viewer, id)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Update order status
// @Description Move an order through its lifecycle (canteen staff only)
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	var req reqdto.UpdateOrderStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.orderCommands.UpdateStatus(c.Request.Context(), id, req.Status, req.PaymentStatus, actor)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errs.Is(err, errs.ErrTerminalState):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order is in a terminal state",
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status value",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Cancel order
// @Description Cancel own order while it is still Pending or Cooking
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	view, err := h.orderCommands.CancelOrder(c.Request.Context(), id, actor)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errs.Is(err, errs.ErrNotOrderOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the order owner can cancel",
			})
		case errs.Is(err, errs.ErrCancelWindowClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order can no longer be cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Get pickup token card
// @Description Get the pickup token and its QR code for an order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.TokenCardResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/token [get]
func (h *OrderHandler) GetTokenCard(c *gin.Context) {
	viewer, ok := viewerFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	card, err := h.orderQueries.TokenCard(c.Request.Context(), viewer, id)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTokenCardView(card))
}

func (h *OrderHandler) parseListFilter(c *gin.Context) (queries.OrderFilter, error) {
	var filter queries.OrderFilter

	if raw := c.Query("canteen_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("invalid canteen_id format")
		}
		filter.CanteenID = &id
	}
	if raw := c.Query("status"); raw != "" {
		filter.Status = &raw
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return filter, errors.New("invalid limit format")
		}
		filter.Limit = limit
	}
	return filter, nil
}

func viewerFromContext(c *gin.Context) (queries.Viewer, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return queries.Viewer{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return queries.Viewer{}, false
	}
	return queries.Viewer{ID: userID, Role: role}, true
}

func actorFromContext(c *gin.Context) (commands.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return commands.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return commands.Actor{}, false
	}
	return commands.Actor{ID: userID, Role: role}, true
}
