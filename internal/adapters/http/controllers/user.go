package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trendloom/backoffice/internal/adapters/http/handlers"
	"github.com/trendloom/backoffice/internal/core/domain"
	"github.com/trendloom/backoffice/internal/core/dto"
	"github.com/trendloom/backoffice/internal/core/service"
	"github.com/trendloom/backoffice/internal/core/serviceerrors"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

type UserResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsBlocked bool      `json:"isBlocked"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        string(user.ID),
		Name:      user.Name,
		Email:     user.Email,
		IsBlocked: user.IsBlocked,
		CreatedAt: user.CreatedAt,
	}
}

type OrderResponse struct {
	ID            string              `json:"_id"`
	UserID        string              `json:"userId"`
	Items         []OrderItemResponse `json:"items"`
	Amount        float64             `json:"amount"`
	Address       map[string]string   `json:"address"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"paymentMethod"`
	Payment       bool                `json:"payment"`
	Date          time.Time           `json:"date"`
}

type OrderItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

func NewOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ProductID: string(item.ProductID),
			Name:      item.Name,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Price:     item.Price.Float64(),
		}
	}

	return OrderResponse{
		ID:            string(order.ID),
		UserID:        string(order.UserID),
		Items:         items,
		Amount:        order.Amount.Float64(),
		Address:       order.Address,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod,
		Payment:       order.Payment,
		Date:          order.Date,
	}
}

// Register godoc
// @Summary     Register a customer account
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body dto.RegisterRequest true "Account data"
// @Success     201 {object} map[string]any
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     409 {object} handlers.ErrorResponse
// @Router      /api/user/register [post]
func (uc *UserController) Register(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	token, err := uc.userService.Register(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token})
}

// Login godoc
// @Summary     Customer login
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body dto.LoginRequest true "Credentials"
// @Success     200 {object} map[string]any
// @Failure     401 {object} handlers.ErrorResponse
// @Failure     403 {object} handlers.ErrorResponse
// @Router      /api/user/login [post]
func (uc *UserController) Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	token, err := uc.userService.Login(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// AdminLogin godoc
// @Summary     Operator login
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body dto.AdminLoginRequest true "Credentials"
// @Success     200 {object} map[string]any
// @Failure     401 {object} handlers.ErrorResponse
// @Router      /api/user/admin [post]
func (uc *UserController) AdminLogin(c *gin.Context) {
	var request dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	token, err := uc.userService.AdminLogin(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// List godoc
// @Summary     List customer accounts
// @Tags        users
// @Produce     json
// @Success     200 {array} UserResponse
// @Failure     401 {object} handlers.ErrorResponse
// @Router      /api/user/list [get]
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.userService.GetAll(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]UserResponse, len(users))
	for i, user := range users {
		response[i] = NewUserResponse(user)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": response})
}

// ToggleBlock godoc
// @Summary     Toggle a customer block flag
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body dto.BlockUserRequest true "User ID"
// @Success     200 {object} map[string]any
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/user/block [post]
func (uc *UserController) ToggleBlock(c *gin.Context) {
	var request dto.BlockUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if !domain.ValidateID(request.UserID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("invalid user id"))
		return
	}

	blocked, err := uc.userService.ToggleBlock(c.Request.Context(), domain.ID(request.UserID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	message := "User unblocked"
	if blocked {
		message = "User blocked"
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "blocked": blocked, "message": message})
}

// Orders godoc
// @Summary     List a customer's orders
// @Tags        users
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {array} OrderResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/user/orders/{userId} [get]
func (uc *UserController) Orders(c *gin.Context) {
	userID := c.Param("userId")
	if !domain.ValidateID(userID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("invalid user id"))
		return
	}

	orders, err := uc.userService.GetOrders(c.Request.Context(), domain.ID(userID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]OrderResponse, len(orders))
	for i, order := range orders {
		response[i] = NewOrderResponse(order)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": response})
}
