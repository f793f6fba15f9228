package service

import (
	"context"
	"crypto/subtle"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/trendloom/backoffice/internal/core/auth"
	"github.com/trendloom/backoffice/internal/core/domain"
	"github.com/trendloom/backoffice/internal/core/dto"
	"github.com/trendloom/backoffice/internal/core/logger"
	"github.com/trendloom/backoffice/internal/core/port"
	"github.com/trendloom/backoffice/internal/core/serviceerrors"
)

const minPasswordLength = 8

// adminSubject is the token subject for the back-office operator account,
// which exists only in configuration and has no user document.
const adminSubject = "admin"

type UserService struct {
	userRepository  port.UserPort
	orderRepository port.OrderPort
	tokens          *auth.TokenIssuer
	adminEmail      string
	adminPassword   string
}

func NewUserService(
	userRepository port.UserPort,
	orderRepository port.OrderPort,
	tokens *auth.TokenIssuer,
	adminEmail string,
	adminPassword string,
) *UserService {
	return &UserService{
		userRepository:  userRepository,
		orderRepository: orderRepository,
		tokens:          tokens,
		adminEmail:      adminEmail,
		adminPassword:   adminPassword,
	}
}

// Register creates a customer account and returns a session token.
// Email uniqueness is enforced both here and by the unique index, so a
// concurrent duplicate still surfaces as a conflict.
func (s *UserService) Register(ctx context.Context, request *dto.RegisterRequest) (string, error) {
	if len(request.Password) < minPasswordLength {
		return "", serviceerrors.NewInvalidRequestError("please enter a strong password")
	}

	existing, err := s.userRepository.GetByEmail(ctx, request.Email)
	if err != nil && !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
		return "", err
	}
	if existing != nil {
		return "", serviceerrors.NewConflictError("user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error(ctx, "user: password hash failed", err, nil)
		return "", err
	}

	user := domain.NewUser(request.Name, request.Email, string(hash))
	if err := s.userRepository.Create(ctx, user); err != nil {
		logger.Error(ctx, "user: create failed", err, map[string]any{
			"email": request.Email,
		})
		return "", err
	}

	logger.Info(ctx, "User registered", map[string]any{"user_id": user.ID})
	return s.tokens.Issue(string(user.ID), false)
}

func (s *UserService) Login(ctx context.Context, request *dto.LoginRequest) (string, error) {
	user, err := s.userRepository.GetByEmail(ctx, request.Email)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return "", serviceerrors.NewUnauthorizedError("invalid credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		return "", serviceerrors.NewUnauthorizedError("invalid credentials")
	}

	if user.IsBlocked {
		return "", serviceerrors.NewForbiddenError("account is blocked, contact support")
	}

	logger.Info(ctx, "User logged in", map[string]any{"user_id": user.ID})
	return s.tokens.Issue(string(user.ID), false)
}

// AdminLogin checks the submitted pair against the configured operator
// credentials. Both comparisons always run so a matching email alone does
// not change response timing.
func (s *UserService) AdminLogin(ctx context.Context, request *dto.AdminLoginRequest) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(request.Email), []byte(s.adminEmail))
	passwordOK := subtle.ConstantTimeCompare([]byte(request.Password), []byte(s.adminPassword))
	if emailOK&passwordOK != 1 {
		return "", serviceerrors.NewUnauthorizedError("invalid credentials")
	}

	logger.Info(ctx, "Admin logged in", nil)
	return s.tokens.Issue(adminSubject, true)
}

func (s *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	return s.userRepository.GetAll(ctx)
}

// ToggleBlock flips the block flag on the user and returns the new state.
func (s *UserService) ToggleBlock(ctx context.Context, id domain.ID) (bool, error) {
	user, err := s.userRepository.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	blocked := !user.IsBlocked
	event := domain.NewUserBlockToggledEvent(user.ID, blocked, time.Now())
	if err := s.userRepository.SetBlockedWithOutbox(ctx, id, blocked, event); err != nil {
		logger.Error(ctx, "user: block toggle failed", err, map[string]any{
			"user_id": id,
		})
		return false, err
	}

	logger.Info(ctx, "User block toggled", map[string]any{
		"user_id": id,
		"blocked": blocked,
	})
	return blocked, nil
}

func (s *UserService) GetOrders(ctx context.Context, userID domain.ID) ([]*domain.Order, error) {
	orders, err := s.orderRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, serviceerrors.NewNotFoundError("no orders found for this user")
	}
	return orders, nil
}
