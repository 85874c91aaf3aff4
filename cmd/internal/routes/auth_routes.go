package routes

import (
	"context"
	"net/http"

	"github.com/Gyan0205/hospital-management/cmd/internal/service"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type AuthService interface {
	Login(ctx context.Context, req *service.UserLoginRequest) (*service.UserLoginResponse, apierror.ErrorResponse)
	Register(ctx context.Context, req *service.RegisterRequest) (*service.MessageResponse, apierror.ErrorResponse)
}

type DefaultAuthRoute struct {
	AuthService AuthService
}

func NewAuthDefault(authService AuthService) *DefaultAuthRoute {
	return &DefaultAuthRoute{AuthService: authService}
}

func (u *DefaultAuthRoute) CreateLogin(c echo.Context) error {
	var req service.UserLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := u.AuthService.Login(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (u *DefaultAuthRoute) Register(c echo.Context) error {
	var req service.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := u.AuthService.Register(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

type SessionResponse struct {
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	ReferenceID *int   `json:"reference_id"`
}

// Me echoes the identity carried by the caller's token.
func (u *DefaultAuthRoute) Me(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
	}
	return c.JSON(http.StatusOK, &SessionResponse{UserID: data.Subject, Role: data.Role, ReferenceID: data.ReferenceID})
}
