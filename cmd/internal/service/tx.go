package service

import (
	"context"

	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/labstack/gommon/log"
)

// Transactor runs fn as one unit of work; repositories called with the
// context passed to fn join it.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// resolve maps an error out of a unit of work to the response the caller sees.
// An ErrorResponse raised inside fn is passed through; anything else is
// logged as a store failure.
func resolve(err error, op string) apierror.ErrorResponse {
	if err == nil {
		return nil
	}
	if apierr, ok := apierror.As(err); ok {
		return apierr
	}
	log.Errorf("%s: %v", op, err)
	return apierror.InternalServerError
}

type MessageResponse struct {
	Message string `json:"message"`
}
