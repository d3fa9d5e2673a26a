package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/codex-employee-dashboard/internal/core/auth"
	"github.com/ogurasousui/codex-employee-dashboard/internal/core/employee"
	"github.com/ogurasousui/codex-employee-dashboard/internal/core/storage"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, employee.ErrInvalidFullName),
		errors.Is(err, employee.ErrInvalidGender),
		errors.Is(err, employee.ErrInvalidDateOfBirth),
		errors.Is(err, employee.ErrInvalidState),
		errors.Is(err, employee.ErrInvalidStatusFilter),
		errors.Is(err, auth.ErrInvalidUser):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrSessionNotFound):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, employee.ErrNotLoaded):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, storage.ErrStorageUnavailable), errors.Is(err, storage.ErrCorruptValue):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
