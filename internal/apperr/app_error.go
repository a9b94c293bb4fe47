package apperr

import "github.com/nikita1503agarwal/storefront-backend/pkg/zerror"

const (
	ValidationErrorCode      = "VALIDATION_FAILED"
	StoreNotConfiguredCode   = "DATABASE_NOT_CONFIGURED"
	StoreOperationFailedCode = "DATABASE_OPERATION_FAILED"
)

var (
	ValidationErr         = zerror.NewUnprocessableEntity(ValidationErrorCode, "validation error")
	StoreNotConfiguredErr = zerror.NewInternalServerError(StoreNotConfiguredCode, "database not configured")
	StoreOperationErr     = zerror.NewInternalServerError(StoreOperationFailedCode, "database operation failed")
)
