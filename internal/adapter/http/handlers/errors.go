package handlers

import (
	"errors"
	"net/http"

	"tiffin_tales/internal/usecase"
	"tiffin_tales/pkg"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// mapUseCaseError translates use-case sentinels into the HTTP error envelope.
func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidRowID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrUnknownRowField):
		return pkg.NewDomainErrorSimple("UNKNOWN_ROW_FIELD", "Field must be one of people, unit_price, days", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedQuoteFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_QUOTE_FORMAT", "Quote format must be pdf or xlsx", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Estimator session not found or expired", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRowNotFound):
		return pkg.NewDomainErrorSimple("ROW_NOT_FOUND", "Order row not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAddRowBlocked):
		return pkg.NewDomainErrorSimple("ADD_ROW_BLOCKED", "Please enter valid days (>0) to add another item", http.StatusConflict)
	case errors.Is(err, usecase.ErrExportInProgress):
		return pkg.NewDomainErrorSimple("EXPORT_IN_PROGRESS", "A quote is already being generated", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToExport):
		return pkg.NewDomainErrorSimple("NOTHING_TO_EXPORT", "Add at least one priced order before downloading a quote", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteGenerationFailed):
		return pkg.NewDomainError("QUOTE_GENERATION_FAILED", usecase.QuoteGenerationFailedNotice, err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
