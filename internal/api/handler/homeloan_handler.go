package handler

import (
	"bank-services/internal/api/handler/dto"
	"bank-services/internal/domain/biz"
	"bank-services/internal/domain/homeloan"
	"bank-services/internal/pkg/apperrors"
	"fmt"
	"log/slog"
	"net/http"
)

const homeLoansCollection = "homeloans"

type HomeLoanHandler struct {
	service homeloan.HomeLoanService
	logger  *slog.Logger
}

func NewHomeLoanHandler(s homeloan.HomeLoanService, l *slog.Logger) *HomeLoanHandler {
	if s == nil {
		panic("home loan service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &HomeLoanHandler{
		service: s,
		logger:  l.With("component", "HomeLoanHandler"),
	}
}

// SearchHomeLoans handles GET /homeloans
// @Summary Search home loans
// @Description Returns the home loans whose fields contain every given query value. Without query parameters all home loans are returned.
// @Tags HomeLoans
// @Produce json
// @Param customerName query string false "Part of the customer name"
// @Param location query string false "Part of the property location"
// @Success 200 {array} dto.HomeLoanResponse "Matching home loans, possibly none"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Missing permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /homeloans [get]
// @Security BearerAuth
func (h *HomeLoanHandler) SearchHomeLoans(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.SearchHomeLoans(r.Context(), searchQuery(r.URL.Query()))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to search home loans", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Home loans searched", slog.Int("count", len(resp.Data)))
	respondJSON(w, http.StatusOK, dto.NewHomeLoanResponses(resp.Data))
}

// GetHomeLoan handles GET /homeloans/{id}
// @Summary Retrieve a home loan
// @Tags HomeLoans
// @Produce json
// @Param id path int true "Home loan ID"
// @Success 200 {object} dto.HomeLoanResponse "Home loan details"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Missing permission"
// @Failure 404 {object} dto.MessageResponse "Home loan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /homeloans/{id} [get]
// @Security BearerAuth
func (h *HomeLoanHandler) GetHomeLoan(w http.ResponseWriter, r *http.Request) {
	raw, id, ok := pathID(r)
	notFound := dto.MessageResponse{Message: fmt.Sprintf("Home Loan with ID '%s' could not be found.", raw)}
	if !ok {
		respondJSON(w, http.StatusNotFound, notFound)
		return
	}

	resp, err := h.service.GetHomeLoanByID(r.Context(), id)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to get home loan", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if resp.Status != biz.StatusSpecificItemFound || resp.Data == nil {
		respondJSON(w, http.StatusNotFound, notFound)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewHomeLoanResponse(resp.Data))
}

// AddHomeLoan handles POST /homeloans
// @Summary Create a home loan
// @Description Creates a home loan after the business validations pass. The new resource URL is returned in the Location header.
// @Tags HomeLoans
// @Accept json
// @Produce json
// @Param request body dto.HomeLoanRequest true "New home loan; id is ignored"
// @Success 201 "Home loan created"
// @Header 201 {string} Location "URL of the new home loan"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Missing permission"
// @Failure 422 {object} dto.ValidationFailuresResponse "Business validations failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /homeloans [post]
// @Security BearerAuth
func (h *HomeLoanHandler) AddHomeLoan(w http.ResponseWriter, r *http.Request) {
	var req dto.HomeLoanRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	resp, err := h.service.AddHomeLoan(r.Context(), req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to add home loan", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if !resp.IsValid() {
		respondJSON(w, http.StatusUnprocessableEntity, dto.ValidationFailuresResponse{
			Message:            "Business validations failed for adding new home loan.",
			ValidationFailures: resp.ValidationFailures,
		})
		return
	}

	w.Header().Set("Location", resourceLocation(r, homeLoansCollection, resp.Data.ID))
	w.WriteHeader(http.StatusCreated)
}

// ModifyHomeLoan handles PUT /homeloans
// @Summary Replace a home loan
// @Description Replaces the home loan identified by the id in the body.
// @Tags HomeLoans
// @Accept json
// @Produce json
// @Param request body dto.HomeLoanRequest true "Full home loan including its id"
// @Success 204 "Home loan modified"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Missing permission"
// @Failure 404 {object} dto.MessageResponse "Home loan not found"
// @Failure 422 {object} dto.ValidationFailuresResponse "Business validations failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /homeloans [put]
// @Security BearerAuth
func (h *HomeLoanHandler) ModifyHomeLoan(w http.ResponseWriter, r *http.Request) {
	var req dto.HomeLoanRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	resp, err := h.service.ModifyHomeLoan(r.Context(), req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to modify home loan", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if !resp.IsValid() {
		respondJSON(w, http.StatusUnprocessableEntity, dto.ValidationFailuresResponse{
			Message:            "Business validations failed for modifying existing home loan.",
			ValidationFailures: resp.ValidationFailures,
		})
		return
	}
	if resp.Status == biz.StatusSpecificItemNotFound {
		respondJSON(w, http.StatusNotFound, dto.MessageResponse{
			Message: fmt.Sprintf("Home Loan with ID '%d' could not be found.", req.ID),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteHomeLoan handles DELETE /homeloans/{id}
// @Summary Delete a home loan
// @Tags HomeLoans
// @Produce json
// @Param id path int true "Home loan ID"
// @Success 204 "Home loan deleted"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Missing permission"
// @Failure 404 {object} dto.MessageResponse "Home loan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /homeloans/{id} [delete]
// @Security BearerAuth
func (h *HomeLoanHandler) DeleteHomeLoan(w http.ResponseWriter, r *http.Request) {
	raw, id, ok := pathID(r)
	notFound := dto.MessageResponse{Message: fmt.Sprintf("Home loan with ID '%s' could not be found.", raw)}
	if !ok {
		respondJSON(w, http.StatusNotFound, notFound)
		return
	}

	resp, err := h.service.DeleteHomeLoan(r.Context(), id)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to delete home loan", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if resp.Status == biz.StatusSpecificItemNotFound {
		respondJSON(w, http.StatusNotFound, notFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
