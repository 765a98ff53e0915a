package handler

import (
	"bank-services/internal/api/handler/dto"
	"bank-services/internal/domain/biz"
	"bank-services/internal/domain/savingsaccount"
	"bank-services/internal/pkg/apperrors"
	"fmt"
	"log/slog"
	"net/http"
)

const savingsAccountsCollection = "savingsbankaccounts"

type SavingsAccountHandler struct {
	service savingsaccount.SavingsAccountService
	logger  *slog.Logger
}

func NewSavingsAccountHandler(s savingsaccount.SavingsAccountService, l *slog.Logger) *SavingsAccountHandler {
	if s == nil {
		panic("savings bank account service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &SavingsAccountHandler{
		service: s,
		logger:  l.With("component", "SavingsAccountHandler"),
	}
}

// SearchSavingsAccounts handles GET /savingsbankaccounts
// @Summary Search savings bank accounts
// @Description Returns the savings bank accounts whose fields contain every given query value. Without query parameters all savings bank accounts are returned.
// @Tags SavingsBankAccounts
// @Produce json
// @Param customerName query string false "Part of the customer name"
// @Param location query string false "Part of the branch location"
// @Success 200 {array} dto.SavingsAccountResponse "Matching savings bank accounts, possibly none"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Missing permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /savingsbankaccounts [get]
// @Security BearerAuth
func (h *SavingsAccountHandler) SearchSavingsAccounts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.SearchSavingsAccounts(r.Context(), searchQuery(r.URL.Query()))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to search savings bank accounts", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Savings bank accounts searched", slog.Int("count", len(resp.Data)))
	respondJSON(w, http.StatusOK, dto.NewSavingsAccountResponses(resp.Data))
}

// GetSavingsAccount handles GET /savingsbankaccounts/{id}
// @Summary Retrieve a savings bank account
// @Tags SavingsBankAccounts
// @Produce json
// @Param id path int true "Savings bank account ID"
// @Success 200 {object} dto.SavingsAccountResponse "Savings bank account details"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Missing permission"
// @Failure 404 {object} dto.MessageResponse "Savings bank account not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /savingsbankaccounts/{id} [get]
// @Security BearerAuth
func (h *SavingsAccountHandler) GetSavingsAccount(w http.ResponseWriter, r *http.Request) {
	raw, id, ok := pathID(r)
	notFound := dto.MessageResponse{Message: fmt.Sprintf("Savings Bank Account with ID '%s' could not be found.", raw)}
	if !ok {
		respondJSON(w, http.StatusNotFound, notFound)
		return
	}

	resp, err := h.service.GetSavingsAccountByID(r.Context(), id)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to get savings bank account", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if resp.Status != biz.StatusSpecificItemFound || resp.Data == nil {
		respondJSON(w, http.StatusNotFound, notFound)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewSavingsAccountResponse(resp.Data))
}

// AddSavingsAccount handles POST /savingsbankaccounts
// @Summary Create a savings bank account
// @Description Creates a savings bank account after the business validations pass. The new resource URL is returned in the Location header.
// @Tags SavingsBankAccounts
// @Accept json
// @Produce json
// @Param request body dto.SavingsAccountRequest true "New savings bank account; id is ignored"
// @Success 201 "Savings bank account created"
// @Header 201 {string} Location "URL of the new savings bank account"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Missing permission"
// @Failure 422 {object} dto.ValidationFailuresResponse "Business validations failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /savingsbankaccounts [post]
// @Security BearerAuth
func (h *SavingsAccountHandler) AddSavingsAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.SavingsAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	resp, err := h.service.AddSavingsAccount(r.Context(), req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to add savings bank account", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if !resp.IsValid() {
		respondJSON(w, http.StatusUnprocessableEntity, dto.ValidationFailuresResponse{
			Message:            "Business validations failed for adding new savings bank account.",
			ValidationFailures: resp.ValidationFailures,
		})
		return
	}

	w.Header().Set("Location", resourceLocation(r, savingsAccountsCollection, resp.Data.ID))
	w.WriteHeader(http.StatusCreated)
}

// ModifySavingsAccount handles PUT /savingsbankaccounts
// @Summary Replace a savings bank account
// @Description Replaces the savings bank account identified by the id in the body.
// @Tags SavingsBankAccounts
// @Accept json
// @Produce json
// @Param request body dto.SavingsAccountRequest true "Full savings bank account including its id"
// @Success 204 "Savings bank account modified"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Missing permission"
// @Failure 404 {object} dto.MessageResponse "Savings bank account not found"
// @Failure 422 {object} dto.ValidationFailuresResponse "Business validations failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /savingsbankaccounts [put]
// @Security BearerAuth
func (h *SavingsAccountHandler) ModifySavingsAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.SavingsAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	resp, err := h.service.ModifySavingsAccount(r.Context(), req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to modify savings bank account", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if !resp.IsValid() {
		respondJSON(w, http.StatusUnprocessableEntity, dto.ValidationFailuresResponse{
			Message:            "Business validations failed for modifying existing savings bank account.",
			ValidationFailures: resp.ValidationFailures,
		})
		return
	}
	if resp.Status == biz.StatusSpecificItemNotFound {
		respondJSON(w, http.StatusNotFound, dto.MessageResponse{
			Message: fmt.Sprintf("Savings Bank Account with ID '%d' could not be found.", req.ID),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteSavingsAccount handles DELETE /savingsbankaccounts/{id}
// @Summary Delete a savings bank account
// @Tags SavingsBankAccounts
// @Produce json
// @Param id path int true "Savings bank account ID"
// @Success 204 "Savings bank account deleted"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Missing permission"
// @Failure 404 {object} dto.MessageResponse "Savings bank account not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /savingsbankaccounts/{id} [delete]
// @Security BearerAuth
func (h *SavingsAccountHandler) DeleteSavingsAccount(w http.ResponseWriter, r *http.Request) {
	raw, id, ok := pathID(r)
	notFound := dto.MessageResponse{Message: fmt.Sprintf("Savings bank account with ID '%s' could not be found.", raw)}
	if !ok {
		respondJSON(w, http.StatusNotFound, notFound)
		return
	}

	resp, err := h.service.DeleteSavingsAccount(r.Context(), id)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to delete savings bank account", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if resp.Status == biz.StatusSpecificItemNotFound {
		respondJSON(w, http.StatusNotFound, notFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
