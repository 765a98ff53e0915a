package handler

import (
	"bank-services/internal/domain/biz"
	"bank-services/internal/domain/savingsaccount"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSavingsAccountService struct {
	mock.Mock
}

func (m *MockSavingsAccountService) AddSavingsAccount(ctx context.Context, account *savingsaccount.SavingsAccount) (biz.Response[*savingsaccount.SavingsAccount], error) {
	args := m.Called(ctx, account)
	return args.Get(0).(biz.Response[*savingsaccount.SavingsAccount]), args.Error(1)
}

func (m *MockSavingsAccountService) ModifySavingsAccount(ctx context.Context, account *savingsaccount.SavingsAccount) (biz.StatusResponse, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(biz.StatusResponse), args.Error(1)
}

func (m *MockSavingsAccountService) GetSavingsAccountByID(ctx context.Context, id int64) (biz.Response[*savingsaccount.SavingsAccount], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(biz.Response[*savingsaccount.SavingsAccount]), args.Error(1)
}

func (m *MockSavingsAccountService) SearchSavingsAccounts(ctx context.Context, query map[string]string) (biz.Response[[]*savingsaccount.SavingsAccount], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(biz.Response[[]*savingsaccount.SavingsAccount]), args.Error(1)
}

func (m *MockSavingsAccountService) DeleteSavingsAccount(ctx context.Context, id int64) (biz.StatusResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(biz.StatusResponse), args.Error(1)
}

func sampleSavingsAccount() *savingsaccount.SavingsAccount {
	return &savingsaccount.SavingsAccount{
		ID:            1,
		CustomerName:  "Chuck Johns",
		CustomerID:    1024,
		DepositAmount: decimal.NewFromInt(12000),
		Location:      "Sydney",
		BranchCode:    "Syd001",
	}
}

func TestSavingsAccountHandlerSearch(t *testing.T) {
	svc := new(MockSavingsAccountService)
	svc.On("SearchSavingsAccounts", mock.Anything, map[string]string{"branchCode": "Syd"}).
		Return(biz.NewResponse(biz.StatusMatchingItemsFound, []*savingsaccount.SavingsAccount{sampleSavingsAccount()}), nil)
	handler := NewSavingsAccountHandler(svc, logger)

	w := httptest.NewRecorder()
	handler.SearchSavingsAccounts(w, httptest.NewRequest(http.MethodGet, "/savingsbankaccounts?branchCode=Syd", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`[{"id":1,"customerName":"Chuck Johns","customerId":1024,"depositAmount":12000,"location":"Sydney","branchCode":"Syd001"}]`,
		w.Body.String())
	svc.AssertExpectations(t)
}

func TestSavingsAccountHandlerGet(t *testing.T) {
	t.Run("returns the account", func(t *testing.T) {
		svc := new(MockSavingsAccountService)
		svc.On("GetSavingsAccountByID", mock.Anything, int64(1)).
			Return(biz.NewResponse(biz.StatusSpecificItemFound, sampleSavingsAccount()), nil)
		handler := NewSavingsAccountHandler(svc, logger)

		w := httptest.NewRecorder()
		handler.GetSavingsAccount(w, withID(httptest.NewRequest(http.MethodGet, "/savingsbankaccounts/1", nil), "1"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"branchCode":"Syd001"`)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		svc := new(MockSavingsAccountService)
		svc.On("GetSavingsAccountByID", mock.Anything, int64(9)).
			Return(biz.NewResponse[*savingsaccount.SavingsAccount](biz.StatusSpecificItemNotFound, nil), nil)
		handler := NewSavingsAccountHandler(svc, logger)

		w := httptest.NewRecorder()
		handler.GetSavingsAccount(w, withID(httptest.NewRequest(http.MethodGet, "/savingsbankaccounts/9", nil), "9"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Savings Bank Account with ID '9' could not be found."}`, w.Body.String())
	})
}

func TestSavingsAccountHandlerAdd(t *testing.T) {
	t.Run("created with location header", func(t *testing.T) {
		svc := new(MockSavingsAccountService)
		svc.On("AddSavingsAccount", mock.Anything, mock.MatchedBy(func(a *savingsaccount.SavingsAccount) bool {
			return a.BranchCode == "Per001" && a.DepositAmount.Equal(decimal.NewFromInt(5000))
		})).Return(biz.NewResponse(biz.StatusCreated, &savingsaccount.SavingsAccount{ID: 5}), nil)
		handler := NewSavingsAccountHandler(svc, logger)

		body := `{"customerName":"Jane Roe","customerId":77,"depositAmount":5000,"location":"Perth","branchCode":"Per001"}`
		req := httptest.NewRequest(http.MethodPost, "/savingsbankaccounts", strings.NewReader(body))
		req.Host = "localhost:3000"
		w := httptest.NewRecorder()
		handler.AddSavingsAccount(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "http://localhost:3000/savingsbankaccounts/5", w.Header().Get("Location"))
		svc.AssertExpectations(t)
	})

	t.Run("numeric string customer id is accepted", func(t *testing.T) {
		svc := new(MockSavingsAccountService)
		svc.On("AddSavingsAccount", mock.Anything, mock.MatchedBy(func(a *savingsaccount.SavingsAccount) bool {
			return a.CustomerID == 1024
		})).Return(biz.NewResponse(biz.StatusCreated, &savingsaccount.SavingsAccount{ID: 6}), nil)
		handler := NewSavingsAccountHandler(svc, logger)

		body := `{"customerName":"Jane Roe","customerId":"1024","depositAmount":5000,"location":"Perth","branchCode":"Per001"}`
		w := httptest.NewRecorder()
		handler.AddSavingsAccount(w, httptest.NewRequest(http.MethodPost, "/savingsbankaccounts", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("business validation failures are unprocessable", func(t *testing.T) {
		svc := new(MockSavingsAccountService)
		svc.On("AddSavingsAccount", mock.Anything, mock.Anything).
			Return(biz.Invalid[*savingsaccount.SavingsAccount]([]biz.ValidationFailure{
				biz.NewValidationFailure("branchCode", "The Branch Code should not be empty."),
			}), nil)
		handler := NewSavingsAccountHandler(svc, logger)

		w := httptest.NewRecorder()
		handler.AddSavingsAccount(w, httptest.NewRequest(http.MethodPost, "/savingsbankaccounts", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Business validations failed for adding new savings bank account.")
	})
}

func TestSavingsAccountHandlerModify(t *testing.T) {
	svc := new(MockSavingsAccountService)
	svc.On("ModifySavingsAccount", mock.Anything, mock.Anything).
		Return(biz.NewStatusResponse(biz.StatusSpecificItemNotFound), nil)
	handler := NewSavingsAccountHandler(svc, logger)

	w := httptest.NewRecorder()
	handler.ModifySavingsAccount(w, httptest.NewRequest(http.MethodPut, "/savingsbankaccounts", strings.NewReader(`{"id":31}`)))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Savings Bank Account with ID '31' could not be found."}`, w.Body.String())
}

func TestSavingsAccountHandlerDelete(t *testing.T) {
	t.Run("deleted is no content", func(t *testing.T) {
		svc := new(MockSavingsAccountService)
		svc.On("DeleteSavingsAccount", mock.Anything, int64(3)).Return(biz.NewStatusResponse(biz.StatusDeleted), nil)
		handler := NewSavingsAccountHandler(svc, logger)

		w := httptest.NewRecorder()
		handler.DeleteSavingsAccount(w, withID(httptest.NewRequest(http.MethodDelete, "/savingsbankaccounts/3", nil), "3"))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		svc := new(MockSavingsAccountService)
		svc.On("DeleteSavingsAccount", mock.Anything, int64(8)).
			Return(biz.NewStatusResponse(biz.StatusSpecificItemNotFound), nil)
		handler := NewSavingsAccountHandler(svc, logger)

		w := httptest.NewRecorder()
		handler.DeleteSavingsAccount(w, withID(httptest.NewRequest(http.MethodDelete, "/savingsbankaccounts/8", nil), "8"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Savings bank account with ID '8' could not be found."}`, w.Body.String())
	})
}
