package savingsaccount

import (
	"bank-services/internal/domain/biz"
	"bank-services/internal/event"
	"bank-services/internal/infrastructure/monitoring"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
)

type SavingsAccountService interface {
	AddSavingsAccount(ctx context.Context, account *SavingsAccount) (biz.Response[*SavingsAccount], error)
	ModifySavingsAccount(ctx context.Context, account *SavingsAccount) (biz.StatusResponse, error)
	GetSavingsAccountByID(ctx context.Context, id int64) (biz.Response[*SavingsAccount], error)
	SearchSavingsAccounts(ctx context.Context, query map[string]string) (biz.Response[[]*SavingsAccount], error)
	DeleteSavingsAccount(ctx context.Context, id int64) (biz.StatusResponse, error)
}

var _ SavingsAccountService = (*savingsAccountService)(nil)

type savingsAccountService struct {
	repo      Repository
	validator Validator
	pub       event.Publisher
	logger    *slog.Logger
}

// NewSavingsAccountService wires the service. pub may be nil, in which case no
// record events are published.
func NewSavingsAccountService(repo Repository, validator Validator, pub event.Publisher, logger *slog.Logger) SavingsAccountService {
	if repo == nil {
		panic("savings bank account repository cannot be nil")
	}
	if validator == nil {
		validator = NewBizValidator()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewSavingsAccountService, using default stderr handler")
	}

	return &savingsAccountService{
		repo:      repo,
		validator: validator,
		pub:       pub,
		logger:    logger.With(slog.String("component", "savingsAccountService")),
	}
}

func (s *savingsAccountService) validate(ctx context.Context, account *SavingsAccount, state biz.InstanceState) []biz.ValidationFailure {
	failures := s.validator.Validate(ctx, account, state)
	for _, f := range failures {
		monitoring.RecordValidationFailure(ResourceName, f.Field)
	}
	if len(failures) > 0 {
		s.logger.WarnContext(ctx, "Business validation failed", slog.String("state", state.String()), slog.Int("failures", len(failures)))
	}
	return failures
}

func (s *savingsAccountService) publish(ctx context.Context, action string, account *SavingsAccount, id int64) {
	monitoring.RecordMutation(ResourceName, action)
	if s.pub == nil {
		return
	}

	ev := event.RecordChangedEvent{
		Resource:  ResourceName,
		Action:    action,
		RecordID:  id,
		Timestamp: time.Now(),
	}
	if account != nil {
		ev.Payload = account
	}
	if err := s.pub.PublishRecordChanged(ctx, ev); err != nil {
		s.logger.ErrorContext(ctx, "Savings bank account changed, but FAILED to publish event", slog.String("action", action), slog.Any("error", err))
	}
}

func (s *savingsAccountService) AddSavingsAccount(ctx context.Context, account *SavingsAccount) (biz.Response[*SavingsAccount], error) {
	s.logger.InfoContext(ctx, "Attempting to add new savings bank account")
	if account == nil {
		account = &SavingsAccount{}
	}

	if failures := s.validate(ctx, account, biz.StateNew); len(failures) > 0 {
		return biz.Invalid[*SavingsAccount](failures), nil
	}

	stored, err := s.repo.Insert(ctx, account)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to insert savings bank account", slog.Any("error", err))
		return biz.Response[*SavingsAccount]{}, fmt.Errorf("failed to add savings bank account: %w", err)
	}

	s.publish(ctx, event.ActionCreated, stored, stored.ID)
	s.logger.InfoContext(ctx, "Successfully added savings bank account", slog.Int64("savingsAccountID", stored.ID))
	return biz.NewResponse(biz.StatusCreated, stored), nil
}

func (s *savingsAccountService) ModifySavingsAccount(ctx context.Context, account *SavingsAccount) (biz.StatusResponse, error) {
	s.logger.InfoContext(ctx, "Attempting to modify savings bank account")
	if account == nil {
		account = &SavingsAccount{}
	}

	if failures := s.validate(ctx, account, biz.StateExisting); len(failures) > 0 {
		return biz.Invalid[struct{}](failures), nil
	}

	if err := s.repo.Replace(ctx, account); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, "Savings bank account to modify not found", slog.Int64("savingsAccountID", account.ID))
			return biz.NewStatusResponse(biz.StatusSpecificItemNotFound), nil
		}
		s.logger.ErrorContext(ctx, "Repository failed to replace savings bank account", slog.Any("error", err))
		return biz.StatusResponse{}, fmt.Errorf("failed to modify savings bank account %d: %w", account.ID, err)
	}

	s.publish(ctx, event.ActionModified, account, account.ID)
	s.logger.InfoContext(ctx, "Successfully modified savings bank account", slog.Int64("savingsAccountID", account.ID))
	return biz.NewStatusResponse(biz.StatusModified), nil
}

func (s *savingsAccountService) GetSavingsAccountByID(ctx context.Context, id int64) (biz.Response[*SavingsAccount], error) {
	s.logger.DebugContext(ctx, "Getting savings bank account by ID", slog.Int64("savingsAccountID", id))

	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return biz.NewResponse[*SavingsAccount](biz.StatusSpecificItemNotFound, nil), nil
		}
		s.logger.ErrorContext(ctx, "Repository failed to find savings bank account", slog.Any("error", err))
		return biz.Response[*SavingsAccount]{}, fmt.Errorf("failed to get savings bank account %d: %w", id, err)
	}

	return biz.NewResponse(biz.StatusSpecificItemFound, account), nil
}

func (s *savingsAccountService) SearchSavingsAccounts(ctx context.Context, query map[string]string) (biz.Response[[]*SavingsAccount], error) {
	s.logger.DebugContext(ctx, "Searching savings bank accounts", slog.Any("query", query))

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to list savings bank accounts", slog.Any("error", err))
		return biz.Response[[]*SavingsAccount]{}, fmt.Errorf("failed to search savings bank accounts: %w", err)
	}

	matches := make([]*SavingsAccount, 0, len(all))
	for _, account := range all {
		if biz.MatchesQuery(account.SearchFields(), query) {
			matches = append(matches, account)
		}
	}

	if len(matches) == 0 {
		return biz.NewResponse(biz.StatusMatchingItemsNotFound, matches), nil
	}
	return biz.NewResponse(biz.StatusMatchingItemsFound, matches), nil
}

func (s *savingsAccountService) DeleteSavingsAccount(ctx context.Context, id int64) (biz.StatusResponse, error) {
	s.logger.InfoContext(ctx, "Attempting to delete savings bank account", slog.Int64("savingsAccountID", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, "Savings bank account to delete not found", slog.Int64("savingsAccountID", id))
			return biz.NewStatusResponse(biz.StatusSpecificItemNotFound), nil
		}
		s.logger.ErrorContext(ctx, "Repository failed to delete savings bank account", slog.Any("error", err))
		return biz.StatusResponse{}, fmt.Errorf("failed to delete savings bank account %d: %w", id, err)
	}

	s.publish(ctx, event.ActionDeleted, nil, id)
	s.logger.InfoContext(ctx, "Successfully deleted savings bank account", slog.Int64("savingsAccountID", id))
	return biz.NewStatusResponse(biz.StatusDeleted), nil
}
