package homeloan

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

type HomeLoanService interface {
	AddHomeLoan(ctx context.Context, loan *HomeLoan) (biz.Response[*HomeLoan], error)
	ModifyHomeLoan(ctx context.Context, loan *HomeLoan) (biz.StatusResponse, error)
	GetHomeLoanByID(ctx context.Context, id int64) (biz.Response[*HomeLoan], error)
	SearchHomeLoans(ctx context.Context, query map[string]string) (biz.Response[[]*HomeLoan], error)
	DeleteHomeLoan(ctx context.Context, id int64) (biz.StatusResponse, error)
}

var _ HomeLoanService = (*homeLoanService)(nil)

type homeLoanService struct {
	repo      Repository
	validator Validator
	pub       event.Publisher
	logger    *slog.Logger
}

// NewHomeLoanService wires the service. pub may be nil, in which case no
// record events are published.
func NewHomeLoanService(repo Repository, validator Validator, pub event.Publisher, logger *slog.Logger) HomeLoanService {
	if repo == nil {
		panic("home loan repository cannot be nil")
	}
	if validator == nil {
		validator = NewBizValidator()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewHomeLoanService, using default stderr handler")
	}

	return &homeLoanService{
		repo:      repo,
		validator: validator,
		pub:       pub,
		logger:    logger.With(slog.String("component", "homeLoanService")),
	}
}

func (s *homeLoanService) validate(ctx context.Context, loan *HomeLoan, state biz.InstanceState) []biz.ValidationFailure {
	failures := s.validator.Validate(ctx, loan, state)
	for _, f := range failures {
		monitoring.RecordValidationFailure(ResourceName, f.Field)
	}
	if len(failures) > 0 {
		s.logger.WarnContext(ctx, "Business validation failed", slog.String("state", state.String()), slog.Int("failures", len(failures)))
	}
	return failures
}

func (s *homeLoanService) publish(ctx context.Context, action string, loan *HomeLoan, id int64) {
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
	if loan != nil {
		ev.Payload = loan
	}
	if err := s.pub.PublishRecordChanged(ctx, ev); err != nil {
		s.logger.ErrorContext(ctx, "Home loan changed, but FAILED to publish event", slog.String("action", action), slog.Any("error", err))
	}
}

func (s *homeLoanService) AddHomeLoan(ctx context.Context, loan *HomeLoan) (biz.Response[*HomeLoan], error) {
	s.logger.InfoContext(ctx, "Attempting to add new home loan")
	if loan == nil {
		loan = &HomeLoan{}
	}

	if failures := s.validate(ctx, loan, biz.StateNew); len(failures) > 0 {
		return biz.Invalid[*HomeLoan](failures), nil
	}

	stored, err := s.repo.Insert(ctx, loan)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to insert home loan", slog.Any("error", err))
		return biz.Response[*HomeLoan]{}, fmt.Errorf("failed to add home loan: %w", err)
	}

	s.publish(ctx, event.ActionCreated, stored, stored.ID)
	s.logger.InfoContext(ctx, "Successfully added home loan", slog.Int64("homeLoanID", stored.ID))
	return biz.NewResponse(biz.StatusCreated, stored), nil
}

func (s *homeLoanService) ModifyHomeLoan(ctx context.Context, loan *HomeLoan) (biz.StatusResponse, error) {
	s.logger.InfoContext(ctx, "Attempting to modify home loan")
	if loan == nil {
		loan = &HomeLoan{}
	}

	if failures := s.validate(ctx, loan, biz.StateExisting); len(failures) > 0 {
		return biz.Invalid[struct{}](failures), nil
	}

	if err := s.repo.Replace(ctx, loan); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, "Home loan to modify not found", slog.Int64("homeLoanID", loan.ID))
			return biz.NewStatusResponse(biz.StatusSpecificItemNotFound), nil
		}
		s.logger.ErrorContext(ctx, "Repository failed to replace home loan", slog.Any("error", err))
		return biz.StatusResponse{}, fmt.Errorf("failed to modify home loan %d: %w", loan.ID, err)
	}

	s.publish(ctx, event.ActionModified, loan, loan.ID)
	s.logger.InfoContext(ctx, "Successfully modified home loan", slog.Int64("homeLoanID", loan.ID))
	return biz.NewStatusResponse(biz.StatusModified), nil
}

func (s *homeLoanService) GetHomeLoanByID(ctx context.Context, id int64) (biz.Response[*HomeLoan], error) {
	s.logger.DebugContext(ctx, "Getting home loan by ID", slog.Int64("homeLoanID", id))

	loan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return biz.NewResponse[*HomeLoan](biz.StatusSpecificItemNotFound, nil), nil
		}
		s.logger.ErrorContext(ctx, "Repository failed to find home loan", slog.Any("error", err))
		return biz.Response[*HomeLoan]{}, fmt.Errorf("failed to get home loan %d: %w", id, err)
	}

	return biz.NewResponse(biz.StatusSpecificItemFound, loan), nil
}

func (s *homeLoanService) SearchHomeLoans(ctx context.Context, query map[string]string) (biz.Response[[]*HomeLoan], error) {
	s.logger.DebugContext(ctx, "Searching home loans", slog.Any("query", query))

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to list home loans", slog.Any("error", err))
		return biz.Response[[]*HomeLoan]{}, fmt.Errorf("failed to search home loans: %w", err)
	}

	matches := make([]*HomeLoan, 0, len(all))
	for _, loan := range all {
		if biz.MatchesQuery(loan.SearchFields(), query) {
			matches = append(matches, loan)
		}
	}

	if len(matches) == 0 {
		return biz.NewResponse(biz.StatusMatchingItemsNotFound, matches), nil
	}
	return biz.NewResponse(biz.StatusMatchingItemsFound, matches), nil
}

func (s *homeLoanService) DeleteHomeLoan(ctx context.Context, id int64) (biz.StatusResponse, error) {
	s.logger.InfoContext(ctx, "Attempting to delete home loan", slog.Int64("homeLoanID", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, "Home loan to delete not found", slog.Int64("homeLoanID", id))
			return biz.NewStatusResponse(biz.StatusSpecificItemNotFound), nil
		}
		s.logger.ErrorContext(ctx, "Repository failed to delete home loan", slog.Any("error", err))
		return biz.StatusResponse{}, fmt.Errorf("failed to delete home loan %d: %w", id, err)
	}

	s.publish(ctx, event.ActionDeleted, nil, id)
	s.logger.InfoContext(ctx, "Successfully deleted home loan", slog.Int64("homeLoanID", id))
	return biz.NewStatusResponse(biz.StatusDeleted), nil
}
