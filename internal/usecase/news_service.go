package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/club-tracker/internal/domain/news"
	"github.com/riskibarqy/club-tracker/internal/domain/session"
	idgen "github.com/riskibarqy/club-tracker/internal/platform/id"
	"github.com/riskibarqy/club-tracker/internal/platform/logging"
)

// NewsInput carries the admin news form. Title is required.
type NewsInput struct {
	Title   string
	Details string
	Rivalry string
	Image   string
}

type NewsService struct {
	newsRepo news.Repository
	writer   *StateWriter
	idgen    idgen.Generator
	logger   *logging.Logger
	now      func() time.Time
}

func NewNewsService(
	newsRepo news.Repository,
	writer *StateWriter,
	generator idgen.Generator,
	logger *logging.Logger,
) *NewsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &NewsService{
		newsRepo: newsRepo,
		writer:   writer,
		idgen:    generator,
		logger:   logger,
		now:      time.Now,
	}
}

// ListNews returns all published items, newest first.
func (s *NewsService) ListNews(ctx context.Context) ([]news.Item, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.ListNews")
	defer span.End()

	items, err := s.newsRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items, nil
}

func (s *NewsService) GetNews(ctx context.Context, itemID string) (news.Item, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.GetNews")
	defer span.End()

	return s.getItem(ctx, itemID)
}

func (s *NewsService) CreateNews(ctx context.Context, principal session.Principal, input NewsInput) (news.Item, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.CreateNews")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return news.Item{}, err
	}

	id, err := s.idgen.NewID()
	if err != nil {
		return news.Item{}, fmt.Errorf("generate news id: %w", err)
	}

	item := news.Item{
		ID:        id,
		Title:     strings.TrimSpace(input.Title),
		Details:   strings.TrimSpace(input.Details),
		Rivalry:   strings.TrimSpace(input.Rivalry),
		Image:     strings.TrimSpace(input.Image),
		CreatedAt: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return news.Item{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err = s.writer.Commit(ctx, func(ctx context.Context) error {
		return s.newsRepo.Upsert(ctx, item)
	})
	if err != nil {
		return news.Item{}, err
	}

	s.logger.InfoContext(ctx, "news published", "news_id", item.ID, "title", item.Title)

	return item, nil
}

// UpdateNews overwrites an item's editable fields; the original CreatedAt is
// kept so the feed order does not shuffle on edit.
func (s *NewsService) UpdateNews(ctx context.Context, principal session.Principal, itemID string, input NewsInput) (news.Item, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.UpdateNews")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return news.Item{}, err
	}

	var out news.Item
	err := s.writer.Commit(ctx, func(ctx context.Context) error {
		existing, err := s.getItem(ctx, itemID)
		if err != nil {
			return err
		}

		existing.Title = strings.TrimSpace(input.Title)
		existing.Details = strings.TrimSpace(input.Details)
		existing.Rivalry = strings.TrimSpace(input.Rivalry)
		existing.Image = strings.TrimSpace(input.Image)
		if err := existing.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		if err := s.newsRepo.Upsert(ctx, existing); err != nil {
			return fmt.Errorf("save news: %w", err)
		}
		out = existing

		return nil
	})
	if err != nil {
		return news.Item{}, err
	}

	return out, nil
}

func (s *NewsService) DeleteNews(ctx context.Context, principal session.Principal, itemID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.DeleteNews")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return err
	}

	return s.writer.Commit(ctx, func(ctx context.Context) error {
		if _, err := s.getItem(ctx, itemID); err != nil {
			return err
		}

		return s.newsRepo.Delete(ctx, itemID)
	})
}

func (s *NewsService) getItem(ctx context.Context, itemID string) (news.Item, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return news.Item{}, fmt.Errorf("%w: news id is required", ErrInvalidInput)
	}

	item, ok, err := s.newsRepo.GetByID(ctx, itemID)
	if err != nil {
		return news.Item{}, fmt.Errorf("get news: %w", err)
	}
	if !ok {
		return news.Item{}, fmt.Errorf("%w: news=%s", ErrNotFound, itemID)
	}

	return item, nil
}
