package service

import (
	"context"
	"errors"
	"strings"

	"catalog-cms/internal/domain"
	"catalog-cms/internal/repository"
)

const (
	maxTitleLen    = 100
	maxIntroLen    = 250
	maxCategoryLen = 50
)

// ItemInput carries the mutable fields of a catalog item.
type ItemInput struct {
	Title    string
	Intro    string
	Text     string
	Price    int
	Category string
	Status   bool
}

// ItemService describes catalog item lifecycle operations.
type ItemService interface {
	Create(ctx context.Context, in ItemInput) (*domain.Item, error)
	Get(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	ListVisible(ctx context.Context) ([]domain.Item, error)
	Update(ctx context.Context, id int64, in ItemInput) error
	Delete(ctx context.Context, id int64) error
}

type itemService struct {
	items repository.ItemRepository
}

func NewItemService(items repository.ItemRepository) ItemService {
	return &itemService{items: items}
}

func validateItemInput(in ItemInput) error {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Intro) == "" ||
		strings.TrimSpace(in.Text) == "" ||
		strings.TrimSpace(in.Category) == "" {
		return validationError("all fields are required")
	}
	if len(in.Title) > maxTitleLen {
		return validationError("title is too long")
	}
	if len(in.Intro) > maxIntroLen {
		return validationError("intro is too long")
	}
	if len(in.Category) > maxCategoryLen {
		return validationError("category is too long")
	}
	return nil
}

func (s *itemService) Create(ctx context.Context, in ItemInput) (*domain.Item, error) {
	if err := validateItemInput(in); err != nil {
		return nil, err
	}

	item := &domain.Item{
		Title:    in.Title,
		Intro:    in.Intro,
		Text:     in.Text,
		Price:    in.Price,
		Category: in.Category,
		Status:   true, // new items are visible by default
	}
	if _, err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Get(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.items.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.items.List(ctx)
}

func (s *itemService) ListVisible(ctx context.Context) ([]domain.Item, error) {
	return s.items.ListVisible(ctx)
}

// Update replaces all six mutable fields, including the visibility flag.
func (s *itemService) Update(ctx context.Context, id int64, in ItemInput) error {
	if err := validateItemInput(in); err != nil {
		return err
	}

	item := &domain.Item{
		ID:       id,
		Title:    in.Title,
		Intro:    in.Intro,
		Text:     in.Text,
		Price:    in.Price,
		Category: in.Category,
		Status:   in.Status,
	}
	if err := s.items.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *itemService) Delete(ctx context.Context, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
