package category

import (
	"log/slog"

	"github.com/frahmantamala/budget-tracker/internal"
)

type RepositoryAPI interface {
	GetAll() ([]*Category, error)
	GetByID(id int64) (*Category, error)
	ExistsByName(name string) (bool, error)
	Create(category *Category) error
	Update(category *Category) error
	Delete(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]*Category, error) {
	categories, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get categories from repository", "error", err)
		return nil, err
	}
	return categories, nil
}

func (s *Service) GetByID(id int64) (*Category, error) {
	cat, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get category", "error", err, "category_id", id)
		return nil, err
	}
	if cat == nil {
		return nil, internal.ErrCategoryNotFound
	}
	return cat, nil
}

// Create stores a new category after verifying name uniqueness. Absent
// fields receive their defaults.
func (s *Service) Create(dto CategoryDTO) (*Category, error) {
	if dto.Name == nil || *dto.Name == "" {
		return nil, internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}

	exists, err := s.repo.ExistsByName(*dto.Name)
	if err != nil {
		s.logger.Error("failed to check category name", "error", err, "name", *dto.Name)
		return nil, err
	}
	if exists {
		s.logger.Warn("duplicate category name rejected", "name", *dto.Name)
		return nil, internal.ErrDuplicateCategoryName
	}

	cat := NewCategory(dto)
	if err := s.repo.Create(cat); err != nil {
		s.logger.Error("failed to create category", "error", err, "name", cat.Name)
		return nil, err
	}

	s.logger.Info("category created", "category_id", cat.ID, "name", cat.Name)
	return cat, nil
}

// Update applies a partial update. Renaming does not re-check uniqueness;
// a collision surfaces as a store error through the unique index.
func (s *Service) Update(id int64, dto CategoryDTO) (*Category, error) {
	cat, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to load category for update", "error", err, "category_id", id)
		return nil, err
	}
	if cat == nil {
		return nil, internal.ErrCategoryNotFound
	}

	cat.ApplyUpdate(dto)
	if err := s.repo.Update(cat); err != nil {
		s.logger.Error("failed to update category", "error", err, "category_id", id)
		return nil, err
	}

	s.logger.Info("category updated", "category_id", cat.ID, "name", cat.Name)
	return cat, nil
}

func (s *Service) Delete(id int64) error {
	cat, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to load category for delete", "error", err, "category_id", id)
		return err
	}
	if cat == nil {
		return internal.ErrCategoryNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete category", "error", err, "category_id", id)
		return err
	}

	s.logger.Info("category deleted", "category_id", id)
	return nil
}
