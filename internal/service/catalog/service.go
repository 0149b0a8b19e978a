package catalog

import (
	"context"

	"aurora-store/internal/domain"
	productrepo "aurora-store/internal/repository/product"
)

// Service is the read-only catalog surface. Products are written only by
// the seed/import process.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
