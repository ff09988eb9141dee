package catalog

import "context"

type Catalog interface {
	ListServices(ctx context.Context) ([]Service, error)
	GetServicesByCodes(ctx context.Context, codes []string) ([]Service, error)
}

type catalogService struct {
	repo Repository
}

func NewCatalog(repo Repository) Catalog {
	return &catalogService{repo: repo}
}

func (s *catalogService) ListServices(ctx context.Context) ([]Service, error) {
	return s.repo.ListServices(ctx)
}

func (s *catalogService) GetServicesByCodes(ctx context.Context, codes []string) ([]Service, error) {
	return s.repo.GetServicesByCodes(ctx, codes)
}
