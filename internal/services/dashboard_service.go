package services

import (
	"agroconnect/internal/domain"
	"agroconnect/internal/repos"
)

type DashboardService struct {
	Repo *repos.DashboardRepo
	Auth *AuthService
}

func NewDashboardService(r *repos.DashboardRepo, a *AuthService) *DashboardService {
	return &DashboardService{Repo: r, Auth: a}
}

// For builds the dashboard of a farmer. Farm names are only known for the
// demo accounts.
func (s *DashboardService) For(id *domain.Identity) (domain.Dashboard, error) {
	if id == nil {
		return domain.Dashboard{}, domain.ErrUnauthenticated
	}
	name, farm := id.Name, ""
	if a, ok := s.Auth.Account(id.Email); ok {
		farm = a.FarmName
		if name == "" {
			name = a.Name
		}
	}
	if name == "" {
		name = id.Email
	}
	return s.Repo.For(name, farm), nil
}
