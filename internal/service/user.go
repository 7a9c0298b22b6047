package service

import (
	"github.com/pulsedash/pulse/internal/model"
	"github.com/pulsedash/pulse/internal/repository"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.repo.ByID(id)
}

func (s *UserService) ByUsername(username string) (*model.User, error) {
	return s.repo.ByUsername(username)
}
