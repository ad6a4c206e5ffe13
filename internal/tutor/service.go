package tutor

import (
	"context"
	"fmt"
)

type Service interface {
	CreateTutor(ctx context.Context, newTutor NewTutor) (*Tutor, error)
	GetAllTutors(ctx context.Context) ([]Tutor, error)
	GetTutorByID(ctx context.Context, id int) (*Tutor, error)
	UpdateTutor(ctx context.Context, id int, update UpdateTutor) (*Tutor, error)
	DeleteTutor(ctx context.Context, id int) (string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) CreateTutor(ctx context.Context, newTutor NewTutor) (*Tutor, error) {
	return s.repo.Create(ctx, newTutor.ToTutor())
}

func (s *service) GetAllTutors(ctx context.Context) ([]Tutor, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetTutorByID(ctx context.Context, id int) (*Tutor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateTutor(ctx context.Context, id int, update UpdateTutor) (*Tutor, error) {
	return s.repo.Update(ctx, id, update)
}

// DeleteTutor reports how many rows went away; deleting an absent tutor is
// not an error.
func (s *service) DeleteTutor(ctx context.Context, id int) (string, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Deleted %d record", n), nil
}
