package course

import (
	"context"
	"fmt"
)

type Service interface {
	CreateCourse(ctx context.Context, newCourse NewCourse) (*Course, error)
	GetCoursesForTutor(ctx context.Context, tutorID int) ([]Course, error)
	GetCourse(ctx context.Context, tutorID, courseID int) (*Course, error)
	UpdateCourse(ctx context.Context, tutorID, courseID int, update UpdateCourse) (*Course, error)
	DeleteCourse(ctx context.Context, tutorID, courseID int) (string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) CreateCourse(ctx context.Context, newCourse NewCourse) (*Course, error) {
	return s.repo.Create(ctx, newCourse.ToCourse())
}

func (s *service) GetCoursesForTutor(ctx context.Context, tutorID int) ([]Course, error) {
	return s.repo.GetAllForTutor(ctx, tutorID)
}

func (s *service) GetCourse(ctx context.Context, tutorID, courseID int) (*Course, error) {
	return s.repo.Get(ctx, tutorID, courseID)
}

func (s *service) UpdateCourse(ctx context.Context, tutorID, courseID int, update UpdateCourse) (*Course, error) {
	return s.repo.Update(ctx, tutorID, courseID, update)
}

// DeleteCourse reports how many rows went away; a repeated delete succeeds
// with zero.
func (s *service) DeleteCourse(ctx context.Context, tutorID, courseID int) (string, error) {
	n, err := s.repo.Delete(ctx, tutorID, courseID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Deleted %d record", n), nil
}
