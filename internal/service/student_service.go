package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hostellink/backend/internal/dto"
	"github.com/hostellink/backend/internal/models"
	"github.com/hostellink/backend/internal/repository"
	"gorm.io/gorm"
)

var ErrStudentNotFound = errors.New("student not found")

type StudentService interface {
	Register(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
}

type studentService struct {
	repo repository.StudentRepository
}

func NewStudentService(repo repository.StudentRepository) StudentService {
	return &studentService{repo: repo}
}

func (s *studentService) Register(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	if len(req.FullName) < 2 {
		return nil, fmt.Errorf("%w: full_name must be at least 2 characters", ErrValidation)
	}

	student := &models.Student{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}
