package service

import (
	"context"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
)

type GlossaryRepository interface {
	Glossary() entities.Glossary
	GetByID(id string) (*entities.Term, error)
	GetRandom() (*entities.Term, error)
	GetAll() ([]entities.Term, error)
	GetByCategory(category entities.Category) ([]entities.Term, error)
	Search(query string) ([]entities.Term, error)
}

type GlossaryService struct {
	repository GlossaryRepository
}

func NewGlossaryService(repository GlossaryRepository) *GlossaryService {
	return &GlossaryService{repository: repository}
}

func (s *GlossaryService) Glossary(_ context.Context) entities.Glossary {
	return s.repository.Glossary()
}

func (s *GlossaryService) GetByID(_ context.Context, id string) (*entities.Term, error) {
	return s.repository.GetByID(id)
}

func (s *GlossaryService) GetRandom(_ context.Context) (*entities.Term, error) {
	return s.repository.GetRandom()
}

func (s *GlossaryService) GetAll(_ context.Context) ([]entities.Term, error) {
	return s.repository.GetAll()
}

func (s *GlossaryService) GetByCategory(_ context.Context, category entities.Category) ([]entities.Term, error) {
	return s.repository.GetByCategory(category)
}

func (s *GlossaryService) Search(_ context.Context, query string) ([]entities.Term, error) {
	return s.repository.Search(query)
}
