package service

import (
	"context"

	"github.com/mealweek/mealweek/internal/domain"
	"github.com/mealweek/mealweek/internal/repository"
)

type historyService struct {
	history repository.HistoryRepo
}

func NewHistoryService(history repository.HistoryRepo) HistoryService {
	return &historyService{history: history}
}

func (s *historyService) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	return s.history.ListAll(ctx)
}

func (s *historyService) Clear(ctx context.Context) error {
	return s.history.DeleteAll(ctx)
}
