package game

import (
	"context"

	"rtp_casino/internal/apperr"
	"rtp_casino/internal/model"
)

// History - последние раунды пользователя, новые первыми
func (s *serv) History(ctx context.Context, userID int, limit int) ([]model.HistoryRecord, error) {
	if userID <= 0 {
		return nil, apperr.Validation("user_id required")
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if maxLimit := s.cfg.HistoryMaxLimit(); limit > maxLimit {
		limit = maxLimit
	}

	records, err := s.historyRepo.ListByUser(ctx, userID, uint64(limit))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return records, nil
}
