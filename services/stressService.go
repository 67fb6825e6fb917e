// Package services orchestrates the stress detection pipeline on top of the
// log store and the frame detector.
package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/maheshathikala/stress-detect/apperror"
	"github.com/maheshathikala/stress-detect/detector"
	"github.com/maheshathikala/stress-detect/models"
)

// History limits taken over from the original backend.
const (
	userHistoryLimit  = 20
	adminHistoryLimit = 50
)

// RoleAdmin sees every user's logs in the history view.
const RoleAdmin = "ADMIN"

// StressService is the sole mutating entry point for stress data. It keeps
// no state across requests; the log store is the only shared resource.
type StressService struct {
	store LogStore
	det   detector.Detector
	log   *zap.Logger
	// Classification is CPU-bound; the semaphore caps how many frames are
	// analyzed at once so request handlers are not starved.
	workers *semaphore.Weighted
}

// NewStressService wires the pipeline together.
func NewStressService(store LogStore, det detector.Detector, log *zap.Logger, workers int64) *StressService {
	if workers <= 0 {
		workers = 1
	}
	return &StressService{
		store:   store,
		det:     det,
		log:     log,
		workers: semaphore.NewWeighted(workers),
	}
}

// Classify runs preprocess -> classify -> append. A preprocessing failure
// short-circuits with no write; a storage failure discards the computed
// score and tells the caller nothing was recorded.
func (s *StressService) Classify(ctx context.Context, userID, username, payload string) (*models.StressLog, error) {
	if userID == "" {
		return nil, apperror.ErrInvalidUser
	}

	level, err := s.analyze(ctx, payload)
	if err != nil {
		return nil, err
	}

	log, err := s.store.Append(ctx, userID, username, level)
	if err != nil {
		s.log.Error("failed to append stress log",
			zap.String("user_id", userID), zap.Error(err))
		return nil, apperror.ErrStorageUnavailable
	}
	return log, nil
}

func (s *StressService) analyze(ctx context.Context, payload string) (int, error) {
	if err := s.workers.Acquire(ctx, 1); err != nil {
		return 0, err
	}
	defer s.workers.Release(1)

	frame, err := s.det.Preprocess(payload)
	if err != nil {
		return 0, err
	}
	return s.det.Score(frame), nil
}

// History returns recent logs, newest first. Admins see all users' logs.
func (s *StressService) History(ctx context.Context, userID, role string, limit int64) ([]models.StressLog, error) {
	if userID == "" {
		return nil, apperror.ErrInvalidUser
	}

	var logs []models.StressLog
	var err error
	if role == RoleAdmin {
		if limit <= 0 || limit > adminHistoryLimit {
			limit = adminHistoryLimit
		}
		logs, err = s.store.ListAll(ctx, limit)
	} else {
		if limit <= 0 || limit > userHistoryLimit {
			limit = userHistoryLimit
		}
		logs, err = s.store.ListForUser(ctx, userID, limit)
	}
	if err != nil {
		s.log.Error("failed to list stress logs",
			zap.String("user_id", userID), zap.Error(err))
		return nil, apperror.ErrStorageUnavailable
	}
	return logs, nil
}

// Trend builds the dashboard summary over the user's full log sequence.
func (s *StressService) Trend(ctx context.Context, userID string) (*models.TrendSummary, error) {
	if userID == "" {
		return nil, apperror.ErrInvalidUser
	}

	logs, err := s.store.ListForUser(ctx, userID, 0)
	if err != nil {
		s.log.Error("failed to load logs for trend",
			zap.String("user_id", userID), zap.Error(err))
		return nil, apperror.ErrStorageUnavailable
	}

	summary := BuildTrendSummary(logs)
	return &summary, nil
}
