package scheduler

import (
	"time"

	"accounthub-backend/internal/auth/repository"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// ResetTokenCleanup periodically nulls expired reset-token pairs. Expired
// tokens are already rejected by the lookup; this keeps stale secrets out of
// the table.
type ResetTokenCleanup struct {
	userRepo repository.UserRepository
	cron     *cron.Cron
}

func NewResetTokenCleanup(userRepo repository.UserRepository) *ResetTokenCleanup {
	return &ResetTokenCleanup{
		userRepo: userRepo,
		cron:     cron.New(),
	}
}

// Start schedules the hourly sweep. The returned error only occurs on an
// invalid schedule expression.
func (s *ResetTokenCleanup) Start() error {
	_, err := s.cron.AddFunc("@hourly", s.run)
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Info().Msg("reset token cleanup scheduled hourly")
	return nil
}

func (s *ResetTokenCleanup) Stop() {
	s.cron.Stop()
}

func (s *ResetTokenCleanup) run() {
	cleared, err := s.userRepo.ClearExpiredResetTokens(time.Now())
	if err != nil {
		log.Error().Err(err).Msg("reset token cleanup failed")
		return
	}
	if cleared > 0 {
		log.Info().Int64("cleared", cleared).Msg("expired reset tokens cleared")
	}
}
