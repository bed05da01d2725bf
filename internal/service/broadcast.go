package service

import (
	"sync"
	"sync/atomic"

	"coursefiles/internal/repository"

	"go.uber.org/zap"
)

// MessageSender delivers a plain text message to a single user.
type MessageSender interface {
	SendText(userID int64, text string) error
}

// maxConcurrentSends bounds the broadcast fan-out. Unbounded goroutines
// would trip Telegram's flood limits; fully sequential lets one slow
// recipient stretch the whole pass.
const maxConcurrentSends = 8

// BroadcastService fans a message out to the full user registry.
type BroadcastService struct {
	userRepo repository.UserRepository
	sender   MessageSender
	logger   *zap.Logger
}

// NewBroadcastService creates a new broadcast service
func NewBroadcastService(userRepo repository.UserRepository, sender MessageSender, logger *zap.Logger) *BroadcastService {
	return &BroadcastService{
		userRepo: userRepo,
		sender:   sender,
		logger:   logger,
	}
}

// SendToAll delivers text to every registered user. Each recipient is
// handled independently: a blocked bot or deleted account is logged and
// counted, never aborts the remaining deliveries. Only failure to read the
// registry itself is returned.
func (s *BroadcastService) SendToAll(text string) error {
	users, err := s.userRepo.All()
	if err != nil {
		s.logger.Error("Failed to load broadcast audience", zap.Error(err))
		return err
	}

	var (
		wg     sync.WaitGroup
		failed atomic.Int64
		sem    = make(chan struct{}, maxConcurrentSends)
	)

	for _, userID := range users {
		wg.Add(1)
		sem <- struct{}{}
		go func(userID int64) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := s.sender.SendText(userID, text); err != nil {
				failed.Add(1)
				s.logger.Warn("Failed to deliver broadcast",
					zap.Int64("user_id", userID),
					zap.Error(err),
				)
			}
		}(userID)
	}

	wg.Wait()

	s.logger.Info("Broadcast completed",
		zap.Int("recipients", len(users)),
		zap.Int64("failed", failed.Load()),
	)
	return nil
}
