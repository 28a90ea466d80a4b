package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bookworm/internal/shared/logger"
)

func TestNewRenewalScheduler_NormalizesNonPositiveInterval(t *testing.T) {
	s := NewRenewalScheduler(nil, nil, nil, 0, time.Hour, logger.NewNop())
	assert.Equal(t, defaultInterval, s.interval)

	s = NewRenewalScheduler(nil, nil, nil, -time.Minute, time.Hour, logger.NewNop())
	assert.Equal(t, defaultInterval, s.interval)
}

func TestNewRenewalScheduler_KeepsConfiguredInterval(t *testing.T) {
	s := NewRenewalScheduler(nil, nil, nil, 5*time.Minute, time.Hour, logger.NewNop())
	assert.Equal(t, 5*time.Minute, s.interval)
}

func TestRenewalScheduler_StopIsIdempotent(t *testing.T) {
	s := NewRenewalScheduler(nil, nil, nil, time.Minute, time.Hour, logger.NewNop())
	s.Stop()
	s.Stop()
}
