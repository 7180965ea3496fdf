package services

import (
	"errors"
	"strconv"
	"time"

	"bguard/internal/models"
	"bguard/internal/providers"
	"bguard/internal/store"
)

// Two independent 3-day windows: one keyed on the last completed backup,
// one on the last shown reminder. Both must have lapsed for a nag to show.
const (
	backupFreshnessWindow = 3 * 24 * time.Hour
	reminderCooldown      = 3 * 24 * time.Hour
)

type ReminderServiceInterface interface {
	ShouldRemind() bool
	Dismiss() error
}

type ReminderService struct {
	store       store.Store
	fingerprint FingerprintServiceInterface
	logger      providers.Logger
	now         func() time.Time
}

func NewReminderService(st store.Store, fingerprint FingerprintServiceInterface, logger providers.Logger) ReminderServiceInterface {
	return &ReminderService{
		store:       st,
		fingerprint: fingerprint,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *ReminderService) ShouldRemind() bool {
	now := s.now()

	if raw, ok := s.store.Get(models.KeyLastBackupDate); ok {
		if backupAt, err := parseBackupDate(raw); err == nil && now.Sub(backupAt) < backupFreshnessWindow {
			return false
		}
	}

	if raw, ok := s.store.Get(models.KeyLastWarning); ok {
		if ms, err := strconv.ParseInt(raw, 10, 64); err == nil && now.Sub(time.UnixMilli(ms)) < reminderCooldown {
			return false
		}
	}

	// Only nag when there is something worth protecting.
	_, ok := s.fingerprint.Generate()
	return ok
}

// Dismiss records the reminder timestamp. The timestamp only ever moves
// forward; a stored value ahead of the clock is kept.
func (s *ReminderService) Dismiss() error {
	nowMs := s.now().UnixMilli()

	if raw, ok := s.store.Get(models.KeyLastWarning); ok {
		if prev, err := strconv.ParseInt(raw, 10, 64); err == nil && prev >= nowMs {
			return nil
		}
	}

	return s.store.Set(models.KeyLastWarning, strconv.FormatInt(nowMs, 10))
}

// parseBackupDate accepts the host's last_backup_date formats: a full
// RFC3339 timestamp or a bare ISO date.
func parseBackupDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("unrecognized backup date format")
}
