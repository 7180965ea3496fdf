package services

import (
	"time"

	"bguard/internal/models"
	"bguard/internal/providers"
	"bguard/internal/store"
)

type FingerprintServiceInterface interface {
	Signals() (models.Signals, bool)
	Generate() (models.Fingerprint, bool)
	Save() error
}

// FingerprintService derives the compact data signature from the host's
// persisted records. A generated fingerprint means "there is something worth
// protecting"; its absence means a fresh or seed-only install.
type FingerprintService struct {
	store   store.Store
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	now     func() time.Time
}

func NewFingerprintService(st store.Store, logger providers.Logger, metrics providers.MetricsProviderInterface) FingerprintServiceInterface {
	return &FingerprintService{
		store:   st,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
}

// Signals reads the host records and derives the protection signals.
// Returns false when neither accounts nor settings exist, or when a present
// payload is malformed — a broken record must never escalate into an error.
func (s *FingerprintService) Signals() (models.Signals, bool) {
	rawUsers, hasUsers := s.store.Get(models.KeyAuthUsers)
	rawSettings, hasSettings := s.store.Get(models.KeySettings)
	if !hasUsers && !hasSettings {
		return models.Signals{}, false
	}

	var accounts []models.Account
	if hasUsers {
		var err error
		accounts, err = models.ParseAccounts(rawUsers)
		if err != nil {
			s.logger.Debugf(providers.TypeApp, "Unreadable auth_users payload: %s", err)
			return models.Signals{}, false
		}
	}

	customerCount := 0
	if hasSettings {
		settings, err := models.ParseSettings(rawSettings)
		if err != nil {
			s.logger.Debugf(providers.TypeApp, "Unreadable settings payload: %s", err)
			return models.Signals{}, false
		}
		customerCount = len(settings.Customers)
	}

	return models.Signals{
		AccountCount:    len(accounts),
		CustomerCount:   customerCount,
		HasOwner:        models.HasOwner(accounts),
		HasTransactions: s.store.Has(models.KeyTransactions),
	}, true
}

func (s *FingerprintService) Generate() (models.Fingerprint, bool) {
	signals, ok := s.Signals()
	if !ok || !signals.Any() {
		return models.Fingerprint{}, false
	}
	return models.Fingerprint{
		AccountCount:  signals.AccountCount,
		CustomerCount: signals.CustomerCount,
		GeneratedAt:   s.now().UnixMilli(),
	}, true
}

// Save persists the current fingerprint. When no fingerprint can be
// generated the stored one is left untouched.
func (s *FingerprintService) Save() error {
	fp, ok := s.Generate()
	if !ok {
		return nil
	}
	if err := s.store.Set(models.KeyFingerprint, fp.Encode()); err != nil {
		return err
	}
	s.metrics.IncFingerprintSaves()
	return nil
}
