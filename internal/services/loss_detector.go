package services

import (
	"bguard/internal/models"
	"bguard/internal/providers"
	"bguard/internal/store"
)

type LossDetectorInterface interface {
	Check() models.CheckResult
}

// LossDetector compares the stored fingerprint against the current account
// records. The owner account is the single authoritative survival signal:
// storage wipes are typically total, so if the owner account (created early
// in onboarding) is gone, the rest is assumed gone too. A fingerprint
// recorded from settings/transactions signals alone can therefore over-
// trigger on installs that never had an owner; that behavior is intentional.
type LossDetector struct {
	store  store.Store
	logger providers.Logger
}

func NewLossDetector(st store.Store, logger providers.Logger) LossDetectorInterface {
	return &LossDetector{store: st, logger: logger}
}

func (d *LossDetector) Check() models.CheckResult {
	if _, ok := d.store.Get(models.KeyFingerprint); !ok {
		// Never had protected data, nothing can be lost.
		return models.CheckResult{}
	}

	result := models.CheckResult{HadData: true}

	raw, ok := d.store.Get(models.KeyAuthUsers)
	if !ok {
		result.HasDataLoss = true
		return result
	}

	accounts, err := models.ParseAccounts(raw)
	if err != nil {
		d.logger.Warnf(providers.TypeApp, "Unreadable auth_users during loss check: %s", err)
		result.HasDataLoss = true
		return result
	}

	result.HasDataLoss = !models.HasOwner(accounts)
	return result
}
