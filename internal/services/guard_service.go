package services

import (
	"sync"

	"bguard/internal/models"
	"bguard/internal/providers"
	"bguard/internal/store"
)

type GuardServiceInterface interface {
	Mount() models.MountResult
	State() models.UIState
	LastDecision() models.Decision
	StartFresh() error
	RestoreBackup() error
	DismissReminder() error
	BackupNow() error
}

// GuardService runs the ordered mount decision and tracks which surface the
// host should show. Loss detection runs first; the reminder path is only
// reachable when no loss was found.
type GuardService struct {
	mu           sync.Mutex
	state        models.UIState
	lastDecision models.Decision

	store       store.Store
	detector    LossDetectorInterface
	reminder    ReminderServiceInterface
	fingerprint FingerprintServiceInterface
	notifier    providers.NotifierProviderInterface
	logger      providers.Logger
	metrics     providers.MetricsProviderInterface
}

func NewGuardService(
	st store.Store,
	detector LossDetectorInterface,
	reminder ReminderServiceInterface,
	fingerprint FingerprintServiceInterface,
	notifier providers.NotifierProviderInterface,
	logger providers.Logger,
	metrics providers.MetricsProviderInterface,
) GuardServiceInterface {
	return &GuardService{
		store:       st,
		detector:    detector,
		reminder:    reminder,
		fingerprint: fingerprint,
		notifier:    notifier,
		logger:      logger,
		metrics:     metrics,
	}
}

// Mount executes one check sequence, as the host does on every application
// load. The stored fingerprint is refreshed best-effort regardless of the
// branch taken; a failed refresh never changes the decision.
func (g *GuardService) Mount() models.MountResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	check := g.detector.Check()
	result := models.MountResult{Check: check}

	switch {
	case check.HasDataLoss:
		g.state = models.StateLossModal
		result.Decision = models.DecisionLoss
		g.logger.Warnf(providers.TypeApp, "Data loss suspected: fingerprint present but no owner account")
	case g.reminder.ShouldRemind():
		g.state = models.StateReminderBanner
		result.Decision = models.DecisionReminder
	default:
		g.state = models.StateIdle
		result.Decision = models.DecisionNone
	}

	g.lastDecision = result.Decision
	g.metrics.IncChecks(result.Decision.String())

	if err := g.fingerprint.Save(); err != nil {
		g.logger.Warnf(providers.TypeApp, "Fingerprint refresh failed: %s", err)
	}

	return result
}

func (g *GuardService) State() models.UIState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *GuardService) LastDecision() models.Decision {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastDecision
}

// StartFresh acknowledges a loss and drops the stale fingerprint so the next
// load starts from a clean baseline.
func (g *GuardService) StartFresh() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.store.Delete(models.KeyFingerprint); err != nil {
		return err
	}
	g.state = models.StateIdle
	g.logger.Infof(providers.TypeApp, "Loss acknowledged, fingerprint cleared")
	return nil
}

func (g *GuardService) RestoreBackup() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	err := g.notifier.Notify(providers.ActionRestore)
	g.state = models.StateIdle
	return err
}

func (g *GuardService) DismissReminder() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.reminder.Dismiss(); err != nil {
		return err
	}
	g.state = models.StateIdle
	return nil
}

func (g *GuardService) BackupNow() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	err := g.notifier.Notify(providers.ActionBackup)
	g.state = models.StateIdle
	return err
}
