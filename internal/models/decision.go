package models

// CheckResult is the loss detector's verdict for one application load.
type CheckResult struct {
	HasDataLoss bool `json:"hasDataLoss"`
	HadData     bool `json:"hadData"`
}

// Decision is the outcome of the ordered mount sequence. Loss always wins
// over Reminder; the reminder path is not evaluated once loss is detected.
type Decision int

const (
	DecisionNone Decision = iota
	DecisionLoss
	DecisionReminder
)

func (d Decision) String() string {
	switch d {
	case DecisionLoss:
		return "loss"
	case DecisionReminder:
		return "reminder"
	default:
		return "none"
	}
}

// UIState is the surface the host app should currently display.
type UIState int

const (
	StateIdle UIState = iota
	StateLossModal
	StateReminderBanner
)

func (s UIState) String() string {
	switch s {
	case StateLossModal:
		return "lossModalShown"
	case StateReminderBanner:
		return "reminderBannerShown"
	default:
		return "idle"
	}
}

// MountResult is what /check returns to the host after one mount sequence.
type MountResult struct {
	Decision Decision
	Check    CheckResult
}
