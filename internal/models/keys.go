package models

// Store keys. The guard owns the first two; the remaining keys are written
// by the host POS application and only read here.
const (
	KeyFingerprint    = "data_fingerprint"
	KeyLastWarning    = "last_backup_warning"
	KeyAuthUsers      = "auth_users"
	KeySettings       = "snooker_settings"
	KeyTransactions   = "snooker_sales_transactions"
	KeyLastBackupDate = "last_backup_date"
)
