package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bguard/internal/models"
	"bguard/internal/store"
	"bguard/internal/testutil"
)

func newTestFingerprintService(st store.Store) *FingerprintService {
	return &FingerprintService{
		store:   st,
		logger:  &testutil.MockLogger{},
		metrics: testutil.NewMockMetrics(),
		now:     func() time.Time { return time.UnixMilli(1700000000000) },
	}
}

const ownerUsers = `[{"id":"1","role":"owner","name":"Boss","username":"boss","pin":"x","active":true}]`

func TestGenerate_AbsentOnFreshInstall(t *testing.T) {
	svc := newTestFingerprintService(store.NewMemoryStore())
	_, ok := svc.Generate()
	assert.False(t, ok)
}

func TestGenerate_AbsentWithoutSignals(t *testing.T) {
	st := store.NewMemoryStore()
	// One non-owner account and the seed customer list: nothing to protect.
	_ = st.Set(models.KeyAuthUsers, `[{"id":"1","role":"superadmin"}]`)
	_ = st.Set(models.KeySettings, `{"customers":[{},{},{},{},{},{}]}`)

	svc := newTestFingerprintService(st)
	_, ok := svc.Generate()
	assert.False(t, ok)
}

func TestGenerate_OwnerAccountIsASignal(t *testing.T) {
	st := store.NewMemoryStore()
	_ = st.Set(models.KeyAuthUsers, ownerUsers)

	svc := newTestFingerprintService(st)
	fp, ok := svc.Generate()
	require.True(t, ok)
	assert.Equal(t, 1, fp.AccountCount)
	assert.Equal(t, "1:0:1700000000000", fp.Encode())
}

func TestGenerate_MultipleAccountsIsASignal(t *testing.T) {
	st := store.NewMemoryStore()
	_ = st.Set(models.KeyAuthUsers, `[{"role":"superadmin"},{"role":"employee"}]`)

	svc := newTestFingerprintService(st)
	_, ok := svc.Generate()
	assert.True(t, ok)
}

func TestGenerate_SevenCustomersNoAccounts(t *testing.T) {
	st := store.NewMemoryStore()
	_ = st.Set(models.KeySettings, `{"customers":[{},{},{},{},{},{},{}]}`)

	svc := newTestFingerprintService(st)
	fp, ok := svc.Generate()
	require.True(t, ok)
	assert.Equal(t, 0, fp.AccountCount)
	assert.Equal(t, 7, fp.CustomerCount)
}

func TestGenerate_TransactionsExistenceIsASignal(t *testing.T) {
	st := store.NewMemoryStore()
	_ = st.Set(models.KeyAuthUsers, `[{"role":"employee"}]`)
	_ = st.Set(models.KeyTransactions, "whatever, content is ignored")

	svc := newTestFingerprintService(st)
	_, ok := svc.Generate()
	assert.True(t, ok)
}

func TestGenerate_MalformedUsersPayload(t *testing.T) {
	st := store.NewMemoryStore()
	_ = st.Set(models.KeyAuthUsers, "corrupted{{")

	svc := newTestFingerprintService(st)
	_, ok := svc.Generate()
	assert.False(t, ok)
}

func TestGenerate_MalformedSettingsPayload(t *testing.T) {
	st := store.NewMemoryStore()
	_ = st.Set(models.KeySettings, "corrupted{{")

	svc := newTestFingerprintService(st)
	_, ok := svc.Generate()
	assert.False(t, ok)
}

func TestSave_SkipsWriteWhenAbsent(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestFingerprintService(st)

	require.NoError(t, svc.Save())
	assert.False(t, st.Has(models.KeyFingerprint))
}

func TestSave_LeavesStaleFingerprintWhenAbsent(t *testing.T) {
	st := store.NewMemoryStore()
	_ = st.Set(models.KeyFingerprint, "2:7:123")

	svc := newTestFingerprintService(st)
	require.NoError(t, svc.Save())

	val, _ := st.Get(models.KeyFingerprint)
	assert.Equal(t, "2:7:123", val)
}

func TestSave_WritesEncodedFingerprint(t *testing.T) {
	st := store.NewMemoryStore()
	_ = st.Set(models.KeyAuthUsers, ownerUsers)

	metrics := testutil.NewMockMetrics()
	svc := newTestFingerprintService(st)
	svc.metrics = metrics

	require.NoError(t, svc.Save())

	val, ok := st.Get(models.KeyFingerprint)
	require.True(t, ok)
	assert.Equal(t, "1:0:1700000000000", val)
	assert.Equal(t, 1, metrics.FingerprintSaves)
}

func TestSignals_AbsentWhenNeitherRecordExists(t *testing.T) {
	st := store.NewMemoryStore()
	// A transactions record alone does not make signals readable.
	_ = st.Set(models.KeyTransactions, "[]")

	svc := newTestFingerprintService(st)
	_, ok := svc.Signals()
	assert.False(t, ok)
}
