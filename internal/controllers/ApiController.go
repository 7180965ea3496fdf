package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"bguard/internal/models"
	"bguard/internal/providers"
	"bguard/internal/services"
	"bguard/internal/store"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger      providers.Logger
	guard       services.GuardServiceInterface
	fingerprint services.FingerprintServiceInterface
	store       store.Store
	cache       providers.CacheProviderInterface
}

func NewApiController(
	logger providers.Logger,
	guard services.GuardServiceInterface,
	fingerprint services.FingerprintServiceInterface,
	st store.Store,
	cache providers.CacheProviderInterface,
) *ApiController {
	return &ApiController{
		logger:      logger,
		guard:       guard,
		fingerprint: fingerprint,
		store:       st,
		cache:       cache,
	}
}

type checkResponse struct {
	Decision    string `json:"decision"`
	HasDataLoss bool   `json:"hasDataLoss"`
	HadData     bool   `json:"hadData"`
	State       string `json:"state"`
}

type stateResponse struct {
	State        string `json:"state"`
	LastDecision string `json:"last_decision"`
}

type fingerprintResponse struct {
	Present   bool            `json:"present"`
	Signature string          `json:"signature,omitempty"`
	Signals   *models.Signals `json:"signals,omitempty"`
}

type storeEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (ac *ApiController) writeJSON(w http.ResponseWriter, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// Check runs the mount sequence once, exactly as the host does on each
// application load.
func (ac *ApiController) Check(w http.ResponseWriter, r *http.Request) {
	result := ac.guard.Mount()
	ac.writeJSON(w, checkResponse{
		Decision:    result.Decision.String(),
		HasDataLoss: result.Check.HasDataLoss,
		HadData:     result.Check.HadData,
		State:       ac.guard.State().String(),
	})
}

func (ac *ApiController) GetState(w http.ResponseWriter, r *http.Request) {
	ac.writeJSON(w, stateResponse{
		State:        ac.guard.State().String(),
		LastDecision: ac.guard.LastDecision().String(),
	})
}

func (ac *ApiController) GetFingerprint(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "fingerprint", func() (any, error) {
		fp, ok := ac.fingerprint.Generate()
		if !ok {
			return fingerprintResponse{Present: false}, nil
		}
		signals, _ := ac.fingerprint.Signals()
		return fingerprintResponse{
			Present:   true,
			Signature: fp.Encode(),
			Signals:   &signals,
		}, nil
	})
}

func (ac *ApiController) SaveFingerprint(w http.ResponseWriter, r *http.Request) {
	if err := ac.fingerprint.Save(); err != nil {
		ac.logger.Errorf(providers.TypePost, "Fingerprint save failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) StartFresh(w http.ResponseWriter, r *http.Request) {
	ac.transition(w, ac.guard.StartFresh)
}

func (ac *ApiController) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	ac.transition(w, ac.guard.RestoreBackup)
}

func (ac *ApiController) DismissReminder(w http.ResponseWriter, r *http.Request) {
	ac.transition(w, ac.guard.DismissReminder)
}

func (ac *ApiController) BackupNow(w http.ResponseWriter, r *http.Request) {
	ac.transition(w, ac.guard.BackupNow)
}

func (ac *ApiController) transition(w http.ResponseWriter, action func() error) {
	if err := action(); err != nil {
		ac.logger.Errorf(providers.TypePost, "Transition failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetStoreKey reads a raw store value, addressed by the k query parameter.
func (ac *ApiController) GetStoreKey(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("k")
	if key == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	value, ok := ac.store.Get(key)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	ac.writeJSON(w, storeEntry{Key: key, Value: value})
}

// PutStoreKey writes a host-owned key. Last write wins; the guard applies no
// validation to host payloads beyond requiring a key.
func (ac *ApiController) PutStoreKey(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var entry storeEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil || entry.Key == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := ac.store.Set(entry.Key, entry.Value); err != nil {
		ac.logger.Errorf(providers.TypePost, "Store write failed for %s: %s", entry.Key, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) DeleteStoreKey(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var entry storeEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil || entry.Key == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := ac.store.Delete(entry.Key); err != nil {
		ac.logger.Errorf(providers.TypePost, "Store delete failed for %s: %s", entry.Key, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
