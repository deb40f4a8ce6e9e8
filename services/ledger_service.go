package services

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/Satya2834/PubFitnessStudio-web/models"

	"gorm.io/gorm"
)

// SyncState describes the ledger's relationship to the remote record store.
type SyncState string

const (
	SyncUnsynced SyncState = "UNSYNCED"
	SyncSyncing  SyncState = "SYNCING"
	// A full page was fetched last time: older records may remain upstream.
	SyncPartial SyncState = "SYNCED_PARTIAL"
	// A short page was fetched: the earliest available date was reached.
	SyncComplete SyncState = "SYNCED_COMPLETE"
)

// LedgerService owns the local date-keyed collection of day records and its
// reconciliation with the remote record store.
type LedgerService struct {
	db  *gorm.DB
	hub *LedgerHub

	mu    sync.Mutex
	state SyncState
}

func NewLedgerService(db *gorm.DB, hub *LedgerHub) *LedgerService {
	s := &LedgerService{db: db, hub: hub, state: SyncUnsynced}
	// A previous run that already reached the oldest upstream record leaves
	// the ledger complete across restarts.
	if v, ok, _ := GetSetting(db, models.SettingReachedLast); ok {
		if reached, err := strconv.ParseBool(v); err == nil && reached {
			s.state = SyncComplete
		} else {
			s.state = SyncPartial
		}
	}
	return s
}

func (s *LedgerService) State() SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *LedgerService) setState(state SyncState) {
	s.mu.Lock()
	changed := s.state != state
	s.state = state
	s.mu.Unlock()
	if changed && s.hub != nil {
		s.hub.Broadcast("sync.state", map[string]string{"state": string(state)})
	}
}

// Upsert replaces the record for rec.Date, or appends it. Last submission
// wins whole: the prior record's totals are discarded, never merged.
func (s *LedgerService) Upsert(rec *models.DayRecord) error {
	var existing models.DayRecord
	err := s.db.Where("date = ?", rec.Date).First(&existing).Error
	switch {
	case err == nil:
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
		if err := s.db.Save(rec).Error; err != nil {
			return err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(rec).Error; err != nil {
			return err
		}
	default:
		return err
	}

	if s.hub != nil {
		s.hub.Broadcast("day.updated", rec)
	}
	return nil
}

// Get returns the record for date, or absent.
func (s *LedgerService) Get(date string) (*models.DayRecord, bool, error) {
	var rec models.DayRecord
	if err := s.db.Where("date = ?", date).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &rec, true, nil
}

// MergeRemote folds a fetched page into the local collection. The remote is
// authoritative only for dates with no local record: a locally overwritten
// day is never clobbered by a stale remote copy. Tracks the earliest date
// seen and whether a full page implies more data upstream.
func (s *LedgerService) MergeRemote(records []models.DayRecord, pageSize int) (morePages bool, err error) {
	earliest := ""
	for i := range records {
		rec := records[i]
		if earliest == "" || rec.Date < earliest {
			earliest = rec.Date
		}

		var existing models.DayRecord
		err := s.db.Where("date = ?", rec.Date).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, err
		}
		if err := s.db.Create(&rec).Error; err != nil {
			return false, err
		}
	}

	// ISO dates compare lexicographically.
	if earliest != "" {
		if known, ok, _ := GetSetting(s.db, models.SettingOldestDate); !ok || earliest < known {
			if err := PutSetting(s.db, models.SettingOldestDate, earliest); err != nil {
				return false, err
			}
		}
	}

	morePages = len(records) == pageSize
	if err := PutSetting(s.db, models.SettingReachedLast, strconv.FormatBool(!morePages)); err != nil {
		return morePages, err
	}
	if s.hub != nil && len(records) > 0 {
		s.hub.Broadcast("day.updated", map[string]any{"merged": len(records)})
	}
	return morePages, nil
}

// OldestKnownDate returns the earliest ledger date fetched so far, if any.
func (s *LedgerService) OldestKnownDate() (string, bool) {
	v, ok, _ := GetSetting(s.db, models.SettingOldestDate)
	return v, ok
}

// Sync fetches one page ending at date from the remote store and merges it.
// Drives both the eager pull after login and backward paging.
func (s *LedgerService) Sync(remote *RemoteClient, username, date string) error {
	s.setState(SyncSyncing)

	records, err := remote.FetchNutritions(username, date)
	if err != nil {
		// Fetch failure leaves local state unmodified; state reflects that
		// older pages are still outstanding.
		s.setState(SyncPartial)
		return fmt.Errorf("ledger sync failed: %w", err)
	}

	morePages, err := s.MergeRemote(records, RemotePageSize)
	if err != nil {
		s.setState(SyncPartial)
		return err
	}
	if morePages {
		s.setState(SyncPartial)
	} else {
		s.setState(SyncComplete)
	}
	return nil
}

// EnsureCoverage re-enters SYNCING when a partially synced ledger is asked to
// display a date older than its known oldest date. No-op once the earliest
// upstream record was reached or the date is already covered.
func (s *LedgerService) EnsureCoverage(remote *RemoteClient, username, date string) error {
	if s.State() == SyncComplete {
		return nil
	}
	if oldest, ok := s.OldestKnownDate(); ok && date >= oldest {
		return nil
	}
	return s.Sync(remote, username, date)
}
