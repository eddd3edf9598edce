// Package store is the persistence adapter for multi-step game sessions.
// Fetches are owner-, type- and status-guarded so a session can never be
// resolved twice or acted on by another user.
package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lolbd307-png/osamendibet25bd/helpers"
	"github.com/lolbd307-png/osamendibet25bd/models"
)

func CreateSession(tx *gorm.DB, profileID uint, gameType string, bet float64, state any) (*models.GameSession, error) {
	session := models.GameSession{
		ProfileID: profileID,
		GameType:  gameType,
		BetAmount: bet,
		Status:    models.SessionActive,
	}
	if err := session.SetState(state); err != nil {
		return nil, err
	}
	if err := tx.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// FetchActive locks the active session owned by the given profile. A
// terminal, foreign or unknown session is indistinguishable to the caller:
// all report session-not-found.
func FetchActive(tx *gorm.DB, sid string, profileID uint, gameType string) (*models.GameSession, error) {
	var session models.GameSession
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("s_id = ? AND profile_id = ? AND game_type = ? AND status = ?",
			sid, profileID, gameType, models.SessionActive).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helpers.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Transition moves an active session to newStatus (which may remain active
// for a mines safe reveal) and stores the new state payload. The update is
// status-guarded; losing the race to another resolution reports
// session-not-found instead of double-processing.
func Transition(tx *gorm.DB, session *models.GameSession, state any, newStatus string) error {
	if err := session.SetState(state); err != nil {
		return err
	}
	res := tx.Model(&models.GameSession{}).
		Where("id = ? AND status = ?", session.ID, models.SessionActive).
		Updates(map[string]interface{}{"state": session.State, "status": newStatus})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helpers.ErrSessionNotFound
	}
	session.Status = newStatus
	return nil
}
