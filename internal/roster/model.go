package roster

import (
	"time"

	"github.com/DhavalSuthar-24/league/internal/match"
	"github.com/DhavalSuthar-24/league/internal/player"
)

// Entry is one player's presence in one match's roster. Entries are never
// deleted; only Active toggles.
type Entry struct {
	ID        uint           `json:"entry_id" gorm:"primaryKey"`
	MatchID   uint           `json:"match_id" gorm:"not null;uniqueIndex:idx_match_player"`
	Match     *match.Match   `json:"-" gorm:"foreignKey:MatchID"`
	PlayerID  uint           `json:"player_id" gorm:"not null;uniqueIndex:idx_match_player"`
	Player    *player.Player `json:"-" gorm:"foreignKey:PlayerID"`
	Active    bool           `json:"active" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Entry) TableName() string { return "match_players" }

// Substitution is a ledger row, written only after the roster change it
// describes succeeded. Time is HHMMSS match clock.
type Substitution struct {
	ID                   uint           `json:"substitution_id" gorm:"primaryKey"`
	MatchID              uint           `json:"substitution_match" gorm:"index;not null"`
	Match                *match.Match   `json:"-" gorm:"foreignKey:MatchID"`
	Time                 string         `json:"substitution_time" gorm:"type:char(6);not null"`
	SubstitutedPlayerID  uint           `json:"substituted_player" gorm:"not null"`
	SubstitutedPlayer    *player.Player `json:"-" gorm:"foreignKey:SubstitutedPlayerID"`
	SubstitutingPlayerID uint           `json:"substituting_player" gorm:"not null"`
	SubstitutingPlayer   *player.Player `json:"-" gorm:"foreignKey:SubstitutingPlayerID"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

// SubstitutionView is a ledger row joined with both player names.
type SubstitutionView struct {
	ID                     uint   `json:"substitution_id"`
	MatchID                uint   `json:"substitution_match"`
	Time                   string `json:"substitution_time"`
	SubstitutedPlayerID    uint   `json:"substituted_player"`
	SubstitutingPlayerID   uint   `json:"substituting_player"`
	SubstitutedPlayerName  string `json:"substituted_player_name"`
	SubstitutingPlayerName string `json:"substituting_player_name"`
}

// PlayerInfo is what the engine needs to know about a player.
type PlayerInfo struct {
	ID     uint
	TeamID uint
	Gender player.Gender
}
