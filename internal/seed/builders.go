package seed

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/league/internal/match"
	"github.com/DhavalSuthar-24/league/internal/notification"
	"github.com/DhavalSuthar-24/league/internal/player"
	"github.com/DhavalSuthar-24/league/internal/roster"
	"github.com/DhavalSuthar-24/league/internal/season"
	"github.com/DhavalSuthar-24/league/internal/team"
)

func model(r Record, key string) (gorm.Model, error) {
	id, err := r.asUint(key)
	return gorm.Model{ID: id}, err
}

func buildSeason(r Record) (interface{}, error) {
	m, err := model(r, "season_id")
	if err != nil {
		return nil, err
	}
	return &season.Season{
		Model:     m,
		Title:     r.str("season_title"),
		StartDate: r.str("season_start_date"),
		EndDate:   r.str("season_end_date"),
	}, nil
}

func buildTeam(r Record) (interface{}, error) {
	m, err := model(r, "team_id")
	if err != nil {
		return nil, err
	}
	return &team.Team{Model: m, Name: r.str("team_name")}, nil
}

func buildMatch(r Record) (interface{}, error) {
	m, err := model(r, "match_id")
	if err != nil {
		return nil, err
	}
	out := &match.Match{
		Model:     m,
		Date:      r.str("match_date"),
		StartTime: r.str("match_start_time"),
		EndTime:   r.str("match_end_time"),
	}
	if out.SeasonID, err = r.asUint("match_season"); err != nil {
		return nil, err
	}
	if out.TeamAID, err = r.asUint("team_a_id"); err != nil {
		return nil, err
	}
	if out.TeamBID, err = r.asUint("team_b_id"); err != nil {
		return nil, err
	}
	if out.TeamAPoints, err = r.asInt("team_a_points"); err != nil {
		return nil, err
	}
	if out.TeamBPoints, err = r.asInt("team_b_points"); err != nil {
		return nil, err
	}
	return out, nil
}

func buildNotification(r Record) (interface{}, error) {
	m, err := model(r, "notification_id")
	if err != nil {
		return nil, err
	}
	return &notification.Notification{
		Model:       m,
		Title:       r.str("notification_title"),
		Description: r.str("notification_description"),
	}, nil
}

func buildPlayer(r Record) (interface{}, error) {
	m, err := model(r, "player_id")
	if err != nil {
		return nil, err
	}
	g := player.Gender(r.str("player_gender"))
	if !g.Valid() {
		return nil, fmt.Errorf("column player_gender: unknown gender %q", g)
	}
	teamID, err := r.asUint("player_team")
	if err != nil {
		return nil, err
	}
	return &player.Player{Model: m, Name: r.str("player_name"), Gender: g, TeamID: teamID}, nil
}

func buildEntry(r Record) (interface{}, error) {
	id, err := r.asUint("match_player_id")
	if err != nil {
		return nil, err
	}
	e := &roster.Entry{ID: id}
	if e.PlayerID, err = r.asUint("match_player"); err != nil {
		return nil, err
	}
	if e.MatchID, err = r.asUint("match_id"); err != nil {
		return nil, err
	}
	if e.Active, err = r.asBool("player_active"); err != nil {
		return nil, err
	}
	return e, nil
}
