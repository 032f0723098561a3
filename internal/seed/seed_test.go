package seed

import (
	"strings"
	"testing"

	"github.com/DhavalSuthar-24/league/internal/match"
	"github.com/DhavalSuthar-24/league/internal/player"
	"github.com/DhavalSuthar-24/league/internal/roster"
)

func TestReadRecords(t *testing.T) {
	in := "\ufeffteam_id; team_name\n1;Falcons\n\n2;\"Owls; North\"\n"
	recs, err := ReadRecords(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0]["team_id"] != "1" || recs[0]["team_name"] != "Falcons" {
		t.Errorf("unexpected first record: %v", recs[0])
	}
	if recs[1]["team_name"] != "Owls; North" {
		t.Errorf("quoted delimiter not kept: %q", recs[1]["team_name"])
	}
}

func TestReadRecordsEmpty(t *testing.T) {
	recs, err := ReadRecords(strings.NewReader(""))
	if err != nil || recs != nil {
		t.Errorf("expected no records and no error, got %v, %v", recs, err)
	}
}

func TestBuildMatch(t *testing.T) {
	row, err := buildMatch(Record{
		"match_id": "7", "match_date": "20240301", "match_start_time": "180000",
		"match_end_time": "193000", "match_season": "1", "team_a_id": "2",
		"team_b_id": "3", "team_a_points": "4", "team_b_points": "",
	})
	if err != nil {
		t.Fatalf("buildMatch: %v", err)
	}
	m := row.(*match.Match)
	if m.ID != 7 || m.TeamAID != 2 || m.TeamBID != 3 || m.TeamAPoints != 4 || m.TeamBPoints != 0 {
		t.Errorf("unexpected match: %+v", m)
	}

	if _, err := buildMatch(Record{"match_id": "x"}); err == nil {
		t.Error("expected error for non-numeric id")
	}
}

func TestBuildPlayer(t *testing.T) {
	row, err := buildPlayer(Record{"player_id": "4", "player_name": "Ada", "player_gender": "Female", "player_team": "2"})
	if err != nil {
		t.Fatalf("buildPlayer: %v", err)
	}
	if p := row.(*player.Player); p.Gender != player.Female || p.TeamID != 2 {
		t.Errorf("unexpected player: %+v", p)
	}

	if _, err := buildPlayer(Record{"player_id": "5", "player_gender": "Other", "player_team": "2"}); err == nil {
		t.Error("expected error for unknown gender")
	}
}

func TestBuildEntry(t *testing.T) {
	cases := map[string]bool{"1": true, "0": false, "true": true, "": false}
	for in, want := range cases {
		row, err := buildEntry(Record{"match_player_id": "1", "match_player": "4", "match_id": "7", "player_active": in})
		if err != nil {
			t.Fatalf("buildEntry(%q): %v", in, err)
		}
		if e := row.(*roster.Entry); e.Active != want || e.PlayerID != 4 || e.MatchID != 7 {
			t.Errorf("buildEntry(%q) = %+v", in, e)
		}
	}
	if _, err := buildEntry(Record{"match_player_id": "1", "match_player": "4", "match_id": "7", "player_active": "maybe"}); err == nil {
		t.Error("expected error for bad boolean")
	}
}
