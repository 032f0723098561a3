// Package seed loads league fixtures from semicolon-delimited CSV files.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/league/internal/match"
	"github.com/DhavalSuthar-24/league/internal/notification"
	"github.com/DhavalSuthar-24/league/internal/player"
	"github.com/DhavalSuthar-24/league/internal/roster"
	"github.com/DhavalSuthar-24/league/internal/season"
	"github.com/DhavalSuthar-24/league/internal/team"
	"github.com/DhavalSuthar-24/league/pkg/logger"
)

// Delimiter separates fields in every seed file.
const Delimiter = ';'

// Record is one CSV row keyed by header name.
type Record map[string]string

func (r Record) str(key string) string {
	return strings.TrimSpace(r[key])
}

func (r Record) asUint(key string) (uint, error) {
	v, err := strconv.ParseUint(r.str(key), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", key, err)
	}
	return uint(v), nil
}

func (r Record) asInt(key string) (int, error) {
	s := r.str(key)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", key, err)
	}
	return v, nil
}

func (r Record) asBool(key string) (bool, error) {
	switch strings.ToLower(r.str(key)) {
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no", "":
		return false, nil
	}
	return false, fmt.Errorf("column %s: %q is not a boolean", key, r[key])
}

// table maps one seed file onto a model. Files load in dependency order.
type table struct {
	file  string
	model interface{}
	build func(Record) (interface{}, error)
}

var tables = []table{
	{"seasons.csv", &season.Season{}, buildSeason},
	{"teams.csv", &team.Team{}, buildTeam},
	{"matches.csv", &match.Match{}, buildMatch},
	{"notifications.csv", &notification.Notification{}, buildNotification},
	{"players.csv", &player.Player{}, buildPlayer},
	{"match_players.csv", &roster.Entry{}, buildEntry},
}

// Load upserts every known file found in dir inside one transaction. Missing
// files are skipped. Explicit ids are kept and the id sequences advanced past
// them.
func Load(ctx context.Context, db *gorm.DB, dir string) error {
	log := logger.WithFields(ctx, "dir", dir)
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range tables {
			path := filepath.Join(dir, t.file)
			f, err := os.Open(path)
			if errors.Is(err, os.ErrNotExist) {
				log.Debug("seed file absent", "file", t.file)
				continue
			}
			if err != nil {
				return err
			}
			records, err := ReadRecords(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", t.file, err)
			}

			for i, rec := range records {
				row, err := t.build(rec)
				if err != nil {
					return fmt.Errorf("%s line %d: %w", t.file, i+2, err)
				}
				if err := tx.Omit(clause.Associations).
					Clauses(clause.OnConflict{UpdateAll: true}).
					Create(row).Error; err != nil {
					return fmt.Errorf("%s line %d: %w", t.file, i+2, err)
				}
			}
			if err := advanceSequence(tx, t.model); err != nil {
				return fmt.Errorf("%s: %w", t.file, err)
			}
			log.Info("seeded table", "file", t.file, "rows", len(records))
		}
		return nil
	})
}

// ReadRecords parses a delimited file whose first row names the columns.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}

	out := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func advanceSequence(tx *gorm.DB, model interface{}) error {
	stmt := &gorm.Statement{DB: tx}
	if err := stmt.Parse(model); err != nil {
		return err
	}
	var maxID int64
	if err := tx.Model(model).Unscoped().Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
		return err
	}
	if maxID == 0 {
		return nil
	}
	return tx.Exec("SELECT setval(pg_get_serial_sequence(?, 'id'), ?)", stmt.Schema.Table, maxID).Error
}
