package postgres

import (
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

var (
	testTime     = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	matchColumns = []string{
		"id", "user1_id", "user2_id", "compatibility_score", "status",
		"is_primary_for_user1", "is_primary_for_user2", "living_space_id", "match_explanation",
		"created_at", "updated_at",
	}
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return sqlx.NewDb(db, "postgres"), mock
}

// q turns a SQL fragment into a literal pattern.
func q(fragment string) string {
	return regexp.QuoteMeta(fragment)
}

type matchRow struct {
	id, user1, user2 int
	status           string
	primary1         bool
	primary2         bool
	livingSpace      interface{}
}

func (m matchRow) values() []driver.Value {
	return []driver.Value{
		int64(m.id), int64(m.user1), int64(m.user2), 81.0, m.status,
		m.primary1, m.primary2, m.livingSpace, nil, testTime, testTime,
	}
}

func matchRows(rows ...matchRow) *sqlmock.Rows {
	out := sqlmock.NewRows(matchColumns)
	for _, r := range rows {
		out.AddRow(r.values()...)
	}
	return out
}
