package tests

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/tkaykim/totalmanagement-sub003/internal/adapter/db"
)

func TestTemplateFlowSQLite(t *testing.T) {
	suite.Run(t, &TemplateFlowSuite{
		newDB: func(t *testing.T) *sqlx.DB {
			db, err := dbadapter.ConnectSQLite(":memory:")
			require.NoError(t, err)
			t.Cleanup(func() {
				_ = db.Close()
			})
			return db
		},
	})
}
