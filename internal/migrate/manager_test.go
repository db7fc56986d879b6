package migrate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMigration(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestUp_AplicaPendientesEnOrden(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "002_tasks.up.sql", "CREATE TABLE tasks (id text);")
	writeMigration(t, dir, "001_users.up.sql", "CREATE TABLE users (id text);")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT name FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	// 001 primero pese al orden de escritura
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("001_users.up.sql", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE tasks").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("002_tasks.up.sql", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mgr := NewManager(db, dir)
	require.NoError(t, mgr.Up(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUp_OmiteYaAplicadas(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "001_users.up.sql", "CREATE TABLE users (id text);")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT name FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("001_users.up.sql"))

	mgr := NewManager(db, dir)
	require.NoError(t, mgr.Up(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatus_DevuelveHistorial(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT name FROM schema_migrations ORDER BY applied_at ASC").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("001_users.up.sql").AddRow("002_tasks.up.sql"))

	mgr := NewManager(db, t.TempDir())
	history, err := mgr.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"001_users.up.sql", "002_tasks.up.sql"}, history)
}

func TestSplitStatements_RespetaStrings(t *testing.T) {
	stmts := splitStatements(`INSERT INTO t VALUES ('a;b'); SELECT 1;`)
	require.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], "'a;b'")
}
