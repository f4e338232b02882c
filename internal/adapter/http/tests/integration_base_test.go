//go:build integration
// +build integration

package tests

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// IntegrationSuiteBase owns a throwaway MySQL schema named *_test. Each
// test starts from the migrations plus db/seeds/seed.sql.
type IntegrationSuiteBase struct {
	suite.Suite

	adminDB    *sqlx.DB
	DB         *sqlx.DB
	testDBName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	database := envOrDefault("MYSQL_TEST_DATABASE", envOrDefault("MYSQL_DATABASE", "taskboard")+"_test")
	if !strings.HasSuffix(database, "_test") {
		s.T().Fatalf("refusing to run against %q: test database names must end in _test", database)
	}

	adminDB, err := sqlx.Connect("mysql", testDSN(""))
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", database))
	s.Require().NoError(err)

	db, err := sqlx.Connect("mysql", testDSN(database))
	s.Require().NoError(err)
	s.DB = db
	s.testDBName = database
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
	if s.adminDB == nil {
		return
	}
	if s.testDBName != "" {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.testDBName))
		s.Require().NoError(err)
	}
	s.Require().NoError(s.adminDB.Close())
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	resetSchema(s.T(), s.DB)
}

func resetSchema(t *testing.T, db *sqlx.DB) {
	t.Helper()
	root := projectRoot(t)

	// tasks references users, so it goes first.
	_, err := db.Exec("DROP TABLE IF EXISTS tasks; DROP TABLE IF EXISTS users;")
	require.NoError(t, err)

	migrations, err := filepath.Glob(filepath.Join(root, "db", "migrations", "*.up.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	sort.Strings(migrations)

	for _, file := range append(migrations, filepath.Join(root, "db", "seeds", "seed.sql")) {
		content, readErr := os.ReadFile(file)
		require.NoError(t, readErr, file)
		_, execErr := db.Exec(string(content))
		require.NoError(t, execErr, file)
	}
}

func projectRoot(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}

// testDSN connects as the root user; an empty database selects none.
func testDSN(database string) string {
	cfg := mysql.NewConfig()
	cfg.User = envOrDefault("MYSQL_ROOT_USER", "root")
	cfg.Passwd = envOrDefault("MYSQL_ROOT_PASSWORD", "root")
	cfg.Net = "tcp"
	cfg.Addr = envOrDefault("MYSQL_HOST", "127.0.0.1") + ":" + envOrDefault("MYSQL_PORT", "3306")
	cfg.DBName = database
	cfg.ParseTime = true
	cfg.MultiStatements = true
	return cfg.FormatDSN()
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
