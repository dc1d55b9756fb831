package mysql

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
)

var testDB *sql.DB

// TestMain connects to the test database once for the whole package.
// TEST_DB_DSN points it somewhere else; tests skip when no database is
// reachable so the suite still runs on machines without MySQL.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		dsn = "root:@tcp(localhost:3306)/oppettider_test?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open test db: %v\n", err)
		os.Exit(1)
	}

	if err := db.Ping(); err == nil {
		testDB = db
	}

	code := m.Run()

	db.Close()
	os.Exit(code)
}

func testStorage(t *testing.T) *Storage {
	t.Helper()
	if testDB == nil {
		t.Skip("test database not reachable")
	}
	return &Storage{db: testDB}
}
