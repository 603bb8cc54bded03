package cli

import (
	"os"

	"github.com/randalmurphal/inputflow/pkg/inputflow/config"
	"github.com/randalmurphal/inputflow/pkg/inputflow/journal"
)

// openJournal picks the journal store for a command. An explicit --db
// path wins over the settings file; a nil store means journaling is off.
func openJournal(dbPath string, s config.Settings) (journal.Store, error) {
	if dbPath != "" {
		return journal.NewSQLiteStore(dbPath)
	}
	switch s.Journal.Driver {
	case config.DriverSQLite:
		return journal.NewSQLiteStore(s.Journal.Path)
	case config.DriverMemory:
		return journal.NewMemoryStore(), nil
	default:
		return nil, nil
	}
}

// openExistingJournal opens a journal database for reading. A missing
// file is a command error rather than a fresh empty database.
func openExistingJournal(dbPath string) (*journal.SQLiteStore, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	store, err := journal.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return store, nil
}
