package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var DB *gorm.DB

type KaskuContext string

const (
	DBContextURL  KaskuContext = "kasku-backend-url"
	ContextUserID KaskuContext = "kasku-user-id"
)

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	// Migration runs with foreign keys disabled since sqlite
	// recreates tables to alter columns
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Reconnect with foreign keys enabled so that cascades work
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "kasku:after_query", queryCallback},
		{db.Callback().Query().After("*"), "kasku:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "kasku:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "kasku:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "kasku:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "kasku:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "kasku:after_delete", deleteCallback},
		{db.Callback().Delete().After("*"), "kasku:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		err = c.processor.Register(c.name, c.fn)
		if err != nil {
			return err
		}
	}

	DB = db
	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// The table name tells which kind of resource is missing
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()

	switch {
	case strings.Contains(msg, "UNIQUE constraint failed: users.email"):
		db.Error = ErrEmailInUse
	case strings.Contains(msg, "UNIQUE constraint failed: users.username"):
		db.Error = ErrUsernameInUse
	case strings.Contains(msg, "UNIQUE constraint failed: categories."):
		db.Error = ErrCategoryNameNotUnique
	case strings.Contains(msg, "UNIQUE constraint failed: allocations.transaction_id"):
		db.Error = ErrTransactionAlreadyAllocated
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		db.Error = ErrReferenceNotFound
	}
}

// deleteCallback maps foreign key violations on delete. The only
// restricting reference is a transaction pointing to its category.
func deleteCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if strings.Contains(db.Error.Error(), "FOREIGN KEY constraint failed") {
		db.Error = ErrCategoryInUse
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in database/sql
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(User{}, Session{}, Category{}, Transaction{}, SavingsTarget{}, Allocation{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
