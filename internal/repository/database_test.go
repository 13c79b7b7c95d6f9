package repository

import (
	"testing"

	"gonotes/internal/config"
	"gonotes/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestInitDB(t *testing.T) {
	t.Run("SQLite Success", func(t *testing.T) {
		cfg := config.Config{
			DatabaseURL: "sqlite://:memory:",
		}
		db, err := InitDB(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		cfg := config.Config{
			DatabaseURL: "mysql://localhost",
		}
		_, err := InitDB(cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
	})
}

func TestAutoMigrate(t *testing.T) {
	cfg := config.Config{DatabaseURL: "sqlite://:memory:"}
	db, err := InitDB(cfg)
	assert.NoError(t, err)

	assert.NoError(t, AutoMigrate(db))
	assert.True(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasTable("notes"))
}

// The unique constraint is the authoritative duplicate signal, so the
// dialector must translate violations into gorm.ErrDuplicatedKey.
func TestInitDB_TranslatesDuplicateKey(t *testing.T) {
	cfg := config.Config{DatabaseURL: "sqlite://:memory:"}
	db, err := InitDB(cfg)
	assert.NoError(t, err)
	assert.NoError(t, AutoMigrate(db))

	user := models.User{Username: "alice", PasswordHash: "x", Email: "a@x.com", FirstName: "A", LastName: "S", APIKey: "k1"}
	assert.NoError(t, db.Create(&user).Error)

	dup := models.User{Username: "alice", PasswordHash: "x", Email: "b@x.com", FirstName: "A", LastName: "S", APIKey: "k2"}
	err = db.Create(&dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestRunMigrations_Fail(t *testing.T) {
	t.Run("Invalid Source Path", func(t *testing.T) {
		err := RunMigrations("postgres://localhost", "file://non-existent")
		assert.Error(t, err)
	})

	t.Run("Empty Database URL", func(t *testing.T) {
		err := RunMigrations("", "")
		assert.Error(t, err)
	})
}
