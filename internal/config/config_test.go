package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"

	"gestionusuarios/userhub/internal/model"
)

func TestLoad_FileAndEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9000
  mode: release
database:
  driver: sqlite
  path: ":memory:"
cache:
  backend: none
  ttl: 30s
log:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:?_pragma=foreign_keys(1)", cfg.Database.DSN())
	assert.Equal(t, "none", cfg.Cache.Backend)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "json", cfg.Log.Format)
	// untouched sections keep their defaults
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "en", cfg.I18n.DefaultLanguage)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "memory", cfg.Cache.Backend)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	pg := DatabaseConfig{Driver: "postgres", Host: "db", Port: 5432, User: "u", Password: "p", DB: "x", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=x sslmode=disable TimeZone=UTC", pg.DSN())

	my := DatabaseConfig{Driver: "mysql", Host: "db", Port: 3306, User: "u", Password: "p", DB: "x"}
	assert.Equal(t, "u:p@tcp(db:3306)/x?charset=utf8mb4&parseTime=True&loc=UTC", my.DSN())

	lite := DatabaseConfig{Driver: "sqlite", Path: "data/app.db?_pragma=busy_timeout(5000)"}
	assert.Equal(t, "data/app.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", lite.DSN())
}

func TestNewDB_SQLiteInMemory(t *testing.T) {
	db, err := NewDB(DatabaseConfig{Driver: "sqlite", Path: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}

func TestNewDB_SQLiteEnforcesForeignKeys(t *testing.T) {
	db, err := NewDB(DatabaseConfig{Driver: "sqlite", Path: ":memory:", LogLevel: "silent", MaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))

	ut := model.UserType{Name: "CLIENTE"}
	require.NoError(t, db.Create(&ut).Error)
	u := model.User{Kind: model.KindClient, Name: "Ana", Email: "a@test.com", Password: "pw", RUT: "1-9", UserTypeID: ut.ID}
	require.NoError(t, db.Omit(clause.Associations).Create(&u).Error)

	assert.Error(t, db.Delete(&model.UserType{}, ut.ID).Error)

	dangling := model.User{Kind: model.KindClient, Name: "Bea", Email: "b@test.com", Password: "pw", RUT: "2-7", UserTypeID: ut.ID + 100}
	assert.Error(t, db.Omit(clause.Associations).Create(&dangling).Error)
}

func TestNewDB_UnknownDriver(t *testing.T) {
	_, err := NewDB(DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
