package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/MohammadaminAlbooyeh/diet-diary/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port      string
	Env       string
	FoodsFile string
	// Daily calorie goal shown against the summary total.
	CalorieGoal float64
	DB          DBConfig
}

type DBConfig struct {
	Driver   string
	Path     string // sqlite file, or "file::memory:" in tests
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := &Config{
		Port:      getEnv("PORT", "8000"),
		Env:       getEnv("ENV", "development"),
		FoodsFile: os.Getenv("FOODS_FILE"),
		DB: DBConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			Path:     getEnv("DB_PATH", "./diet_diary.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "diet_diary"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
	goal, err := strconv.ParseFloat(getEnv("CALORIE_GOAL", "2000"), 64)
	if err != nil || math.IsNaN(goal) || math.IsInf(goal, 0) || goal <= 0 {
		return nil, fmt.Errorf("CALORIE_GOAL must be a positive number, got %q", os.Getenv("CALORIE_GOAL"))
	}
	cfg.CalorieGoal = goal

	if cfg.DB.Driver != DriverSQLite && cfg.DB.Driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
	return cfg, nil
}

func (c DBConfig) dialector() gorm.Dialector {
	if c.Driver == DriverPostgres {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
		return postgres.Open(dsn)
	}
	return sqlite.Open(c.Path)
}

// OpenDB connects with the configured driver and creates the entries table.
func OpenDB(c DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(c.dialector(), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", c.Driver, err)
	}

	if c.Driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite allows one writer; keep a single connection so an
		// in-memory database is shared by every query
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&models.CalorieEntry{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return db, nil
}

func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
