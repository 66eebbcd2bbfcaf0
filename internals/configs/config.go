package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const (
	StoreFile     = "file"
	StorePostgres = "postgres"
)

var (
	Port             string
	StoreDriver      string
	DataFile         string
	AMQPURL          string
	AMQPExchange     string
	BackupCron       string
	BackupDir        string
	SeedFile         string
	CorsAllowOrigins string
	RateLimitMax     int
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment")
	} else {
		log.Println("✅ .env file loaded")
	}

	Port = GetEnv("PORT", "3000")
	StoreDriver = GetEnv("LIBRARY_STORE", StoreFile)
	DataFile = GetEnv("LIBRARY_DATA_FILE", "library.txt")
	AMQPURL = GetEnv("AMQP_URL")
	AMQPExchange = GetEnv("AMQP_EXCHANGE", "books")
	BackupCron = GetEnv("LIBRARY_BACKUP_CRON")
	BackupDir = GetEnv("LIBRARY_BACKUP_DIR", "backups")
	SeedFile = GetEnv("LIBRARY_SEED_FILE")
	CorsAllowOrigins = GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")
	RateLimitMax = GetEnvInt("RATE_LIMIT_MAX", 100)

	switch StoreDriver {
	case StoreFile:
		log.Printf("✅ Store: file (%s)", DataFile)
	case StorePostgres:
		log.Println("✅ Store: postgres")
	default:
		log.Printf("❌ Unknown LIBRARY_STORE %q, falling back to file", StoreDriver)
		StoreDriver = StoreFile
	}

	if AMQPURL == "" {
		log.Println("⚠️ AMQP_URL not set, book events disabled")
	}
}

// GetEnv returns the value of key, or the first default when key is unset or empty.
func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return i
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
