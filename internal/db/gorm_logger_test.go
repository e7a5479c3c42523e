package db

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"vehicle-query-service/internal/logger"
)

func query() (string, int64) {
	return "SELECT * FROM vehicles WHERE plate_number = 'ABC123'", 1
}

func TestGormLoggerReachesProductionLogger(t *testing.T) {
	var buf bytes.Buffer
	gormLog := newGormLogger(logger.NewWithWriter("production", &buf), gormLogLevel("production"), 200*time.Millisecond)

	gormLog.Error(context.Background(), "connection lost: %s", "reset")
	gormLog.Warn(context.Background(), "pool exhausted")

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "connection lost: reset")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "pool exhausted")
	assert.Contains(t, out, `"component":"gorm"`)
}

func TestGormLoggerTrace(t *testing.T) {
	tests := []struct {
		name     string
		level    gormlogger.LogLevel
		begin    time.Time
		err      error
		contains []string
		empty    bool
	}{
		{
			name:     "failed query",
			level:    gormlogger.Warn,
			begin:    time.Now(),
			err:      errors.New("relation does not exist"),
			contains: []string{`"level":"error"`, "query failed", "relation does not exist", "plate_number"},
		},
		{
			name:     "slow query",
			level:    gormlogger.Warn,
			begin:    time.Now().Add(-time.Second),
			contains: []string{`"level":"warn"`, "slow query"},
		},
		{
			name:  "record not found is quiet",
			level: gormlogger.Warn,
			begin: time.Now(),
			err:   gorm.ErrRecordNotFound,
			empty: true,
		},
		{
			name:  "fast query below info",
			level: gormlogger.Warn,
			begin: time.Now(),
			empty: true,
		},
		{
			name:     "fast query at info",
			level:    gormlogger.Info,
			begin:    time.Now(),
			contains: []string{`"level":"debug"`, `"rows":1`},
		},
		{
			name:  "silent",
			level: gormlogger.Silent,
			begin: time.Now(),
			err:   errors.New("boom"),
			empty: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			gormLog := newGormLogger(logger.NewWithWriter("production", &buf).Level(zerolog.DebugLevel), gormlogger.Warn, 200*time.Millisecond).
				LogMode(tc.level)

			gormLog.Trace(context.Background(), tc.begin, query, tc.err)

			if tc.empty {
				assert.Empty(t, buf.String())
				return
			}
			for _, want := range tc.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, gormLogLevel("development"))
	assert.Equal(t, gormlogger.Warn, gormLogLevel("production"))
}
