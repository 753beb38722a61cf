package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, time.Hour, cfg.Expiry.SweepInterval)
	assert.Equal(t, "local", cfg.Upload.Backend)
	assert.Empty(t, cfg.AdminPhones)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ADMIN_PHONES", " +911111111111, +922222222222 ,,")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DB_HOST", "mysql")
	t.Setenv("DB_USER", "coupon")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "coupons")
	t.Setenv("DB_MAX_OPEN_CONNS", "5")
	t.Setenv("EXPIRY_SWEEP_INTERVAL", "90s")
	t.Setenv("FIREBASE_PROJECT_ID", "coupon-app")
	t.Setenv("UPLOAD_S3_BUCKET", "staging")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"+911111111111", "+922222222222"}, cfg.AdminPhones)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Database.MaxOpenConns)
	assert.Equal(t, 90*time.Second, cfg.Expiry.SweepInterval)
	assert.Equal(t, "coupon-app", cfg.Firebase.ProjectID)
	assert.Equal(t, "staging", cfg.Upload.S3Bucket)
	assert.Equal(t, "coupon:secret@tcp(mysql:3306)/coupons?parseTime=true&loc=UTC&charset=utf8mb4", cfg.GetDSN())
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("EXPIRY_SWEEP_INTERVAL", "soon")

	_, err := Load()
	assert.Error(t, err)
}
