package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
)

const sampleConfig = `
[server]
http_port = 8090
health_port = 8091

[database]
host = "localhost"
user = "dogplanner"
password = "${TEST_DB_PASSWORD}"
dbname = "pricing"

[redis]
enabled = true
address = "localhost:6379"

[logs]
level = "debug"

[pricing]
vat_included = false

[pricing.tier_base_rates]
premium = 550

[cancellation]
description = "Egen policy"

[[cancellation.tiers]]
min_days_before = 0
fee_rate = 1.0

[[cancellation.tiers]]
min_days_before = 14
fee_rate = 0.0

[[cancellation.tiers]]
min_days_before = 5
fee_rate = 0.3
`

func TestLoad(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cret")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "host=localhost port=5432 user=dogplanner password=s3cret dbname=pricing sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 300, cfg.Reports.CacheTTLSeconds)

	pricing := cfg.PricingPolicy()
	assert.Equal(t, 550.0, pricing.TierBaseRates[domain.TierPremium])
	assert.Equal(t, 350.0, pricing.TierBaseRates[domain.TierStandard])
	assert.False(t, pricing.VATIncluded)

	cancellation := cfg.CancellationPolicy()
	require.Len(t, cancellation.Tiers, 3)
	assert.Equal(t, 14, cancellation.Tiers[0].MinDaysBefore)
	assert.Equal(t, 5, cancellation.Tiers[1].MinDaysBefore)
	assert.Equal(t, 0.3, cancellation.Tiers[1].FeeRate)
	assert.Equal(t, "Egen policy", cancellation.Description)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, 5, cfg.DogRegistry.Timeout)
	assert.Equal(t, 5, cfg.OrgService.Timeout)
	assert.Equal(t, "0 2 * * *", cfg.Reports.WarmupSchedule)
	assert.Equal(t, domain.DefaultCancellationPolicy().Tiers, cfg.CancellationPolicy().Tiers)
	assert.Equal(t, domain.DefaultPricingPolicy(), cfg.PricingPolicy())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad toml", "[server\nhttp_port = 1"},
		{"port out of range", "[server]\nhttp_port = 70000"},
		{"redis without address", "[redis]\nenabled = true"},
		{"negative multiplier", "[pricing.size_multipliers]\nlarge = -1.0"},
		{"tier without zero", "[[cancellation.tiers]]\nmin_days_before = 3\nfee_rate = 0.5"},
		{"bad warmup schedule", "[reports]\nwarmup_schedule = \"every night\""},
		{"fee rate above one", "[[cancellation.tiers]]\nmin_days_before = 0\nfee_rate = 2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestParse_WarmupDisabled(t *testing.T) {
	cfg, err := Parse("[reports]\nwarmup_schedule = \"\"")
	require.NoError(t, err)
	assert.Empty(t, cfg.Reports.WarmupSchedule)
}

func TestParse_ZeroVATRate(t *testing.T) {
	cfg, err := Parse("[pricing]\nvat_rate_pct = 0\nvat_included = false")
	require.NoError(t, err)

	pricing := cfg.PricingPolicy()
	assert.Equal(t, 0.0, pricing.VATRatePct)
	assert.False(t, pricing.VATIncluded)
	assert.NotEqual(t, domain.DefaultPricingPolicy().VATRatePct, pricing.VATRatePct)
}

func TestParse_VATRateOmittedKeepsDefault(t *testing.T) {
	cfg, err := Parse("[pricing]\nvat_included = true")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPricingPolicy().VATRatePct, cfg.PricingPolicy().VATRatePct)
}
