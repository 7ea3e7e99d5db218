package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/runlabel/labeling"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, "area", d.Mode)
	assert.Equal(t, 1, d.Limit)
	assert.Equal(t, 1024, d.EstimatedRuns)
	assert.Equal(t, RenderGray16, d.Render)
	assert.False(t, d.Verify)
	assert.Empty(t, d.Input)
}

func TestLoadJSON_Raw(t *testing.T) {
	cfg, err := LoadJSON("", []byte(`{
		"input": "in.png",
		"mode": "count",
		"limit": 3,
		"render": "color",
		"verify": true,
		"logging": {"level": "debug", "format": "json"}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "in.png", cfg.Input)
	assert.Equal(t, "count", cfg.Mode)
	assert.Equal(t, 3, cfg.Limit)
	assert.Equal(t, RenderColor, cfg.Render)
	assert.True(t, cfg.Verify)
	assert.Equal(t, Logging{Level: "debug", Format: "json"}, cfg.Logging)
}

func TestLoadJSON_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"input":"a.tif","estimated_runs":64}`), 0o600))

	cfg, err := LoadJSON(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "a.tif", cfg.Input)
	assert.Equal(t, 64, cfg.EstimatedRuns)
}

func TestLoadJSON_Errors(t *testing.T) {
	_, err := LoadJSON("", nil)
	assert.ErrorIs(t, err, ErrNoSource)

	_, err = LoadJSON("", []byte(`{"input":"a.png","threshold":4}`))
	assert.ErrorContains(t, err, "unknown field")

	_, err = LoadJSON(filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMerge(t *testing.T) {
	base := Defaults()
	file := Config{Input: "file.png", Mode: "count", Limit: 4, Logging: Logging{Level: "warn"}}
	flags := Config{Input: " flag.png ", Verify: true, Render: "color"}

	got := Merge(Merge(base, file), flags)
	assert.Equal(t, "flag.png", got.Input)
	assert.Equal(t, "count", got.Mode)
	assert.Equal(t, 4, got.Limit)
	assert.Equal(t, 1024, got.EstimatedRuns)
	assert.Equal(t, "color", got.Render)
	assert.True(t, got.Verify)
	assert.Equal(t, "warn", got.Logging.Level)
	assert.Equal(t, "console", got.Logging.Format)

	// zero fields never clear the base
	assert.Equal(t, got, Merge(got, Config{}))
}

func TestValidate(t *testing.T) {
	ok := Defaults()
	ok.Input = "in.png"
	require.NoError(t, ok.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"no input", func(c *Config) { c.Input = "" }, ErrMissingInput},
		{"bad mode", func(c *Config) { c.Mode = "biggest" }, labeling.ErrUnknownLimitMode},
		{"zero limit", func(c *Config) { c.Limit = 0 }, labeling.ErrNonPositiveLimit},
		{"negative limit", func(c *Config) { c.Limit = -2 }, labeling.ErrInvalidConfiguration},
		{"bad render", func(c *Config) { c.Render = "jpeg" }, ErrUnknownRender},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := ok
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), tc.want)
		})
	}
}

func TestLabelingOptions(t *testing.T) {
	c := Defaults()
	c.Mode, c.Limit, c.EstimatedRuns = "region-count", 7, 32

	lb := labeling.New(c.LabelingOptions(zerolog.Nop())...)
	o := lb.Options()
	assert.Equal(t, labeling.RegionCount, o.Mode)
	assert.Equal(t, 7, o.Limit)
	assert.Equal(t, 32, o.EstimatedRuns)

	c.Mode = "nope"
	lb = labeling.New(c.LabelingOptions(zerolog.Nop())...)
	assert.ErrorIs(t, lb.Options().Validate(), labeling.ErrUnknownLimitMode)
}
