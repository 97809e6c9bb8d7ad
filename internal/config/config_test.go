package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Default_matchesSpecConstants(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 32, cfg.MaxIdentifierLength)
	assert.Equal(t, 32767, cfg.MaxIntegerLiteral)
	assert.Equal(t, 64, cfg.MaxStringLiteral)
	assert.True(t, cfg.IsReserved("begin"))
	assert.False(t, cfg.IsReserved("x"))
}

func Test_Load_missingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func Test_Load_emptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func Test_Load_overlaysTOMLOntoDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boreal.toml")
	contents := "max_identifier_length = 16\n"
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 16, cfg.MaxIdentifierLength)
	// fields not present in the file keep their Default() value
	assert.Equal(t, 32767, cfg.MaxIntegerLiteral)
}
