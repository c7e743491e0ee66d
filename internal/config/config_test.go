package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "openai", cfg.Classifier.Provider)
	assert.Equal(t, "gpt-4.1-mini", cfg.Classifier.DefaultModel)
	assert.Equal(t, 120, cfg.Classifier.TimeoutSecs)
	assert.Equal(t, "ap-northeast-2", cfg.Storage.Region)
	assert.Equal(t, "입찰 2025", cfg.Storage.SharedRoot)
	assert.Equal(t, []string{"Dropbox", "드롭박스"}, cfg.Resolver.MirrorNames)
	assert.Empty(t, cfg.Resolver.WellKnownRoots)
	assert.Equal(t, 5, cfg.Resolver.MaxAscend)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SEOSIK_SERVER_PORT", ":9090")
	t.Setenv("SEOSIK_CLASSIFIER_API_KEY", "sk-test")
	t.Setenv("SEOSIK_STORAGE_SHARED_ROOT", "입찰 2026")
	t.Setenv("SEOSIK_RESOLVER_MIRROR_NAMES", "OneDrive, 공유폴더")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "sk-test", cfg.Classifier.APIKey)
	assert.Equal(t, "입찰 2026", cfg.Storage.SharedRoot)
	assert.Equal(t, []string{"OneDrive", "공유폴더"}, cfg.Resolver.MirrorNames)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a"}, splitList("a"))
	assert.Equal(t, []string{"a", "b"}, splitList(" a , b ,"))
}
