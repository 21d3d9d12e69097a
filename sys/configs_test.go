package sys

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadStorage(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Run("defaults", func(t *testing.T) {
		LoadStorage(log)
		require.Equal(t, "blob", Configs.Storage.Driver)
		require.Equal(t, "notes", Configs.Storage.SlotKey)
		require.Equal(t, "sqlite", Configs.Database.Driver)
		require.Equal(t, time.Duration(0), Configs.Cache.SlotTTL)
		require.Equal(t, 5*time.Second, Configs.Blob.OperationTimeout)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "redis")
		t.Setenv("STORAGE_SLOT_KEY", "board")
		t.Setenv("CACHE_SLOT_TTL", "1h")

		LoadStorage(log)
		require.Equal(t, "redis", Configs.Storage.Driver)
		require.Equal(t, "board", Configs.Storage.SlotKey)
		require.Equal(t, time.Hour, Configs.Cache.SlotTTL)
	})
}
