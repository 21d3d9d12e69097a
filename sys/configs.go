package sys

import (
	"github.com/ribgsilva/note-board/platform/env"
	"go.uber.org/zap"
)

// LoadStorage fills the configs used to open the durable slot
func LoadStorage(log *zap.SugaredLogger) {
	Configs.Storage.Driver = env.OrDefault(log, "STORAGE_DRIVER", "blob")
	Configs.Storage.SlotKey = env.OrDefault(log, "STORAGE_SLOT_KEY", "notes")
	Configs.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", "sqlite")
	Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "noteboard.db")
	Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	Configs.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	Configs.Cache.SlotTTL = env.DurationDefault(log, "CACHE_SLOT_TTL", "0s")
	Configs.Blob.BucketURL = env.OrDefault(log, "BLOB_BUCKET_URL", "file:///var/lib/noteboard")
	Configs.Blob.OperationTimeout = env.DurationDefault(log, "BLOB_OPERATION_TIMEOUT", "5s")
}

// LoadNewRelic fills the configs of the new relic agent
func LoadNewRelic(log *zap.SugaredLogger) {
	Configs.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "note-board")
	Configs.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	Configs.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	Configs.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	Configs.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")
}
