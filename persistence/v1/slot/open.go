package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/note-board/persistence/v1/schema"
	"github.com/ribgsilva/note-board/sys"
	"go.uber.org/zap"
	"gocloud.dev/blob"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	_ "modernc.org/sqlite"
)

// Open connects the slot selected by sys.Configs.Storage.Driver and
// registers the underlying client in sys.R.
func Open(ctx context.Context, log *zap.SugaredLogger) (Slot, error) {
	switch sys.Configs.Storage.Driver {
	case "redis":
		return openRedis(ctx, log)
	case "blob":
		return openBucket(ctx, log)
	case "sql":
		return openSQL(ctx, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", sys.Configs.Storage.Driver)
	}
}

func openRedis(ctx context.Context, log *zap.SugaredLogger) (Slot, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     sys.Configs.Cache.ConnectionURL,
		Username: sys.Configs.Cache.User,
		Password: sys.Configs.Cache.Pass,
	})
	rdsCtx, rdsCancel := context.WithTimeout(ctx, sys.Configs.Cache.PingTimeout)
	defer rdsCancel()
	if err := rdb.Ping(rdsCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	sys.R.Cache = rdb
	log.Infow("startup", "slot", "redis", "addr", sys.Configs.Cache.ConnectionURL)
	return NewRedis(rdb, sys.Configs.Cache.SlotTTL, sys.Configs.Cache.OperationTimeout), nil
}

func openBucket(ctx context.Context, log *zap.SugaredLogger) (Slot, error) {
	bucket, err := blob.OpenBucket(ctx, sys.Configs.Blob.BucketURL)
	if err != nil {
		return nil, fmt.Errorf("could not open bucket: %w", err)
	}

	sys.R.Bucket = bucket
	log.Infow("startup", "slot", "blob", "url", sys.Configs.Blob.BucketURL)
	return NewBucket(bucket, sys.Configs.Blob.OperationTimeout), nil
}

func openSQL(ctx context.Context, log *zap.SugaredLogger) (Slot, error) {
	driver := sys.Configs.Database.Driver

	db, err := sql.Open(driver, sys.Configs.Database.ConnectionURL)
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}
	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.PingTimeout)
	defer dbCancel()
	if err := db.PingContext(dbCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	if err := schema.Create(dbCtx, db, driver); err != nil {
		_ = db.Close()
		return nil, err
	}

	sys.R.Database = db
	log.Infow("startup", "slot", "sql", "driver", driver)
	return NewSQL(db, driver, sys.Configs.Database.OperationTimeout), nil
}
