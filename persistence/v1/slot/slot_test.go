package slot

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/note-board/persistence/v1/schema"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"

	_ "github.com/proullon/ramsql/driver"
	_ "modernc.org/sqlite"
)

// exerciseSlot checks the behaviour every slot must share
func exerciseSlot(t *testing.T, s Slot) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Read(ctx, "notes")
	require.ErrorIs(t, err, ErrAbsent)

	require.NoError(t, s.Write(ctx, "notes", "first"))
	got, err := s.Read(ctx, "notes")
	require.NoError(t, err)
	require.Equal(t, "first", got)

	require.NoError(t, s.Write(ctx, "notes", "second"))
	got, err = s.Read(ctx, "notes")
	require.NoError(t, err)
	require.Equal(t, "second", got)

	_, err = s.Read(ctx, "other")
	require.ErrorIs(t, err, ErrAbsent)
}

func TestRedis(t *testing.T) {
	m := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: m.Addr()})

	s := NewRedis(rdb, 0, time.Second)
	defer s.Close()

	exerciseSlot(t, s)
	require.True(t, m.Exists("notes"))
	require.Equal(t, time.Duration(0), m.TTL("notes"))
}

func TestRedis_TTL(t *testing.T) {
	m := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: m.Addr()})

	s := NewRedis(rdb, time.Hour, time.Second)
	defer s.Close()

	require.NoError(t, s.Write(context.Background(), "notes", "[]"))
	require.Equal(t, time.Hour, m.TTL("notes"))
}

func TestRedis_Unavailable(t *testing.T) {
	m, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: m.Addr(), MaxRetries: -1})
	s := NewRedis(rdb, 0, time.Second)
	defer s.Close()

	m.Close()

	_, err = s.Read(context.Background(), "notes")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrAbsent)
	require.Error(t, s.Write(context.Background(), "notes", "[]"))
}

func TestBucket_Mem(t *testing.T) {
	s := NewBucket(memblob.OpenBucket(nil), time.Second)
	defer s.Close()

	exerciseSlot(t, s)
}

func TestBucket_File(t *testing.T) {
	dir := t.TempDir()
	bucket, err := fileblob.OpenBucket(dir, nil)
	require.NoError(t, err)

	s := NewBucket(bucket, time.Second)
	defer s.Close()

	exerciseSlot(t, s)
	require.FileExists(t, filepath.Join(dir, "notes"))
}

func TestSQL_Sqlite(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "slots.db"))
	require.NoError(t, err)
	require.NoError(t, schema.Create(ctx, db, "sqlite"))

	s := NewSQL(db, "sqlite", time.Second)
	defer s.Close()

	exerciseSlot(t, s)
	require.NoError(t, s.Write(ctx, "notes", `[{"id":1,"title":"it's \"quoted\""}]`))
	got, err := s.Read(ctx, "notes")
	require.NoError(t, err)
	require.Equal(t, `[{"id":1,"title":"it's \"quoted\""}]`, got)
}

func TestSQL_Ramsql(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("ramsql", "TestSQLRamsql")
	require.NoError(t, err)
	require.NoError(t, schema.Create(ctx, db, "ramsql"))
	defer schema.Drop(ctx, db)

	s := NewSQL(db, "ramsql", time.Second)
	exerciseSlot(t, s)
}

func TestSQL_Rebind(t *testing.T) {
	pg := NewSQL(nil, "pgx", 0)
	require.Equal(t, "INSERT INTO slots (a, b) VALUES ($1, $2)", pg.rebind("INSERT INTO slots (a, b) VALUES (?, ?)"))

	my := NewSQL(nil, "mysql", 0)
	require.Equal(t, "SELECT a FROM slots WHERE b = ?", my.rebind("SELECT a FROM slots WHERE b = ?"))
}
