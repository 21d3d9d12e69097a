package schema

// slot tables per database/sql driver name
var schemas = map[string]string{
	"mysql": `CREATE TABLE IF NOT EXISTS slots (
	slot_key   VARCHAR(255) NOT NULL PRIMARY KEY,
	payload    MEDIUMTEXT   NOT NULL,
	updated_at TIMESTAMP    NOT NULL
)`,
	"pgx": `CREATE TABLE IF NOT EXISTS slots (
	slot_key   TEXT        NOT NULL PRIMARY KEY,
	payload    TEXT        NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`,
	"sqlite": `CREATE TABLE IF NOT EXISTS slots (
	slot_key   TEXT      NOT NULL PRIMARY KEY,
	payload    TEXT      NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`,
	"ramsql": `CREATE TABLE slots (slot_key TEXT, payload TEXT, updated_at TIMESTAMP)`,
}

const dropSchema = `DROP TABLE slots`
