package repos

import (
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/jmoiron/sqlx"

	"vinahous/internal/domain"
	applog "vinahous/internal/log"
)

// CartStore persists one serialized cart per session under a single key,
// the server-side analogue of the original page's localStorage entry.
type CartStore struct{ db *sqlx.DB }

func NewCartStore(db *sqlx.DB) *CartStore { return &CartStore{db: db} }

func cartKey(sid string) string { return "cart:" + sid }

// Load reads a session's cart lines. An absent, corrupt or mis-versioned blob
// yields an empty cart, never an error; only database failures propagate.
func (r *CartStore) Load(sid string) ([]domain.CartLine, error) {
	var value string
	err := r.db.Get(&value, `SELECT value FROM cart_blobs WHERE key = ?`, cartKey(sid))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	lines, ok := decode(value)
	if !ok {
		applog.Warn(nil, "cart.blob.corrupt", map[string]any{"key": cartKey(sid)})
		return nil, nil
	}
	return lines, nil
}

// decode accepts the current versioned blob and, for continuity with carts
// saved by the old page, a legacy bare line array.
func decode(value string) ([]domain.CartLine, bool) {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "[") {
		var lines []domain.CartLine
		if err := json.Unmarshal([]byte(trimmed), &lines); err != nil {
			return nil, false
		}
		return sane(lines)
	}
	var blob domain.CartBlob
	if err := json.Unmarshal([]byte(trimmed), &blob); err != nil {
		return nil, false
	}
	if blob.Version != domain.CartBlobVersion {
		return nil, false
	}
	return sane(blob.Lines)
}

// sane rejects blobs that parsed but violate cart invariants.
func sane(lines []domain.CartLine) ([]domain.CartLine, bool) {
	for _, l := range lines {
		if l.ID <= 0 || l.Quantity < 1 || l.Price < 0 {
			return nil, false
		}
	}
	return lines, true
}

// Save writes the whole cart atomically under the session key.
func (r *CartStore) Save(sid string, lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	value, err := json.Marshal(domain.CartBlob{Version: domain.CartBlobVersion, Lines: lines})
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`
		INSERT INTO cart_blobs(key,value,updated_at) VALUES(?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, cartKey(sid), string(value))
	return err
}

// Delete removes a session's cart entirely.
func (r *CartStore) Delete(sid string) error {
	_, err := r.db.Exec(`DELETE FROM cart_blobs WHERE key = ?`, cartKey(sid))
	return err
}
