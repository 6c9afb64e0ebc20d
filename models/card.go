package models

import (
	"time"
)

// Card is a player's character sheet: a name plus a table of skill and
// attribute ratings keyed by canonical skill name.
type Card struct {
	ID        string         `db:"id"         json:"id"`
	UserID    string         `db:"user_id"    json:"user_id"`
	Name      string         `db:"name"       json:"name"`
	Skills    map[string]int `db:"-"          json:"skills"`
	LastSkill string         `db:"last_skill" json:"last_skill"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}
