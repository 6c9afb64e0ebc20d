package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/samber/mo"

	"dicebot/models"
)

type PostgresCardsRepository struct {
	db     *sqlx.DB
	schema string
}

func NewPostgresCardsRepository(db *sqlx.DB, schema string) *PostgresCardsRepository {
	return &PostgresCardsRepository{db: db, schema: schema}
}

// cardRow carries the JSONB skills column before decoding.
type cardRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Skills    []byte    `db:"skills"`
	LastSkill string    `db:"last_skill"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *cardRow) toModel() (*models.Card, error) {
	card := &models.Card{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		LastSkill: r.LastSkill,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Skills:    map[string]int{},
	}
	if len(r.Skills) > 0 {
		if err := json.Unmarshal(r.Skills, &card.Skills); err != nil {
			return nil, fmt.Errorf("failed to decode card skills: %w", err)
		}
	}
	return card, nil
}

func (r *PostgresCardsRepository) CreateCard(ctx context.Context, card *models.Card) error {
	skills, err := json.Marshal(card.Skills)
	if err != nil {
		return fmt.Errorf("failed to encode card skills: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s.cards (id, user_id, name, skills, last_skill, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`,
		r.schema)

	_, err = r.db.ExecContext(ctx, query, card.ID, card.UserID, card.Name, skills, card.LastSkill)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique violation
				return fmt.Errorf("card already exists for user %s", card.UserID)
			}
		}
		return fmt.Errorf("failed to create card: %w", err)
	}

	return nil
}

func (r *PostgresCardsRepository) GetCardByUserID(
	ctx context.Context,
	userID string,
) (mo.Option[*models.Card], error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, skills, last_skill, created_at, updated_at
		FROM %s.cards
		WHERE user_id = $1`,
		r.schema)

	var row cardRow
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.Card](), nil
		}
		return mo.None[*models.Card](), fmt.Errorf("failed to get card by user ID: %w", err)
	}

	card, err := row.toModel()
	if err != nil {
		return mo.None[*models.Card](), err
	}
	return mo.Some(card), nil
}

func (r *PostgresCardsRepository) GetCardByID(
	ctx context.Context,
	id string,
) (mo.Option[*models.Card], error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, skills, last_skill, created_at, updated_at
		FROM %s.cards
		WHERE id = $1`,
		r.schema)

	var row cardRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.Card](), nil
		}
		return mo.None[*models.Card](), fmt.Errorf("failed to get card by ID: %w", err)
	}

	card, err := row.toModel()
	if err != nil {
		return mo.None[*models.Card](), err
	}
	return mo.Some(card), nil
}

func (r *PostgresCardsRepository) UpdateCard(ctx context.Context, card *models.Card) error {
	skills, err := json.Marshal(card.Skills)
	if err != nil {
		return fmt.Errorf("failed to encode card skills: %w", err)
	}

	query := fmt.Sprintf(`
		UPDATE %s.cards
		SET name = $2, skills = $3, last_skill = $4, updated_at = NOW()
		WHERE id = $1`,
		r.schema)

	result, err := r.db.ExecContext(ctx, query, card.ID, card.Name, skills, card.LastSkill)
	if err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("card %s not found", card.ID)
	}

	return nil
}
