package repository

import (
	"claty/internal/model"
	"database/sql"

	"github.com/lib/pq"
)

type SearchRepository struct {
	db *sql.DB
}

func NewSearchRepository(db *sql.DB) *SearchRepository {
	return &SearchRepository{db: db}
}

func (r *SearchRepository) EnsureSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS search_history (
			id BIGSERIAL PRIMARY KEY,
			query TEXT NOT NULL,
			persona TEXT NOT NULL,
			summary TEXT NOT NULL,
			keywords TEXT[] NOT NULL DEFAULT '{}',
			background_image_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (r *SearchRepository) SaveSearch(record *model.SearchRecord) error {
	keywords := record.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	return r.db.QueryRow(`
		INSERT INTO search_history(query, persona, summary, keywords, background_image_url)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, record.Query, record.Persona, record.Summary, pq.Array(keywords), record.BackgroundImageURL).Scan(&record.ID, &record.CreatedAt)
}

func (r *SearchRepository) GetSearches(limit, offset int) ([]model.SearchRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, query, persona, summary, keywords, background_image_url, created_at
		FROM search_history
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.SearchRecord{}
	for rows.Next() {
		var rec model.SearchRecord
		err := rows.Scan(&rec.ID, &rec.Query, &rec.Persona, &rec.Summary, pq.Array(&rec.Keywords), &rec.BackgroundImageURL, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *SearchRepository) GetSearchTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM search_history`).Scan(&total)
	return total, err
}
