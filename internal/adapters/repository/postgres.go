package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heavenike02/sdg-showcase-3/internal/domain/model"
)

// Column list shared by every select; order matters for scanRecord.
const selectColumns = `
	id,
	COALESCE(first_name, ''),
	COALESCE(last_name, ''),
	COALESCE(email, ''),
	COALESCE(university, ''),
	COALESCE(university_school, ''),
	COALESCE(title, ''),
	COALESCE(objectives, ''),
	targets,
	COALESCE(tags, '{}'),
	modules,
	publications,
	impact_assessment,
	COALESCE(profile_picture, ''),
	COALESCE(publications_overview, '')`

// Postgres is the production Store over the assessments table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects a pool and verifies the connection.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Postgres{pool: pool}, nil
}

// Close releases the pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

// ByID implements Store.
func (p *Postgres) ByID(ctx context.Context, id string) (model.ResearcherRecord, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM assessments WHERE id = $1`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ResearcherRecord{}, ErrNotFound
	}
	if err != nil {
		return model.ResearcherRecord{}, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return rec, nil
}

// All implements Store. Order by (last_name, first_name) is the contract the
// search pipeline preserves.
func (p *Postgres) All(ctx context.Context) ([]model.ResearcherRecord, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+selectColumns+` FROM assessments ORDER BY last_name, first_name`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	defer rows.Close()

	var out []model.ResearcherRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrQuery, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return out, nil
}

// Count implements Store.
func (p *Postgres) Count(ctx context.Context) (int, error) {
	var n int
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM assessments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return n, nil
}

// EnsureSchema creates the assessments table when it does not exist. Only
// the seed CLI calls this; deployments manage the schema themselves.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS assessments (
			id TEXT PRIMARY KEY,
			first_name TEXT,
			last_name TEXT,
			email TEXT,
			university TEXT,
			university_school TEXT,
			title TEXT,
			objectives TEXT,
			targets JSONB,
			tags TEXT[],
			modules JSONB,
			publications JSONB,
			impact_assessment JSONB,
			profile_picture TEXT,
			publications_overview TEXT
		)`)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return nil
}

// Insert writes one record; used by the seed CLI, not by the serving path.
func (p *Postgres) Insert(ctx context.Context, rec model.ResearcherRecord) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO assessments (
			id, first_name, last_name, email, university, university_school,
			title, objectives, targets, tags, modules, publications,
			impact_assessment, profile_picture, publications_overview
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			university = EXCLUDED.university,
			university_school = EXCLUDED.university_school,
			title = EXCLUDED.title,
			objectives = EXCLUDED.objectives,
			targets = EXCLUDED.targets,
			tags = EXCLUDED.tags,
			modules = EXCLUDED.modules,
			publications = EXCLUDED.publications,
			impact_assessment = EXCLUDED.impact_assessment,
			profile_picture = EXCLUDED.profile_picture,
			publications_overview = EXCLUDED.publications_overview`,
		rec.ID, rec.FirstName, rec.LastName, rec.Email, rec.University,
		rec.UniversitySchool, rec.Title, rec.Objectives, nullableJSON(rec.Targets),
		rec.Tags, nullableJSON(rec.Modules), nullableJSON(rec.Publications),
		nullableJSON(rec.ImpactAssessment), rec.ProfilePicture, rec.PublicationsOverview,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return nil
}

// scanRecord reads one row in selectColumns order. JSON columns come back as
// raw bytes; NULL stays nil so the normalizer sees an absent value.
func scanRecord(row pgx.Row) (model.ResearcherRecord, error) {
	var rec model.ResearcherRecord
	var targets, modules, publications, impact []byte
	err := row.Scan(
		&rec.ID,
		&rec.FirstName,
		&rec.LastName,
		&rec.Email,
		&rec.University,
		&rec.UniversitySchool,
		&rec.Title,
		&rec.Objectives,
		&targets,
		&rec.Tags,
		&modules,
		&publications,
		&impact,
		&rec.ProfilePicture,
		&rec.PublicationsOverview,
	)
	if err != nil {
		return model.ResearcherRecord{}, err
	}
	rec.Targets = targets
	rec.Modules = modules
	rec.Publications = publications
	rec.ImpactAssessment = impact
	return rec, nil
}

// nullableJSON maps an empty blob to SQL NULL instead of invalid empty JSON.
func nullableJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
