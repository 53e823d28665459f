package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"starwarsapi/internal/models"
)

const planetColumns = `id, name, climate, terrain, population, orbital_period, rotation_period, diameter`

func scanPlanet(row rowScanner) (models.Planet, error) {
	var p models.Planet
	err := row.Scan(&p.ID, &p.Name, &p.Climate, &p.Terrain, &p.Population,
		&p.OrbitalPeriod, &p.RotationPeriod, &p.Diameter)
	return p, err
}

// ListPlanets returns every planet ordered by id.
func (s *Store) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+planetColumns+`
		FROM planets
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}
	defer rows.Close()

	planets := []models.Planet{}
	for rows.Next() {
		p, err := scanPlanet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan planet: %w", err)
		}
		planets = append(planets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate planets: %w", err)
	}

	return planets, nil
}

// GetPlanet retrieves a single planet by id.
func (s *Store) GetPlanet(ctx context.Context, id int64) (models.Planet, error) {
	p, err := scanPlanet(s.db.QueryRowContext(ctx, `
		SELECT `+planetColumns+`
		FROM planets
		WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Planet{}, ErrPlanetNotFound
	}
	if err != nil {
		return models.Planet{}, fmt.Errorf("get planet: %w", err)
	}
	return p, nil
}

// CreatePlanet inserts a planet. Name falls back to Tatooine and every other
// attribute to the empty string.
func (s *Store) CreatePlanet(ctx context.Context, fields models.PlanetFields) (models.Planet, error) {
	p, err := scanPlanet(s.db.QueryRowContext(ctx, `
		INSERT INTO planets (name, climate, terrain, population, orbital_period, rotation_period, diameter)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+planetColumns,
		stringOrDefault(fields.Name, models.DefaultPlanetName),
		stringOrDefault(fields.Climate, ""),
		stringOrDefault(fields.Terrain, ""),
		stringOrDefault(fields.Population, ""),
		stringOrDefault(fields.OrbitalPeriod, ""),
		stringOrDefault(fields.RotationPeriod, ""),
		stringOrDefault(fields.Diameter, ""),
	))
	if err != nil {
		return models.Planet{}, fmt.Errorf("insert planet: %w", err)
	}
	return p, nil
}

// UpdatePlanet overwrites the supplied attributes and leaves the rest untouched.
func (s *Store) UpdatePlanet(ctx context.Context, id int64, fields models.PlanetFields) (models.Planet, error) {
	set := map[string]any{}
	setIfPresent(set, "name", fields.Name)
	setIfPresent(set, "climate", fields.Climate)
	setIfPresent(set, "terrain", fields.Terrain)
	setIfPresent(set, "population", fields.Population)
	setIfPresent(set, "orbital_period", fields.OrbitalPeriod)
	setIfPresent(set, "rotation_period", fields.RotationPeriod)
	setIfPresent(set, "diameter", fields.Diameter)

	if len(set) == 0 {
		return s.GetPlanet(ctx, id)
	}

	query, args, err := s.psql.Update("planets").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + planetColumns).
		ToSql()
	if err != nil {
		return models.Planet{}, fmt.Errorf("build planet update: %w", err)
	}

	p, err := scanPlanet(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Planet{}, ErrPlanetNotFound
	}
	if err != nil {
		return models.Planet{}, fmt.Errorf("update planet: %w", err)
	}
	return p, nil
}

// DeletePlanet removes a planet and any favorites pointing at it.
func (s *Store) DeletePlanet(ctx context.Context, id int64) error {
	if err := s.deleteByID(ctx, `DELETE FROM planets WHERE id = $1`, id, ErrPlanetNotFound); err != nil {
		if errors.Is(err, ErrPlanetNotFound) {
			return err
		}
		return fmt.Errorf("delete planet: %w", err)
	}
	return nil
}

// PlanetExists reports whether a planet with the given id is stored.
func (s *Store) PlanetExists(ctx context.Context, id int64) (bool, error) {
	found, err := s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM planets WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check planet: %w", err)
	}
	return found, nil
}
