package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"starwarsapi/internal/models"
)

const personColumns = `id, name, height, mass, hair_color, skin_color, eye_color, birth_year, gender`

func scanPerson(row rowScanner) (models.Person, error) {
	var p models.Person
	err := row.Scan(&p.ID, &p.Name, &p.Height, &p.Mass, &p.HairColor,
		&p.SkinColor, &p.EyeColor, &p.BirthYear, &p.Gender)
	return p, err
}

// ListPeople returns every person ordered by id.
func (s *Store) ListPeople(ctx context.Context) ([]models.Person, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+personColumns+`
		FROM people
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	defer rows.Close()

	people := []models.Person{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate people: %w", err)
	}

	return people, nil
}

// GetPerson retrieves a single person by id.
func (s *Store) GetPerson(ctx context.Context, id int64) (models.Person, error) {
	p, err := scanPerson(s.db.QueryRowContext(ctx, `
		SELECT `+personColumns+`
		FROM people
		WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Person{}, ErrPersonNotFound
	}
	if err != nil {
		return models.Person{}, fmt.Errorf("get person: %w", err)
	}
	return p, nil
}

// CreatePerson inserts a person. Name is required; the other attributes stay NULL when absent.
func (s *Store) CreatePerson(ctx context.Context, fields models.PersonFields) (models.Person, error) {
	name, err := requiredString("name", fields.Name)
	if err != nil {
		return models.Person{}, err
	}

	p, err := scanPerson(s.db.QueryRowContext(ctx, `
		INSERT INTO people (name, height, mass, hair_color, skin_color, eye_color, birth_year, gender)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+personColumns,
		name, fields.Height, fields.Mass, fields.HairColor, fields.SkinColor,
		fields.EyeColor, fields.BirthYear, fields.Gender,
	))
	if err != nil {
		return models.Person{}, fmt.Errorf("insert person: %w", err)
	}
	return p, nil
}

// UpdatePerson overwrites the supplied attributes and leaves the rest untouched.
func (s *Store) UpdatePerson(ctx context.Context, id int64, fields models.PersonFields) (models.Person, error) {
	set := map[string]any{}
	if fields.Name != nil {
		name, err := requiredString("name", fields.Name)
		if err != nil {
			return models.Person{}, err
		}
		set["name"] = name
	}
	setIfPresent(set, "height", fields.Height)
	setIfPresent(set, "mass", fields.Mass)
	setIfPresent(set, "hair_color", fields.HairColor)
	setIfPresent(set, "skin_color", fields.SkinColor)
	setIfPresent(set, "eye_color", fields.EyeColor)
	setIfPresent(set, "birth_year", fields.BirthYear)
	setIfPresent(set, "gender", fields.Gender)

	if len(set) == 0 {
		return s.GetPerson(ctx, id)
	}

	query, args, err := s.psql.Update("people").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + personColumns).
		ToSql()
	if err != nil {
		return models.Person{}, fmt.Errorf("build person update: %w", err)
	}

	p, err := scanPerson(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Person{}, ErrPersonNotFound
	}
	if err != nil {
		return models.Person{}, fmt.Errorf("update person: %w", err)
	}
	return p, nil
}

// DeletePerson removes a person and, through the foreign key, any favorites pointing at it.
func (s *Store) DeletePerson(ctx context.Context, id int64) error {
	if err := s.deleteByID(ctx, `DELETE FROM people WHERE id = $1`, id, ErrPersonNotFound); err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			return err
		}
		return fmt.Errorf("delete person: %w", err)
	}
	return nil
}

// PersonExists reports whether a person with the given id is stored.
func (s *Store) PersonExists(ctx context.Context, id int64) (bool, error) {
	found, err := s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM people WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check person: %w", err)
	}
	return found, nil
}
