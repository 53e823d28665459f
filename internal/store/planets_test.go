package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"starwarsapi/internal/models"
)

var planetRowColumns = []string{"id", "name", "climate", "terrain", "population", "orbital_period", "rotation_period", "diameter"}

func TestCreatePlanetDefaults(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO planets (name, climate, terrain, population, orbital_period, rotation_period, diameter) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, name`)).
		WithArgs("Tatooine", "", "", "", "", "", "").
		WillReturnRows(sqlmock.NewRows(planetRowColumns).
			AddRow(int64(1), "Tatooine", "", "", "", "", "", ""))

	got, err := s.CreatePlanet(context.Background(), models.PlanetFields{})
	if err != nil {
		t.Fatalf("CreatePlanet error: %v", err)
	}
	if got.Name != models.DefaultPlanetName {
		t.Fatalf("expected default name, got %q", got.Name)
	}
}

func TestCreatePlanetWithFields(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO planets`)).
		WithArgs("Hoth", "frozen", "tundra", "", "549", "23", "7200").
		WillReturnRows(sqlmock.NewRows(planetRowColumns).
			AddRow(int64(4), "Hoth", "frozen", "tundra", "", "549", "23", "7200"))

	got, err := s.CreatePlanet(context.Background(), models.PlanetFields{
		Name:           strPtr("Hoth"),
		Climate:        strPtr("frozen"),
		Terrain:        strPtr("tundra"),
		OrbitalPeriod:  strPtr("549"),
		RotationPeriod: strPtr("23"),
		Diameter:       strPtr("7200"),
	})
	if err != nil {
		t.Fatalf("CreatePlanet error: %v", err)
	}
	if got.ID != 4 || got.Climate != "frozen" || got.Population != "" {
		t.Fatalf("unexpected planet: %#v", got)
	}
}

func TestGetPlanet(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, climate, terrain, population, orbital_period, rotation_period, diameter FROM planets WHERE id = $1`)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(planetRowColumns).
			AddRow(int64(2), "Alderaan", "temperate", "grasslands", "2000000000", "364", "24", "12500"))

	got, err := s.GetPlanet(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetPlanet error: %v", err)
	}
	if got.Name != "Alderaan" || got.Diameter != "12500" {
		t.Fatalf("unexpected planet: %#v", got)
	}
}

func TestGetPlanetNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM planets WHERE id = $1`)).
		WithArgs(int64(9999)).
		WillReturnRows(sqlmock.NewRows(planetRowColumns))

	_, err := s.GetPlanet(context.Background(), 9999)
	if !errors.Is(err, ErrPlanetNotFound) {
		t.Fatalf("expected ErrPlanetNotFound, got %v", err)
	}
}

func TestUpdatePlanetPartial(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE planets SET climate = $1 WHERE id = $2 RETURNING id, name`)).
		WithArgs("arid", int64(1)).
		WillReturnRows(sqlmock.NewRows(planetRowColumns).
			AddRow(int64(1), "Tatooine", "arid", "desert", "200000", "304", "23", "10465"))

	got, err := s.UpdatePlanet(context.Background(), 1, models.PlanetFields{Climate: strPtr("arid")})
	if err != nil {
		t.Fatalf("UpdatePlanet error: %v", err)
	}
	if got.Terrain != "desert" || got.Climate != "arid" {
		t.Fatalf("unexpected planet after update: %#v", got)
	}
}

func TestUpdatePlanetNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE planets SET name = $1 WHERE id = $2 RETURNING id, name`)).
		WithArgs("Hoth", int64(9999)).
		WillReturnRows(sqlmock.NewRows(planetRowColumns))

	_, err := s.UpdatePlanet(context.Background(), 9999, models.PlanetFields{Name: strPtr("Hoth")})
	if !errors.Is(err, ErrPlanetNotFound) {
		t.Fatalf("expected ErrPlanetNotFound, got %v", err)
	}
}

func TestDeletePlanetNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM planets WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DeletePlanet(context.Background(), 5); !errors.Is(err, ErrPlanetNotFound) {
		t.Fatalf("expected ErrPlanetNotFound, got %v", err)
	}
}

func TestPlanetExists(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM planets WHERE id = $1)`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	found, err := s.PlanetExists(context.Background(), 5)
	if err != nil {
		t.Fatalf("PlanetExists error: %v", err)
	}
	if !found {
		t.Fatalf("expected planet to exist")
	}
}
