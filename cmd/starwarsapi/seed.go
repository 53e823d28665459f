package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"starwarsapi/internal/models"
	"starwarsapi/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo data into empty tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase(cmd.Context(), cfg.Database.URL)
		if err != nil {
			return err
		}
		defer db.Close()

		return seedDemoData(cmd.Context(), store.New(db))
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

const (
	demoEmail    = "demo@starwars.dev"
	demoPassword = "maytheforce"
)

// seedStore is the subset of the store the demo seeding needs.
type seedStore interface {
	CreateUser(ctx context.Context, fields models.UserFields) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListPlanets(ctx context.Context) ([]models.Planet, error)
	CreatePlanet(ctx context.Context, fields models.PlanetFields) (models.Planet, error)
	ListPeople(ctx context.Context) ([]models.Person, error)
	CreatePerson(ctx context.Context, fields models.PersonFields) (models.Person, error)
	CreateFavorite(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) (models.Favorite, error)
}

func seedDemoData(ctx context.Context, st seedStore) error {
	user, err := ensureDemoUser(ctx, st)
	if err != nil {
		return err
	}

	planets, err := ensureDemoPlanets(ctx, st)
	if err != nil {
		return err
	}

	people, err := ensureDemoPeople(ctx, st)
	if err != nil {
		return err
	}

	// Only link favorites when this run created the catalogue and the user.
	if user == nil || len(planets) == 0 || len(people) == 0 {
		log.Info().Msg("demo data already present")
		return nil
	}

	if _, err := st.CreateFavorite(ctx, user.ID, models.TargetPlanet, planets[0].ID); err != nil && !errors.Is(err, store.ErrFavoriteExists) {
		return fmt.Errorf("seed favorite planet: %w", err)
	}
	if _, err := st.CreateFavorite(ctx, user.ID, models.TargetPeople, people[0].ID); err != nil && !errors.Is(err, store.ErrFavoriteExists) {
		return fmt.Errorf("seed favorite person: %w", err)
	}

	log.Info().
		Str("email", user.Email).
		Int("planets", len(planets)).
		Int("people", len(people)).
		Msg("demo data seeded")
	return nil
}

func ensureDemoUser(ctx context.Context, st seedStore) (*models.User, error) {
	existing, err := st.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(existing) > 0 {
		return nil, nil
	}

	email, password := demoEmail, demoPassword
	user, err := st.CreateUser(ctx, models.UserFields{Email: &email, Password: &password})
	if err != nil {
		if errors.Is(err, store.ErrUserExists) {
			return nil, nil
		}
		return nil, fmt.Errorf("bootstrap demo user: %w", err)
	}
	return &user, nil
}

func ensureDemoPlanets(ctx context.Context, st seedStore) ([]models.Planet, error) {
	existing, err := st.ListPlanets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}
	if len(existing) > 0 {
		return nil, nil
	}

	seeds := []models.PlanetFields{
		{
			Name:           strPtr(models.DefaultPlanetName),
			Climate:        strPtr("arid"),
			Terrain:        strPtr("desert"),
			Population:     strPtr("200000"),
			OrbitalPeriod:  strPtr("304"),
			RotationPeriod: strPtr("23"),
			Diameter:       strPtr("10465"),
		},
		{
			Name:           strPtr("Alderaan"),
			Climate:        strPtr("temperate"),
			Terrain:        strPtr("grasslands, mountains"),
			Population:     strPtr("2000000000"),
			OrbitalPeriod:  strPtr("364"),
			RotationPeriod: strPtr("24"),
			Diameter:       strPtr("12500"),
		},
	}

	created := make([]models.Planet, 0, len(seeds))
	for _, fields := range seeds {
		planet, err := st.CreatePlanet(ctx, fields)
		if err != nil {
			return nil, fmt.Errorf("seed planet %s: %w", *fields.Name, err)
		}
		created = append(created, planet)
	}
	return created, nil
}

func ensureDemoPeople(ctx context.Context, st seedStore) ([]models.Person, error) {
	existing, err := st.ListPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	if len(existing) > 0 {
		return nil, nil
	}

	seeds := []models.PersonFields{
		{
			Name:      strPtr("Luke Skywalker"),
			Height:    strPtr("172"),
			Mass:      strPtr("77"),
			HairColor: strPtr("blond"),
			SkinColor: strPtr("fair"),
			EyeColor:  strPtr("blue"),
			BirthYear: strPtr("19BBY"),
			Gender:    strPtr("male"),
		},
		{
			Name:      strPtr("Leia Organa"),
			Height:    strPtr("150"),
			Mass:      strPtr("49"),
			HairColor: strPtr("brown"),
			SkinColor: strPtr("light"),
			EyeColor:  strPtr("brown"),
			BirthYear: strPtr("19BBY"),
			Gender:    strPtr("female"),
		},
	}

	created := make([]models.Person, 0, len(seeds))
	for _, fields := range seeds {
		person, err := st.CreatePerson(ctx, fields)
		if err != nil {
			return nil, fmt.Errorf("seed person %s: %w", *fields.Name, err)
		}
		created = append(created, person)
	}
	return created, nil
}

func strPtr(s string) *string { return &s }
