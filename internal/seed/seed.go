package seed

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	appModels "github.com/edunexus/edunexus-backend/internal/app/models"
	appRepos "github.com/edunexus/edunexus-backend/internal/app/repositories"
	"github.com/edunexus/edunexus-backend/internal/pkg/apperrors"
	"github.com/edunexus/edunexus-backend/internal/pkg/auth"
)

const defaultAdminEmail = "admin@edunexus.local"

// CreateDefaultData seeds a default admin account so a fresh deployment
// can manage courses before any other user registers. The password comes
// from SEED_ADMIN_PASSWORD; without it, nothing is seeded.
func CreateDefaultData(ctx context.Context, database *mongo.Database, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(database)

	lgr.Info().Msg("Checking/Creating default data (admin account)...")

	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin account")
		return err
	}
	if exists {
		return nil
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		lgr.Info().Msg("SEED_ADMIN_PASSWORD not set, skipping default admin creation")
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.User{
		Email:     defaultAdminEmail,
		Password:  hashed,
		FirstName: "EduNexus",
		LastName:  "Admin",
		Role:      appModels.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		// Another instance may have won the race; that is fine
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
