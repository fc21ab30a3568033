package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/appdevg5/schedease/internal/app/models"
	appRepos "github.com/appdevg5/schedease/internal/app/repositories"
	"github.com/appdevg5/schedease/internal/pkg/dberrors"
)

// EnsureFallbackUser materializes the well-known user that owns schedules
// submitted without an explicit owner. Runs once at startup, after
// migrations; a concurrent instance winning the insert race is fine.
func EnsureFallbackUser(ctx context.Context, dbPool *pgxpool.Pool, fallbackUserID int64, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.ExistsByID(ctx, fallbackUserID)
	if err != nil {
		return fmt.Errorf("failed to check for fallback user: %w", err)
	}
	if exists {
		lgr.Debug().Int64("userID", fallbackUserID).Msg("Fallback user already present")
		return nil
	}

	// The account is never logged into, so the password is a random-ish
	// placeholder hashed like any other credential.
	hashed, err := bcrypt.GenerateFromPassword([]byte("schedease-fallback"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash fallback user password: %w", err)
	}

	user := &appModels.User{
		ID:       fallbackUserID,
		Username: "default",
		Email:    "default@example.com",
		FullName: "Default User",
		Password: string(hashed),
	}

	if err := userRepo.CreateWithID(ctx, user); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			lgr.Debug().Int64("userID", fallbackUserID).Msg("Fallback user created by another instance")
			return nil
		}
		return fmt.Errorf("failed to create fallback user: %w", err)
	}

	lgr.Info().Int64("userID", fallbackUserID).Msg("Fallback user created")
	return nil
}
