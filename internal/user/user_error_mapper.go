package user

import (
	"errors"
	"strings"

	usererrors "github.com/subhankar-techs/emp-management/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapStoreError translates store failures into the error taxonomy. Unique
// violations come back from postgres as 23505 with the constraint name, which
// is how duplicate name/email/phone are detected instead of pre-read checks.
func MapStoreError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_users_name":
			return usererrors.ErrNameTaken
		case "uq_users_email":
			return usererrors.ErrEmailTaken
		case "uq_users_phone":
			return usererrors.ErrPhoneTaken
		}
		return usererrors.ErrDuplicateUser
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") {
		switch {
		case strings.Contains(msg, "uq_users_name"):
			return usererrors.ErrNameTaken
		case strings.Contains(msg, "uq_users_email"):
			return usererrors.ErrEmailTaken
		case strings.Contains(msg, "uq_users_phone"):
			return usererrors.ErrPhoneTaken
		}
		return usererrors.ErrDuplicateUser
	}

	return err
}
