package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/platform/email"
	"github.com/tasknest/tasknest-api/internal/platform/imaging"
	"github.com/tasknest/tasknest-api/internal/service/auth"
	"github.com/tasknest/tasknest-api/internal/store"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Age      *int
}

// UpdateUserInput carries the allow-listed profile fields. A nil field means
// "leave unchanged"; the API layer has already rejected anything outside the
// allow-list before this struct is built.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Age      *int
}

// UserService provides account operations: registration, login and session
// management, profile updates, avatars, and account deletion.
type UserService interface {
	// Register creates an account, fires the welcome mail, and issues the
	// first session token.
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)

	// Login authenticates by email and password and issues a session token.
	// Returns ErrInvalidCredentials on any failure.
	Login(ctx context.Context, emailAddr, password string) (*domain.User, string, error)

	// Logout revokes the one session token the request authenticated with.
	Logout(ctx context.Context, userID uuid.UUID, token string) error

	// LogoutAll revokes every session token the user has.
	LogoutAll(ctx context.Context, userID uuid.UUID) error

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// UpdateUser applies the provided profile fields and returns the updated
	// user. A provided password is validated and re-hashed.
	UpdateUser(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*domain.User, error)

	// DeleteUser fires the goodbye mail, then deletes the user's tasks and
	// the account in one transaction. Session tokens go with the account.
	DeleteUser(ctx context.Context, user *domain.User) error

	// UploadAvatar resizes the uploaded image and stores it as the user's avatar.
	UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte) error

	// DeleteAvatar clears the user's avatar.
	DeleteAvatar(ctx context.Context, userID uuid.UUID) error

	// GetAvatar returns the stored avatar bytes.
	// Returns ErrAvatarNotSet when the user has no avatar.
	GetAvatar(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	runTx     func(ctx context.Context, fn store.TxFn) error
	users     store.UserStore
	tasks     store.TaskStore
	tokens    auth.TokenService
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	mailer    email.Mailer
	processor imaging.Processor
	logger    *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a UserService. db is only used to open the
// transaction that makes account deletion atomic; all other operations go
// through the stores directly.
func NewUserService(
	db *sql.DB,
	users store.UserStore,
	tasks store.TaskStore,
	tokens auth.TokenService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	mailer email.Mailer,
	processor imaging.Processor,
	logger *slog.Logger,
) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		runTx: func(ctx context.Context, fn store.TxFn) error {
			return store.RunInTransaction(ctx, db, fn)
		},
		users:     users,
		tasks:     tasks,
		tokens:    tokens,
		hasher:    hasher,
		verifier:  verifier,
		mailer:    mailer,
		processor: processor,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// Register implements UserService.Register. The ordering is explicit:
// validate, hash, store, notify, issue token.
func (s *UserServiceImpl) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	user, err := domain.NewUser(input.Name, input.Email, input.Password, input.Age)
	if err != nil {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hash
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	s.notify("welcome", user.ID, func(ctx context.Context) error {
		return s.mailer.SendWelcome(ctx, user.Email, user.Name)
	})

	token, err := s.tokens.IssueToken(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, token, nil
}

// Login implements UserService.Login.
func (s *UserServiceImpl) Login(ctx context.Context, emailAddr, password string) (*domain.User, string, error) {
	normalized := strings.ToLower(strings.TrimSpace(emailAddr))

	user, err := s.users.GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("password mismatch during login", "user_id", user.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Logout implements UserService.Logout.
func (s *UserServiceImpl) Logout(ctx context.Context, userID uuid.UUID, token string) error {
	return s.tokens.RevokeToken(ctx, userID, token)
}

// LogoutAll implements UserService.LogoutAll.
func (s *UserServiceImpl) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	return s.tokens.RevokeAllTokens(ctx, userID)
}

// GetUser implements UserService.GetUser.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateUser implements UserService.UpdateUser. It follows the pattern of
// loading the full user, mutating the provided fields, and writing the whole
// record back, so the domain validation always sees a complete entity.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Age != nil {
		user.Age = input.Age
	}
	if input.Password != nil {
		password := strings.TrimSpace(*input.Password)
		if err := domain.ValidatePassword(password); err != nil {
			return nil, err
		}
		hash, err := s.hasher.Hash(password)
		if err != nil {
			s.logger.Error("failed to hash password", "error", err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = hash
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser implements UserService.DeleteUser. The goodbye mail goes out
// first (fire-and-forget, like the welcome mail); tasks and account are then
// removed together in one transaction so a failure cannot leave orphaned
// tasks behind.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, user *domain.User) error {
	s.notify("goodbye", user.ID, func(ctx context.Context) error {
		return s.mailer.SendGoodbye(ctx, user.Email, user.Name)
	})

	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		deleted, err := s.tasks.WithTx(tx).DeleteByOwner(ctx, user.ID)
		if err != nil {
			return err
		}
		s.logger.Debug("cascaded task deletion",
			"user_id", user.ID,
			"tasks_deleted", deleted)

		return s.users.WithTx(tx).Delete(ctx, user.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", user.ID)
	return nil
}

// UploadAvatar implements UserService.UploadAvatar.
func (s *UserServiceImpl) UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte) error {
	processed, err := s.processor.Process(data)
	if err != nil {
		return err
	}
	return s.users.UpdateAvatar(ctx, userID, processed)
}

// DeleteAvatar implements UserService.DeleteAvatar.
func (s *UserServiceImpl) DeleteAvatar(ctx context.Context, userID uuid.UUID) error {
	return s.users.UpdateAvatar(ctx, userID, nil)
}

// GetAvatar implements UserService.GetAvatar.
func (s *UserServiceImpl) GetAvatar(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	avatar, err := s.users.GetAvatar(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(avatar) == 0 {
		return nil, ErrAvatarNotSet
	}
	return avatar, nil
}

// notify dispatches a mail off the request goroutine. Failures are logged
// and never propagated: notification mail must not fail the request that
// triggered it.
func (s *UserServiceImpl) notify(event string, userID uuid.UUID, send func(context.Context) error) {
	go func() {
		if err := send(context.Background()); err != nil {
			s.logger.Error("failed to send notification mail",
				"event", event,
				"error", err,
				"user_id", userID)
		}
	}()
}
