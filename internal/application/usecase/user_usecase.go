package usecase

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/jhoicas/SmartOps-api/internal/application/dto"
	"github.com/jhoicas/SmartOps-api/internal/application/ports"
	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
	"github.com/jhoicas/SmartOps-api/pkg/logger"
)

// MinPasswordLength longitud mínima de una contraseña nueva.
const MinPasswordLength = 8

// NewUserInput datos para dar de alta un usuario en un negocio.
// Si PasswordHash viene informado se usa tal cual y Password se ignora.
type NewUserInput struct {
	BusinessID   int64
	Email        string
	Password     string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
}

// UserUseCase gestión de usuarios del negocio por parte del owner.
type UserUseCase struct {
	repo   repository.UserRepository
	hasher ports.PasswordHasher
	cache  ports.PrincipalCache
	log    *logger.Logger
}

// NewUserUseCase construye el caso de uso. cache y log pueden ser nil.
func NewUserUseCase(repo repository.UserRepository, hasher ports.PasswordHasher, cache ports.PrincipalCache, log *logger.Logger) *UserUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UserUseCase{repo: repo, hasher: hasher, cache: cache, log: log}
}

// List devuelve los usuarios del negocio.
func (uc *UserUseCase) List(ctx context.Context, businessID int64) ([]dto.UserResponse, error) {
	users, err := uc.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return dto.FromUsers(users), nil
}

// Get devuelve un usuario del mismo negocio.
func (uc *UserUseCase) Get(ctx context.Context, businessID, id int64) (*dto.UserResponse, error) {
	u, err := uc.repo.GetInBusiness(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.FromUser(u, nil), nil
}

// Create da de alta un usuario con rol explícito (cashier por defecto).
func (uc *UserUseCase) Create(ctx context.Context, businessID int64, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := strings.ToLower(strings.TrimSpace(in.Role))
	if role == "" {
		role = entity.RoleCashier
	}
	u, err := CreateUser(ctx, uc.repo, uc.hasher, NewUserInput{
		BusinessID: businessID,
		Email:      in.Email,
		Password:   in.Password,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Role:       role,
	}, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return dto.FromUser(u, nil), nil
}

// Update aplica los campos presentes. callerID no puede cambiar su propio rol ni desactivarse.
func (uc *UserUseCase) Update(ctx context.Context, businessID, callerID, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetInBusiness(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.FirstName != nil {
		u.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		u.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		if err := ChangeEmail(ctx, uc.repo, u, *in.Email); err != nil {
			return nil, err
		}
	}
	if in.Role != nil {
		role := strings.ToLower(strings.TrimSpace(*in.Role))
		if !entity.ValidRole(role) {
			return nil, domain.Invalid("Invalid role")
		}
		if id == callerID && role != u.Role {
			return nil, domain.Invalid("Cannot change your own role")
		}
		u.Role = role
	}
	if in.IsActive != nil {
		if id == callerID && !*in.IsActive {
			return nil, domain.Invalid("Cannot deactivate your own account")
		}
		u.IsActive = *in.IsActive
	}
	u.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	uc.evictPrincipal(ctx, u.ID)
	return dto.FromUser(u, nil), nil
}

// Delete elimina un usuario del negocio. Nadie puede eliminar su propia cuenta.
func (uc *UserUseCase) Delete(ctx context.Context, businessID, callerID, id int64) error {
	if id == callerID {
		return domain.ErrSelfDeletion
	}
	if err := uc.repo.Delete(ctx, businessID, id); err != nil {
		return err
	}
	uc.evictPrincipal(ctx, id)
	return nil
}

// CreateUser valida y persiste un usuario nuevo. El email es único en todos los tenants.
// repo puede estar atado a una transacción.
func CreateUser(ctx context.Context, repo repository.UserRepository, hasher ports.PasswordHasher, in NewUserInput, now time.Time) (*entity.User, error) {
	email := normalizeEmail(in.Email)
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	if email == "" || (in.Password == "" && in.PasswordHash == "") || firstName == "" || lastName == "" {
		return nil, domain.MissingFields("Missing required fields", "email", "password", "firstName", "lastName")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	hash := in.PasswordHash
	if hash == "" {
		if err := ValidatePassword(in.Password); err != nil {
			return nil, err
		}
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.Invalid("Invalid role")
	}

	existing, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	if hash == "" {
		if hash, err = hasher.Hash(in.Password); err != nil {
			return nil, err
		}
	}
	u := &entity.User{
		BusinessID:   in.BusinessID,
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ChangeEmail valida y asigna un email nuevo comprobando que no lo use otra cuenta.
func ChangeEmail(ctx context.Context, repo repository.UserRepository, u *entity.User, raw string) error {
	email := normalizeEmail(raw)
	if email == u.Email {
		return nil
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	other, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if other != nil && other.ID != u.ID {
		return domain.ErrEmailInUse
	}
	u.Email = email
	return nil
}

// ValidateEmail normaliza y valida el formato de un email.
func ValidateEmail(raw string) (string, error) {
	email := normalizeEmail(raw)
	return email, validateEmail(email)
}

// ValidatePassword aplica la política mínima de contraseñas.
func ValidatePassword(plain string) error {
	if len(plain) < MinPasswordLength {
		return domain.Invalid("Password must be at least 8 characters long")
	}
	return nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return domain.Invalid("Invalid email address")
	}
	return nil
}

// evictPrincipal un fallo deja el principal en caché hasta que expire su TTL.
func (uc *UserUseCase) evictPrincipal(ctx context.Context, userID int64) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, userID); err != nil {
		uc.log.Warn().Err(err).Int64("user_id", userID).Msg("principal cache eviction failed")
	}
}
