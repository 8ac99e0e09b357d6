package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/SmartOps-api/internal/application/dto"
	"github.com/jhoicas/SmartOps-api/internal/application/ports"
	"github.com/jhoicas/SmartOps-api/internal/application/usecase"
	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
	"github.com/jhoicas/SmartOps-api/pkg/jwt"
	"github.com/jhoicas/SmartOps-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// AuthUseCase casos de uso de autenticación: registro, login, perfil y resolución del token.
type AuthUseCase struct {
	users      repository.UserRepository
	businesses repository.BusinessRepository
	tx         repository.TxRunner
	hasher     ports.PasswordHasher
	cache      ports.PrincipalCache
	jwtCfg     JWTConfig
	log        *logger.Logger
	now        func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth. cache y log pueden ser nil.
func NewAuthUseCase(
	users repository.UserRepository,
	businesses repository.BusinessRepository,
	tx repository.TxRunner,
	hasher ports.PasswordHasher,
	cache ports.PrincipalCache,
	jwtCfg JWTConfig,
	log *logger.Logger,
) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		users:      users,
		businesses: businesses,
		tx:         tx,
		hasher:     hasher,
		cache:      cache,
		jwtCfg:     jwtCfg,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Register crea el negocio y su usuario owner en una sola transacción y devuelve un token.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" || strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" || strings.TrimSpace(in.BusinessName) == "" || strings.TrimSpace(in.Subdomain) == "" {
		return nil, domain.MissingFields("Missing required fields",
			"email", "password", "firstName", "lastName", "businessName", "subdomain")
	}
	if err := usecase.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	// bcrypt fuera de la transacción para no retener bloqueos durante el hash
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	var (
		business *entity.Business
		user     *entity.User
	)
	err = uc.tx.Run(ctx, func(r repository.Repos) error {
		b, err := usecase.CreateBusiness(ctx, r.Businesses, dto.CreateBusinessRequest{
			Name:      in.BusinessName,
			Subdomain: in.Subdomain,
			Email:     in.BusinessEmail,
			Phone:     in.BusinessPhone,
			Address:   in.BusinessAddress,
		}, now)
		if err != nil {
			return err
		}
		u, err := usecase.CreateUser(ctx, r.Users, uc.hasher, usecase.NewUserInput{
			BusinessID:   b.ID,
			Email:        in.Email,
			PasswordHash: hash,
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Role:         entity.RoleOwner,
		}, now)
		if err != nil {
			return err
		}
		u.LastLogin = &now
		if err := r.Users.Update(ctx, u); err != nil {
			return err
		}
		business, user = b, u
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.issue(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Message: "User and business created successfully",
		Token:   token,
		User:    *dto.FromUser(user, business),
	}, nil
}

// Login verifica email/password, actualiza lastLogin y retorna token + usuario + negocio.
// Email desconocido, cuenta inactiva y password incorrecto devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.MissingFields("Email and password are required", "email", "password")
	}
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive || !uc.hasher.Verify(user.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	now := uc.now()
	user.LastLogin = &now
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	business, err := uc.businesses.GetByID(ctx, user.BusinessID)
	if err != nil {
		return nil, err
	}

	token, err := uc.issue(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    *dto.FromUser(user, business),
	}, nil
}

// Profile devuelve el usuario autenticado con su negocio.
func (uc *AuthUseCase) Profile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, business, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{User: *dto.FromUser(user, business)}, nil
}

// UpdateProfile modifica nombre, apellido o email del propio usuario.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID int64, in dto.UpdateProfileRequest) (*dto.UserEnvelope, error) {
	user, business, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		v := strings.TrimSpace(*in.FirstName)
		if v == "" {
			return nil, domain.Invalid("First name cannot be empty")
		}
		user.FirstName = v
	}
	if in.LastName != nil {
		v := strings.TrimSpace(*in.LastName)
		if v == "" {
			return nil, domain.Invalid("Last name cannot be empty")
		}
		user.LastName = v
	}
	if in.Email != nil {
		if err := usecase.ChangeEmail(ctx, uc.users, user, *in.Email); err != nil {
			return nil, err
		}
	}
	user.UpdatedAt = uc.now()
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UserEnvelope{Message: "Profile updated successfully", User: dto.FromUser(user, business)}, nil
}

// ChangePassword verifica la contraseña actual antes de guardar la nueva.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID int64, in dto.ChangePasswordRequest) error {
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return domain.MissingFields("Current password and new password are required", "currentPassword", "newPassword")
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if !uc.hasher.Verify(user.PasswordHash, in.CurrentPassword) {
		return domain.ErrWrongPassword
	}
	if err := usecase.ValidatePassword(in.NewPassword); err != nil {
		return err
	}
	hash, err := uc.hasher.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = uc.now()
	return uc.users.Update(ctx, user)
}

// Authenticate valida el token y resuelve la identidad actual del usuario
// (caché primero, repositorio si no hay entrada). Un usuario inexistente o
// movido de negocio invalida el token; uno desactivado devuelve ErrInactiveAccount.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (entity.Principal, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return entity.Principal{}, domain.ErrInvalidToken
	}

	p, err := uc.cachedPrincipal(ctx, claims.UserID)
	if err != nil {
		return entity.Principal{}, err
	}
	if p == nil || p.BusinessID != claims.BusinessID {
		return entity.Principal{}, domain.ErrInvalidToken
	}
	if !p.IsActive {
		return entity.Principal{}, domain.ErrInactiveAccount
	}
	return *p, nil
}

func (uc *AuthUseCase) cachedPrincipal(ctx context.Context, userID int64) (*entity.Principal, error) {
	if uc.cache != nil {
		p, err := uc.cache.Get(ctx, userID)
		if err != nil {
			uc.log.Warn().Err(err).Int64("user_id", userID).Msg("principal cache read failed")
		} else if p != nil {
			return p, nil
		}
	}

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	p := user.Principal()
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, p); err != nil {
			uc.log.Warn().Err(err).Int64("user_id", userID).Msg("principal cache write failed")
		}
	}
	return &p, nil
}

func (uc *AuthUseCase) load(ctx context.Context, userID int64) (*entity.User, *entity.Business, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrUserNotFound
	}
	business, err := uc.businesses.GetByID(ctx, user.BusinessID)
	if err != nil {
		return nil, nil, err
	}
	return user, business, nil
}

func (uc *AuthUseCase) issue(u *entity.User) (string, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.BusinessID, uc.jwtCfg.Issuer, uc.jwtCfg.TTL)
	if err != nil {
		return "", errors.Join(errors.New("no se pudo emitir el token"), err)
	}
	return token, nil
}
