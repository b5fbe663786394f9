package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/minimart-api/internal/application/dto"
	"github.com/jhoicas/minimart-api/internal/domain"
	"github.com/jhoicas/minimart-api/internal/domain/entity"
	"github.com/jhoicas/minimart-api/internal/domain/repository"
	"github.com/jhoicas/minimart-api/pkg/password"
	"github.com/jhoicas/minimart-api/pkg/token"
)

// TokenConfig configuración para emisión de tokens.
type TokenConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro de cuenta + perfil, y login.
type UseCase struct {
	users     repository.UserRepository
	employees repository.EmployeeRepository
	managers  repository.ManagerRepository
	tokenCfg  TokenConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, employees repository.EmployeeRepository,
	managers repository.ManagerRepository, tokenCfg TokenConfig) *UseCase {
	return &UseCase{users: users, employees: employees, managers: managers, tokenCfg: tokenCfg}
}

// Register crea la cuenta (password hasheado) y el perfil según el rol.
// El chequeo previo de username es consultivo: la autoridad final es el
// índice único de la colección users, así que dos registros concurrentes con
// el mismo username se resuelven con ErrDuplicateKey para el perdedor.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	username := strings.TrimSpace(in.Username)
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	switch {
	case username == "":
		return nil, fmt.Errorf("%w: username es requerido", domain.ErrInvalidInput)
	case in.Password == "":
		return nil, fmt.Errorf("%w: password es requerido", domain.ErrInvalidInput)
	case name == "":
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	case email == "":
		return nil, fmt.Errorf("%w: email es requerido", domain.ErrInvalidInput)
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	existing, err := uc.users.GetByUsername(username)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewServiceError("no se pudo verificar el username", err)
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, domain.NewServiceError("no se pudo hashear el password", err)
	}

	user := &entity.User{Username: username, Password: hash, Role: role}
	userID, err := uc.users.Insert(user)
	if err != nil {
		// Incluye la carrera perdida contra el índice único.
		return nil, domain.NewServiceError("no se pudo crear el usuario", err)
	}
	log.Info().Str("username", username).Str("role", string(role)).Msg("usuario registrado")

	resp := &dto.RegisterResponse{UserID: userID.Hex(), Role: string(role)}
	switch role {
	case entity.RoleEmployee:
		profileID, err := uc.employees.Insert(&entity.Employee{Name: name, Email: email, UserID: userID})
		if err != nil {
			return nil, domain.NewServiceError("no se pudo crear el perfil de empleado", err)
		}
		resp.EmployeeID = profileID.Hex()
	case entity.RoleManager:
		profileID, err := uc.managers.Insert(&entity.Manager{Name: name, Email: email, UserID: userID})
		if err != nil {
			return nil, domain.NewServiceError("no se pudo crear el perfil de gerente", err)
		}
		resp.ManagerID = profileID.Hex()
	}
	return resp, nil
}

// Login verifica username/password y emite un token firmado con el rol.
// Cualquier credencial que no resuelva a una cuenta válida es
// ErrAuthentication, sin distinguir entre usuario inexistente y password
// incorrecto.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username y password son requeridos", domain.ErrInvalidInput)
	}

	user, err := uc.users.GetByUsername(strings.TrimSpace(in.Username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAuthentication
		}
		return nil, domain.NewServiceError("no se pudo consultar el usuario", err)
	}
	if !password.Check(in.Password, user.Password) {
		return nil, domain.ErrAuthentication
	}

	ttl := time.Duration(uc.tokenCfg.ExpMinutes) * time.Minute
	tok, err := token.Issue(uc.tokenCfg.Secret, user.ID.Hex(), string(user.Role), uc.tokenCfg.Issuer, ttl)
	if err != nil {
		return nil, domain.NewServiceError("no se pudo emitir el token", err)
	}

	return &dto.LoginResponse{
		Token: tok,
		User: dto.UserResponse{
			ID:       user.ID.Hex(),
			Username: user.Username,
			Role:     string(user.Role),
		},
	}, nil
}
