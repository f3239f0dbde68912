package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"loanflow.backend/internal/domain/entities"
	"loanflow.backend/internal/domain/errors"
	domainRepos "loanflow.backend/internal/domain/repositories"
	"loanflow.backend/pkg/crypto"
	"loanflow.backend/pkg/jwt"
	"loanflow.backend/pkg/logger"
	"loanflow.backend/pkg/utils"
)

// AuthUsecase handles registration and login. The acting user's role
// rides in the JWT claims and is passed explicitly to each protected
// handler; nothing here is ambient state.
type AuthUsecase struct {
	userRepo   domainRepos.UserRepository
	jwtService *jwt.JWTService
}

func NewAuthUsecase(userRepo domainRepos.UserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Role     entities.UserRole
}

type AuthOutput struct {
	User   *entities.User `json:"user"`
	Tokens *jwt.TokenPair `json:"tokens"`
}

func (uc *AuthUsecase) Register(ctx context.Context, input RegisterInput) (*AuthOutput, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, errors.BadRequest("email, name and password are required")
	}
	if !entities.ValidRole(input.Role) {
		return nil, errors.BadRequest("unknown role")
	}

	if _, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, errors.Conflict("email already registered")
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, errors.InternalError(err)
	}

	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        input.Email,
		Name:         input.Name,
		Role:         input.Role,
		PasswordHash: hash,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.InternalError(err)
	}

	tokens, err := uc.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, errors.InternalError(err)
	}

	logger.Info(ctx, "user registered",
		zap.String("userId", user.ID.String()),
		zap.String("role", string(user.Role)))
	return &AuthOutput{User: user, Tokens: tokens}, nil
}

func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*AuthOutput, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Unauthorized("invalid credentials")
	}

	if !crypto.CheckPassword(password, user.PasswordHash) {
		return nil, errors.Unauthorized("invalid credentials")
	}

	tokens, err := uc.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, errors.InternalError(err)
	}
	return &AuthOutput{User: user, Tokens: tokens}, nil
}

func (uc *AuthUsecase) GetMe(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}
