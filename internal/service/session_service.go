package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/fit-training-service/internal/auth"
	"github.com/spec-kit/fit-training-service/internal/config"
	"github.com/spec-kit/fit-training-service/internal/domain"
	"github.com/spec-kit/fit-training-service/internal/flow"
	"github.com/spec-kit/fit-training-service/internal/repository"
	apperrors "github.com/spec-kit/fit-training-service/pkg/util"
)

// SessionService is the flow controller: it signs callers in and derives
// which screens and stages a session may reach.
type SessionService struct {
	store         *repository.TraineeStore
	tokenMgr      *auth.TokenManager
	adminStaffID  string
	adminPassword string
	logger        *zap.Logger
}

// NewSessionService builds the service.
func NewSessionService(cfg config.AuthConfig, store *repository.TraineeStore, logger *zap.Logger) *SessionService {
	return &SessionService{
		store:         store,
		tokenMgr:      auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		adminStaffID:  cfg.AdminStaffID,
		adminPassword: cfg.AdminPassword,
		logger:        logger,
	}
}

// LoginResult carries the signed-in session.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Subject   domain.SubjectType
	Trainee   *domain.Trainee
	Screen    flow.Screen
}

// Login authenticates by staff identifier. The reserved admin pair unlocks
// the admin surface; anyone else is looked up in the store. An unknown staff
// id is a blocking not-found: no record is created, the caller is directed to
// registration.
func (s *SessionService) Login(ctx context.Context, staffID, password string) (*LoginResult, error) {
	if staffID == s.adminStaffID {
		if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		token, exp, err := s.tokenMgr.GenerateToken(s.adminStaffID, domain.SubjectTypeAdmin)
		if err != nil {
			return nil, err
		}
		return &LoginResult{
			Token:     token,
			ExpiresAt: exp,
			Subject:   domain.SubjectTypeAdmin,
			Screen:    flow.ScreenAdminDashboard,
		}, nil
	}

	trainee, err := s.store.FindByStaffID(ctx, staffID)
	if err != nil {
		if errors.Is(err, repository.ErrTraineeNotFound) {
			return nil, apperrors.NewNotFound("trainee", map[string]any{"hint": "please register"})
		}
		return nil, err
	}
	if err := auth.ComparePassword(trainee.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(trainee.ID, domain.SubjectTypeTrainee)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:     token,
		ExpiresAt: exp,
		Subject:   domain.SubjectTypeTrainee,
		Trainee:   trainee,
		Screen:    flow.ScreenDashboard,
	}, nil
}

// Dashboard summarizes the session: current status, the derived stage table
// and the screens reachable from the dashboard.
type Dashboard struct {
	Status    domain.TraineeStatus
	Stages    domain.StageStates
	Permitted []flow.Screen
}

// DashboardFor derives the dashboard for one trainee. Nothing here is stored;
// the table is recomputed per call.
func (s *SessionService) DashboardFor(trainee *domain.Trainee) Dashboard {
	session := flow.Session{Authenticated: true, Status: trainee.Status}
	return Dashboard{
		Status:    trainee.Status,
		Stages:    domain.DeriveStages(trainee.Status),
		Permitted: flow.Permitted(flow.ScreenDashboard, session),
	}
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *SessionService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
