package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/airvoucher/av_backend/internal/apperrors"
	"github.com/airvoucher/av_backend/internal/core/domain"
	portsrepo "github.com/airvoucher/av_backend/internal/core/ports/repositories"
	portssvc "github.com/airvoucher/av_backend/internal/core/ports/services"
	"github.com/airvoucher/av_backend/internal/dto"
	"github.com/airvoucher/av_backend/internal/utils"
	"github.com/google/uuid"
)

const generatedPasswordLength = 12

const (
	msgMissingFields         = "Missing required fields"
	msgRetailerNotAuthorized = "Not authorized to manage this retailer"
	msgTerminalNotAuthorized = "Not authorized to manage this terminal"
	msgTerminalNotFound      = "Terminal not found"
)

type terminalService struct {
	BaseService
	terminalRepo portsrepo.TerminalRepositoryWithTx
	retailerRepo portsrepo.RetailerReader
	userRepo     portsrepo.UserRepositoryFacade
	now          func() time.Time
}

// NewTerminalService creates a new terminal service.
func NewTerminalService(
	terminalRepo portsrepo.TerminalRepositoryWithTx,
	retailerRepo portsrepo.RetailerReader,
	userRepo portsrepo.UserRepositoryFacade,
) portssvc.TerminalSvcFacade {
	return &terminalService{
		terminalRepo: terminalRepo,
		retailerRepo: retailerRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

func (s *terminalService) ListTerminals(ctx context.Context, userID string) ([]domain.Terminal, error) {
	retailer, err := s.retailerRepo.FindRetailerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Retailer profile not found")
		}
		s.LogError(ctx, err, "Failed to find retailer for terminal list", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to find retailer: %w", err)
	}

	terminals, err := s.terminalRepo.ListTerminalsByRetailer(ctx, retailer.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list terminals", slog.String("retailer_id", retailer.ID))
		return nil, fmt.Errorf("failed to list terminals: %w", err)
	}
	return terminals, nil
}

// ownedRetailer loads a retailer and checks it belongs to userID. A missing
// retailer is reported as forbidden so callers cannot probe for IDs.
func (s *terminalService) ownedRetailer(ctx context.Context, userID, retailerID string) (*domain.Retailer, error) {
	retailer, err := s.retailerRepo.FindRetailerByID(ctx, retailerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewForbiddenError(msgRetailerNotAuthorized)
		}
		return nil, fmt.Errorf("failed to find retailer: %w", err)
	}
	if !retailer.IsOwnedBy(userID) {
		return nil, apperrors.NewForbiddenError(msgRetailerNotAuthorized)
	}
	return retailer, nil
}

// ownedTerminal loads a terminal and checks its retailer belongs to userID.
func (s *terminalService) ownedTerminal(ctx context.Context, userID, terminalID string) (*domain.Terminal, error) {
	terminal, err := s.terminalRepo.FindTerminalByID(ctx, terminalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgTerminalNotFound)
		}
		return nil, fmt.Errorf("failed to find terminal: %w", err)
	}

	retailer, err := s.retailerRepo.FindRetailerByID(ctx, terminal.RetailerID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find retailer: %w", err)
	}
	if err != nil || !retailer.IsOwnedBy(userID) {
		s.LogWarn(ctx, "Terminal access denied",
			slog.String("user_id", userID), slog.String("terminal_id", terminalID))
		return nil, apperrors.NewForbiddenError(msgTerminalNotAuthorized)
	}
	return terminal, nil
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func (s *terminalService) CreateTerminal(ctx context.Context, userID string, req dto.CreateTerminalRequest) (*domain.Terminal, string, error) {
	retailerID := strings.TrimSpace(req.RetailerID)
	name := strings.TrimSpace(req.Name)
	if userID == "" {
		return nil, "", apperrors.NewUnauthorizedError("no active session")
	}
	if retailerID == "" || name == "" {
		return nil, "", apperrors.NewValidationFailedError(msgMissingFields)
	}

	email := optional(req.Email)
	password := optional(req.Password)
	if email == "" && (password != "" || req.AutoGeneratePassword) {
		return nil, "", apperrors.NewValidationFailedError("email is required to create a terminal login")
	}
	if email != "" && password == "" && !req.AutoGeneratePassword {
		return nil, "", apperrors.NewValidationFailedError("password is required unless autoGeneratePassword is set")
	}

	if _, err := s.ownedRetailer(ctx, userID, retailerID); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			s.LogWarn(ctx, "Terminal creation denied", slog.String("user_id", userID), slog.String("retailer_id", retailerID))
		} else {
			s.LogError(ctx, err, "Failed to verify retailer ownership", slog.String("retailer_id", retailerID))
		}
		return nil, "", err
	}

	now := s.now().UTC()
	terminal := domain.Terminal{
		ID:          uuid.NewString(),
		RetailerID:  retailerID,
		Name:        name,
		Status:      domain.TerminalActive,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if contact := optional(req.ContactPerson); contact != "" {
		terminal.ContactPerson = &contact
	}

	if email == "" {
		if err := s.terminalRepo.SaveTerminal(ctx, terminal); err != nil {
			s.LogError(ctx, err, "Failed to create terminal", slog.String("retailer_id", retailerID))
			return nil, "", apperrors.NewAppError(http.StatusInternalServerError, "Failed to create terminal", err)
		}
		s.LogInfo(ctx, "Terminal created", slog.String("terminal_id", terminal.ID), slog.String("retailer_id", retailerID))
		return &terminal, "", nil
	}

	generated := ""
	if req.AutoGeneratePassword {
		pw, err := utils.GeneratePassword(generatedPasswordLength)
		if err != nil {
			return nil, "", fmt.Errorf("failed to generate terminal password: %w", err)
		}
		password, generated = pw, pw
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash terminal password: %w", err)
	}

	profile := domain.UserProfile{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     optional(req.ContactPerson),
		Role:         domain.RoleTerminal,
		PasswordHash: &hash,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if profile.FullName == "" {
		profile.FullName = name
	}
	terminal.UserProfileID = &profile.ID

	if err := s.createWithLogin(ctx, terminal, profile); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, "", apperrors.NewConflictError("a user with this email already exists")
		}
		s.LogError(ctx, err, "Failed to create terminal", slog.String("retailer_id", retailerID))
		return nil, "", apperrors.NewAppError(http.StatusInternalServerError, "Failed to create terminal", err)
	}

	s.LogInfo(ctx, "Terminal created with login",
		slog.String("terminal_id", terminal.ID),
		slog.String("retailer_id", retailerID),
		slog.Bool("password_generated", generated != ""))
	return &terminal, generated, nil
}

func (s *terminalService) createWithLogin(ctx context.Context, terminal domain.Terminal, profile domain.UserProfile) (err error) {
	tx, err := s.terminalRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := s.terminalRepo.Rollback(ctx, tx); rbErr != nil {
				s.LogError(ctx, rbErr, "Failed to rollback terminal creation")
			}
		}
	}()

	if err = s.userRepo.SaveUserInTx(ctx, tx, profile); err != nil {
		return err
	}
	if err = s.terminalRepo.SaveTerminalInTx(ctx, tx, terminal); err != nil {
		return err
	}
	return s.terminalRepo.Commit(ctx, tx)
}

func (s *terminalService) ToggleTerminalStatus(ctx context.Context, userID, terminalID string, status domain.TerminalStatus) (*domain.Terminal, error) {
	if strings.TrimSpace(terminalID) == "" {
		return nil, apperrors.NewValidationFailedError(msgMissingFields)
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationFailedError("Invalid status. Must be 'active' or 'inactive'")
	}

	if _, err := s.ownedTerminal(ctx, userID, terminalID); err != nil {
		return nil, err
	}

	updated, err := s.terminalRepo.UpdateTerminalStatus(ctx, terminalID, status, s.now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgTerminalNotFound)
		}
		s.LogError(ctx, err, "Failed to update terminal status", slog.String("terminal_id", terminalID))
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "Failed to update terminal status", err)
	}

	s.LogInfo(ctx, "Terminal status updated", slog.String("terminal_id", terminalID), slog.String("status", string(status)))
	return updated, nil
}

func (s *terminalService) DeleteTerminal(ctx context.Context, userID, terminalID string) error {
	if strings.TrimSpace(terminalID) == "" {
		return apperrors.NewValidationFailedError(msgMissingFields)
	}

	terminal, err := s.ownedTerminal(ctx, userID, terminalID)
	if err != nil {
		return err
	}
	if !terminal.CanDelete() {
		return apperrors.NewAppError(http.StatusConflict, "Cannot delete a terminal with sales history", apperrors.ErrTerminalHasSales)
	}

	if err := s.terminalRepo.DeleteTerminal(ctx, terminalID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTerminalHasSales):
			// A sale landed between the check and the delete.
			return apperrors.NewAppError(http.StatusConflict, "Cannot delete a terminal with sales history", err)
		case errors.Is(err, apperrors.ErrNotFound):
			return apperrors.NewNotFoundError(msgTerminalNotFound)
		}
		s.LogError(ctx, err, "Failed to delete terminal", slog.String("terminal_id", terminalID))
		return apperrors.NewAppError(http.StatusInternalServerError, "Failed to delete terminal", err)
	}

	s.LogInfo(ctx, "Terminal deleted", slog.String("terminal_id", terminalID))
	return nil
}
