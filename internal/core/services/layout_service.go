package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/airvoucher/av_backend/internal/apperrors"
	"github.com/airvoucher/av_backend/internal/core/domain"
	portsrepo "github.com/airvoucher/av_backend/internal/core/ports/repositories"
	portssvc "github.com/airvoucher/av_backend/internal/core/ports/services"
	"github.com/airvoucher/av_backend/internal/session"
)

var navItems = map[domain.UserRole][]domain.NavItem{
	domain.RoleRetailer: {
		{Name: "Dashboard", Href: "/retailer", Icon: "home"},
		{Name: "Terminals", Href: "/retailer/terminals", Icon: "monitor"},
		{Name: "Account", Href: "/retailer/account", Icon: "user"},
	},
	domain.RoleAgent: {
		{Name: "Dashboard", Href: "/agent", Icon: "home"},
		{Name: "Retailers", Href: "/agent/retailers", Icon: "store"},
		{Name: "Commissions", Href: "/agent/commissions", Icon: "percent"},
	},
	domain.RoleAdmin: {
		{Name: "Dashboard", Href: "/admin", Icon: "home"},
		{Name: "Retailers", Href: "/admin/retailers", Icon: "store"},
		{Name: "Agents", Href: "/admin/agents", Icon: "users"},
		{Name: "Reports", Href: "/admin/reports", Icon: "bar-chart"},
	},
}

type layoutService struct {
	BaseService
	retailerRepo portsrepo.RetailerReader
	userRepo     portsrepo.UserReader
	sub          *session.Subscription

	mu    sync.RWMutex
	names map[string]string
}

// NewLayoutService creates the layout service. When hub is non-nil the
// display-name cache is evicted on sign-out and session updates; call Close
// to release the subscription.
func NewLayoutService(retailerRepo portsrepo.RetailerReader, userRepo portsrepo.UserReader, hub *session.Hub) portssvc.LayoutSvcFacade {
	s := &layoutService{
		retailerRepo: retailerRepo,
		userRepo:     userRepo,
		names:        map[string]string{},
	}
	if hub != nil {
		s.sub = hub.Subscribe(s.onSessionEvent)
	}
	return s
}

func (s *layoutService) onSessionEvent(e session.Event) {
	if e.Session == nil {
		return
	}
	if e.Kind == session.SignedOut {
		s.mu.Lock()
		delete(s.names, e.Session.UserID)
		s.mu.Unlock()
	}
}

func (s *layoutService) Close() {
	s.sub.Unsubscribe()
}

func (s *layoutService) GetLayout(ctx context.Context, sess *domain.Session) (*domain.Layout, error) {
	if sess == nil {
		return nil, apperrors.NewUnauthorizedError("no active session")
	}
	items, ok := navItems[sess.Role]
	if !ok {
		return nil, apperrors.NewForbiddenError("no layout for role")
	}

	name, err := s.displayName(ctx, sess)
	if err != nil {
		return nil, err
	}

	out := make([]domain.NavItem, len(items))
	copy(out, items)
	return &domain.Layout{Role: sess.Role, DisplayName: name, Email: sess.Email, NavItems: out}, nil
}

// displayName is the retailer name for retailers and the profile name
// otherwise, falling back to the email.
func (s *layoutService) displayName(ctx context.Context, sess *domain.Session) (string, error) {
	s.mu.RLock()
	name, ok := s.names[sess.UserID]
	s.mu.RUnlock()
	if ok {
		return name, nil
	}

	name = sess.Email
	switch sess.Role {
	case domain.RoleRetailer:
		retailer, err := s.retailerRepo.FindRetailerByUserID(ctx, sess.UserID)
		switch {
		case err == nil:
			name = retailer.Name
		case errors.Is(err, apperrors.ErrNotFound):
			s.LogWarn(ctx, "Retailer profile missing for layout", slog.String("user_id", sess.UserID))
		default:
			s.LogError(ctx, err, "Failed to load retailer for layout")
			return "", err
		}
	default:
		user, err := s.userRepo.FindUserByID(ctx, sess.UserID)
		switch {
		case err == nil && user.FullName != "":
			name = user.FullName
		case err != nil && !errors.Is(err, apperrors.ErrNotFound):
			s.LogError(ctx, err, "Failed to load user for layout")
			return "", err
		}
	}

	s.mu.Lock()
	s.names[sess.UserID] = name
	s.mu.Unlock()
	return name, nil
}
