package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"visitordesk/internal/domain"
)

type registryService struct {
	hostRepo         domain.SavedHostRepository
	savedVisitorRepo domain.SavedVisitorRepository
	newID            func() string
}

// NewRegistryService creates the admin management service for the saved
// directories. newID defaults to uuid.NewString.
func NewRegistryService(hostRepo domain.SavedHostRepository, savedVisitorRepo domain.SavedVisitorRepository, newID func() string) domain.RegistryService {
	if newID == nil {
		newID = uuid.NewString
	}
	return &registryService{
		hostRepo:         hostRepo,
		savedVisitorRepo: savedVisitorRepo,
		newID:            newID,
	}
}

func (s *registryService) AddHost(ctx context.Context, name string) (*domain.SavedHost, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	hosts, err := s.hostRepo.List(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("list saved hosts: %w", err)
	}
	for _, h := range hosts {
		if strings.EqualFold(h.Name, name) {
			return h, false, nil
		}
	}
	h := &domain.SavedHost{ID: s.newID(), Name: name}
	if err := s.hostRepo.Append(ctx, h); err != nil {
		return nil, false, fmt.Errorf("append saved host: %w", err)
	}
	return h, true, nil
}

func (s *registryService) UpdateHost(ctx context.Context, id string, update domain.SavedHostUpdate) (*domain.SavedHost, error) {
	hosts, err := s.hostRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list saved hosts: %w", err)
	}
	var target *domain.SavedHost
	for _, h := range hosts {
		if h.ID == id {
			target = h
			break
		}
	}
	if target == nil {
		return nil, domain.ErrNotFound
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
		}
		for _, h := range hosts {
			if h.ID != id && strings.EqualFold(h.Name, name) {
				return nil, fmt.Errorf("%w: host %q already exists", domain.ErrConflict, h.Name)
			}
		}
		target.Name = name
	}
	if err := s.hostRepo.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("update saved host: %w", err)
	}
	return target, nil
}

func (s *registryService) DeleteHost(ctx context.Context, id string) error {
	return s.hostRepo.Delete(ctx, id)
}

func (s *registryService) AddVisitor(ctx context.Context, in domain.SavedVisitorInput) (*domain.SavedVisitor, error) {
	name := strings.TrimSpace(in.Name)
	company := strings.TrimSpace(in.Company)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if company == "" {
		return nil, fmt.Errorf("%w: company is required", domain.ErrInvalidInput)
	}
	visitors, err := s.savedVisitorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list saved visitors: %w", err)
	}
	for _, sv := range visitors {
		if strings.EqualFold(sv.Name, name) {
			// Overwrite semantics: the newer record replaces the older one,
			// keeping its id.
			sv.Name = name
			sv.Company = company
			sv.Email = strings.TrimSpace(in.Email)
			if err := s.savedVisitorRepo.Update(ctx, sv); err != nil {
				return nil, fmt.Errorf("update saved visitor: %w", err)
			}
			return sv, nil
		}
	}
	sv := &domain.SavedVisitor{
		ID:      s.newID(),
		Name:    name,
		Company: company,
		Email:   strings.TrimSpace(in.Email),
	}
	if err := s.savedVisitorRepo.Append(ctx, sv); err != nil {
		return nil, fmt.Errorf("append saved visitor: %w", err)
	}
	return sv, nil
}

func (s *registryService) UpdateVisitor(ctx context.Context, id string, update domain.SavedVisitorUpdate) (*domain.SavedVisitor, error) {
	visitors, err := s.savedVisitorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list saved visitors: %w", err)
	}
	var target *domain.SavedVisitor
	for _, sv := range visitors {
		if sv.ID == id {
			target = sv
			break
		}
	}
	if target == nil {
		return nil, domain.ErrNotFound
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
		}
		for _, sv := range visitors {
			if sv.ID != id && strings.EqualFold(sv.Name, name) {
				return nil, fmt.Errorf("%w: visitor %q already exists", domain.ErrConflict, sv.Name)
			}
		}
		target.Name = name
	}
	if update.Company != nil {
		company := strings.TrimSpace(*update.Company)
		if company == "" {
			return nil, fmt.Errorf("%w: company is required", domain.ErrInvalidInput)
		}
		target.Company = company
	}
	if update.Email != nil {
		target.Email = strings.TrimSpace(*update.Email)
	}
	if err := s.savedVisitorRepo.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("update saved visitor: %w", err)
	}
	return target, nil
}

func (s *registryService) DeleteVisitor(ctx context.Context, id string) error {
	return s.savedVisitorRepo.Delete(ctx, id)
}
