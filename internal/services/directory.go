package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"visitordesk/internal/domain"
)

type directoryService struct {
	hostRepo         domain.SavedHostRepository
	savedVisitorRepo domain.SavedVisitorRepository
	collator         *collate.Collator
}

// NewDirectoryService creates the read-only directory projections. Sorting
// uses Swedish collation so å, ä and ö order after z as the front desk
// expects.
func NewDirectoryService(hostRepo domain.SavedHostRepository, savedVisitorRepo domain.SavedVisitorRepository) domain.DirectoryService {
	return &directoryService{
		hostRepo:         hostRepo,
		savedVisitorRepo: savedVisitorRepo,
		collator:         collate.New(language.Swedish),
	}
}

func (s *directoryService) KnownHosts(ctx context.Context) ([]*domain.SavedHost, error) {
	hosts, err := s.hostRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list saved hosts: %w", err)
	}
	sort.SliceStable(hosts, func(i, j int) bool {
		return s.collator.CompareString(hosts[i].Name, hosts[j].Name) < 0
	})
	if hosts == nil {
		hosts = []*domain.SavedHost{}
	}
	return hosts, nil
}

func (s *directoryService) KnownVisitors(ctx context.Context) ([]*domain.SavedVisitor, error) {
	visitors, err := s.savedVisitorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list saved visitors: %w", err)
	}
	sort.SliceStable(visitors, func(i, j int) bool {
		return s.collator.CompareString(visitors[i].Name, visitors[j].Name) < 0
	})
	if visitors == nil {
		visitors = []*domain.SavedVisitor{}
	}
	return visitors, nil
}

func (s *directoryService) Autofill(ctx context.Context, draft domain.VisitorDraft) (domain.VisitorDraft, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return draft, nil
	}
	visitors, err := s.savedVisitorRepo.List(ctx)
	if err != nil {
		return draft, fmt.Errorf("list saved visitors: %w", err)
	}
	for _, sv := range visitors {
		if !strings.EqualFold(sv.Name, name) {
			continue
		}
		// Fill blanks only; user-typed values win.
		if draft.Company == "" {
			draft.Company = sv.Company
		}
		if draft.Email == "" {
			draft.Email = sv.Email
		}
		break
	}
	return draft, nil
}
