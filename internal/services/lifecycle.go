package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"visitordesk/internal/domain"
)

type visitorService struct {
	visitorRepo      domain.VisitorRepository
	logRepo          domain.LogRepository
	hostRepo         domain.SavedHostRepository
	savedVisitorRepo domain.SavedVisitorRepository
	mailer           domain.Mailer
	notifyDomain     string
	logger           *slog.Logger
	now              func() time.Time
	newID            func() string
}

// NewVisitorService creates the visitor lifecycle engine. The mailer is
// optional; when set together with notifyDomain, hosts are emailed on
// check-in. now and newID default to time.Now and uuid.NewString and exist
// for deterministic tests.
func NewVisitorService(
	visitorRepo domain.VisitorRepository,
	logRepo domain.LogRepository,
	hostRepo domain.SavedHostRepository,
	savedVisitorRepo domain.SavedVisitorRepository,
	mailer domain.Mailer,
	notifyDomain string,
	logger *slog.Logger,
	now func() time.Time,
	newID func() string,
) domain.VisitorService {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &visitorService{
		visitorRepo:      visitorRepo,
		logRepo:          logRepo,
		hostRepo:         hostRepo,
		savedVisitorRepo: savedVisitorRepo,
		mailer:           mailer,
		notifyDomain:     notifyDomain,
		logger:           logger,
		now:              now,
		newID:            newID,
	}
}

func requireFields(name, company, host string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(company) == "" {
		return fmt.Errorf("%w: company is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(host) == "" {
		return fmt.Errorf("%w: host is required", domain.ErrInvalidInput)
	}
	return nil
}

func (s *visitorService) Book(ctx context.Context, b domain.Booking) (*domain.Visitor, error) {
	if err := requireFields(b.Name, b.Company, b.Host); err != nil {
		return nil, err
	}
	lang := b.Language
	if lang == "" {
		lang = domain.LanguageSwedish
	}
	if !lang.Valid() {
		return nil, fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidInput, b.Language)
	}
	arrival := b.ExpectedArrival
	if arrival == nil {
		t := s.now()
		arrival = &t
	}

	v := &domain.Visitor{
		ID:              s.newID(),
		Name:            strings.TrimSpace(b.Name),
		Company:         strings.TrimSpace(b.Company),
		Host:            strings.TrimSpace(b.Host),
		Email:           strings.TrimSpace(b.Email),
		Phone:           strings.TrimSpace(b.Phone),
		PreBooked:       true,
		Status:          domain.StatusBooked,
		Language:        lang,
		ExpectedArrival: arrival,
	}
	if err := s.visitorRepo.Append(ctx, v); err != nil {
		return nil, fmt.Errorf("append visitor: %w", err)
	}
	s.learnDirectory(ctx, v)
	if err := s.appendLog(ctx, v, domain.ActionRegistered); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *visitorService) WalkIn(ctx context.Context, w domain.WalkIn) (*domain.Visitor, error) {
	if err := requireFields(w.Name, w.Company, w.Host); err != nil {
		return nil, err
	}
	lang := w.Language
	if lang == "" {
		lang = domain.LanguageSwedish
	}
	if !lang.Valid() {
		return nil, fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidInput, w.Language)
	}

	arrived := s.now()
	v := &domain.Visitor{
		ID:          s.newID(),
		Name:        strings.TrimSpace(w.Name),
		Company:     strings.TrimSpace(w.Company),
		Host:        strings.TrimSpace(w.Host),
		Email:       strings.TrimSpace(w.Email),
		Phone:       strings.TrimSpace(w.Phone),
		PreBooked:   false,
		Status:      domain.StatusCheckedIn,
		Language:    lang,
		CheckInTime: &arrived,
	}
	if err := s.visitorRepo.Append(ctx, v); err != nil {
		return nil, fmt.Errorf("append visitor: %w", err)
	}
	s.learnDirectory(ctx, v)
	if err := s.appendLog(ctx, v, domain.ActionCheckIn); err != nil {
		return nil, err
	}
	s.notifyHost(v)
	return v, nil
}

func (s *visitorService) Edit(ctx context.Context, id string, update domain.VisitorUpdate) (*domain.Visitor, error) {
	v, err := s.visitorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Status != domain.StatusBooked {
		return nil, fmt.Errorf("%w: visitor is %s, only booked visitors can be edited", domain.ErrConflict, v.Status)
	}
	update.Apply(v)
	if err := requireFields(v.Name, v.Company, v.Host); err != nil {
		return nil, err
	}
	if err := s.visitorRepo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("update visitor: %w", err)
	}
	return v, nil
}

func (s *visitorService) CheckIn(ctx context.Context, id string, overrides *domain.VisitorUpdate) (*domain.Visitor, error) {
	v, err := s.visitorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// No regression from checked-out and no duplicate check-in: only a
	// booked visitor can check in.
	if v.Status != domain.StatusBooked {
		return nil, fmt.Errorf("%w: visitor is already %s", domain.ErrConflict, v.Status)
	}
	if overrides != nil {
		overrides.Apply(v)
		if err := requireFields(v.Name, v.Company, v.Host); err != nil {
			return nil, err
		}
	}
	arrived := s.now()
	v.Status = domain.StatusCheckedIn
	v.CheckInTime = &arrived
	if err := s.visitorRepo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("update visitor: %w", err)
	}
	// The log entry snapshots the post-update visitor.
	if err := s.appendLog(ctx, v, domain.ActionCheckIn); err != nil {
		return nil, err
	}
	s.notifyHost(v)
	return v, nil
}

func (s *visitorService) CheckOut(ctx context.Context, id string) (*domain.Visitor, error) {
	v, err := s.visitorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Status != domain.StatusCheckedIn {
		return nil, fmt.Errorf("%w: visitor is %s, only checked-in visitors can check out", domain.ErrConflict, v.Status)
	}
	left := s.now()
	v.Status = domain.StatusCheckedOut
	v.CheckOutTime = &left
	if err := s.visitorRepo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("update visitor: %w", err)
	}
	if err := s.appendLog(ctx, v, domain.ActionCheckOut); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *visitorService) List(ctx context.Context) ([]*domain.Visitor, error) {
	visitors, err := s.visitorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	if visitors == nil {
		visitors = []*domain.Visitor{}
	}
	return visitors, nil
}

func (s *visitorService) Search(ctx context.Context, query string, status domain.VisitorStatus) ([]*domain.Visitor, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	visitors, err := s.visitorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	matches := []*domain.Visitor{}
	for _, v := range visitors {
		if v.Status != status {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(v.Name), needle) {
			continue
		}
		matches = append(matches, v)
	}
	return matches, nil
}

func (s *visitorService) AuditLog(ctx context.Context) ([]*domain.LogEntry, error) {
	entries, err := s.logRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	if entries == nil {
		entries = []*domain.LogEntry{}
	}
	return entries, nil
}

func (s *visitorService) appendLog(ctx context.Context, v *domain.Visitor, action domain.LogAction) error {
	entry := &domain.LogEntry{
		ID:          s.newID(),
		VisitorID:   v.ID,
		VisitorName: v.Name,
		Company:     v.Company,
		Host:        v.Host,
		Action:      action,
		Timestamp:   s.now(),
	}
	if err := s.logRepo.Prepend(ctx, entry); err != nil {
		return fmt.Errorf("append log entry: %w", err)
	}
	return nil
}

// learnDirectory adds the visitor's host and the visitor itself to the saved
// directories when no case-insensitive name match exists yet. Learning
// failures must not fail the booking; they are logged and dropped.
func (s *visitorService) learnDirectory(ctx context.Context, v *domain.Visitor) {
	hosts, err := s.hostRepo.List(ctx)
	if err != nil {
		s.logger.Warn("directory learning skipped", "err", err)
		return
	}
	known := false
	for _, h := range hosts {
		if strings.EqualFold(h.Name, v.Host) {
			known = true
			break
		}
	}
	if !known {
		if err := s.hostRepo.Append(ctx, &domain.SavedHost{ID: s.newID(), Name: v.Host}); err != nil {
			s.logger.Warn("saving learned host failed", "host", v.Host, "err", err)
		}
	}

	saved, err := s.savedVisitorRepo.List(ctx)
	if err != nil {
		s.logger.Warn("directory learning skipped", "err", err)
		return
	}
	for _, sv := range saved {
		if strings.EqualFold(sv.Name, v.Name) {
			return
		}
	}
	entry := &domain.SavedVisitor{
		ID:      s.newID(),
		Name:    v.Name,
		Company: v.Company,
		Email:   v.Email,
	}
	if err := s.savedVisitorRepo.Append(ctx, entry); err != nil {
		s.logger.Warn("saving learned visitor failed", "name", v.Name, "err", err)
	}
}

// notifyHost emails the host about an arrived visitor. The address is derived
// from the host name and the configured notification domain since the saved
// directory carries no addresses. Failures never surface to the kiosk.
func (s *visitorService) notifyHost(v *domain.Visitor) {
	if s.mailer == nil || s.notifyDomain == "" {
		return
	}
	to := hostAddress(v.Host, s.notifyDomain)
	subject := fmt.Sprintf("Your visitor %s has arrived", v.Name)
	text := fmt.Sprintf("%s from %s checked in at the front desk.", v.Name, v.Company)
	if err := s.mailer.Send(to, subject, "", text); err != nil {
		s.logger.Warn("host notification failed", "to", to, "err", err)
	}
}

// hostAddress turns "Erik Lund" at domain "acme.se" into "erik.lund@acme.se".
func hostAddress(hostName, domainName string) string {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(hostName)))
	return strings.Join(parts, ".") + "@" + domainName
}
