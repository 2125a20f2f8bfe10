package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"visitordesk/internal/blobstore"
	"visitordesk/internal/domain"
	blobrepo "visitordesk/internal/repository/blob"
)

func newDirectoryFixture(t *testing.T) (domain.DirectoryService, domain.SavedHostRepository, domain.SavedVisitorRepository) {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := blobstore.NewMemoryStore()
	hostRepo := blobrepo.NewSavedHostRepository(ctx, store, logger)
	savedVisitorRepo := blobrepo.NewSavedVisitorRepository(ctx, store, logger)
	return NewDirectoryService(hostRepo, savedVisitorRepo), hostRepo, savedVisitorRepo
}

func TestKnownHosts_SwedishAlphabeticalOrder(t *testing.T) {
	ctx := context.Background()
	svc, hostRepo, _ := newDirectoryFixture(t)

	// Deliberately shuffled; å, ä and ö collate after z in Swedish.
	for i, name := range []string{"Örjan Ek", "Anna Berg", "Åsa Lind", "Zorn Vik", "Bo Dahl"} {
		require.NoError(t, hostRepo.Append(ctx, &domain.SavedHost{ID: string(rune('a' + i)), Name: name}))
	}

	hosts, err := svc.KnownHosts(ctx)
	require.NoError(t, err)
	names := make([]string, len(hosts))
	for i, h := range hosts {
		names[i] = h.Name
	}
	require.Equal(t, []string{"Anna Berg", "Bo Dahl", "Zorn Vik", "Åsa Lind", "Örjan Ek"}, names)
}

func TestKnownVisitors_SortedAndEmptyIsNotNil(t *testing.T) {
	ctx := context.Background()
	svc, _, savedVisitorRepo := newDirectoryFixture(t)

	empty, err := svc.KnownVisitors(ctx)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	require.NoError(t, savedVisitorRepo.Append(ctx, &domain.SavedVisitor{ID: "1", Name: "Maria", Company: "Acme"}))
	require.NoError(t, savedVisitorRepo.Append(ctx, &domain.SavedVisitor{ID: "2", Name: "Bo", Company: "Initech"}))

	visitors, err := svc.KnownVisitors(ctx)
	require.NoError(t, err)
	require.Equal(t, "Bo", visitors[0].Name)
	require.Equal(t, "Maria", visitors[1].Name)
}

func TestAutofill_FillsOnlyEmptyFields(t *testing.T) {
	ctx := context.Background()
	svc, _, savedVisitorRepo := newDirectoryFixture(t)
	require.NoError(t, savedVisitorRepo.Append(ctx, &domain.SavedVisitor{
		ID: "sv-1", Name: "Anna Svensson", Company: "Acme", Email: "anna@acme.se",
	}))

	// Match is case-insensitive; empty fields are filled.
	draft, err := svc.Autofill(ctx, domain.VisitorDraft{Name: "anna svensson"})
	require.NoError(t, err)
	require.Equal(t, "Acme", draft.Company)
	require.Equal(t, "anna@acme.se", draft.Email)

	// User-typed values are never overwritten.
	draft, err = svc.Autofill(ctx, domain.VisitorDraft{Name: "Anna Svensson", Company: "Globex"})
	require.NoError(t, err)
	require.Equal(t, "Globex", draft.Company)
	require.Equal(t, "anna@acme.se", draft.Email)

	// Unknown names leave the draft untouched.
	draft, err = svc.Autofill(ctx, domain.VisitorDraft{Name: "Nobody"})
	require.NoError(t, err)
	require.Empty(t, draft.Company)
}
