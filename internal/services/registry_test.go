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

func newRegistryFixture(t *testing.T) domain.RegistryService {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := blobstore.NewMemoryStore()
	hostRepo := blobrepo.NewSavedHostRepository(ctx, store, logger)
	savedVisitorRepo := blobrepo.NewSavedVisitorRepository(ctx, store, logger)
	return NewRegistryService(hostRepo, savedVisitorRepo, seqIDs("reg"))
}

func TestAddHost_IdempotentOnCaseInsensitiveCollision(t *testing.T) {
	ctx := context.Background()
	svc := newRegistryFixture(t)

	first, created, err := svc.AddHost(ctx, "Erik Lund")
	require.NoError(t, err)
	require.True(t, created)

	again, created, err := svc.AddHost(ctx, "erik lund")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, again.ID)
	require.Equal(t, "Erik Lund", again.Name)

	_, _, err = svc.AddHost(ctx, "  ")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateHost_RenameAndCollision(t *testing.T) {
	ctx := context.Background()
	svc := newRegistryFixture(t)

	erik, _, err := svc.AddHost(ctx, "Erik Lund")
	require.NoError(t, err)
	_, _, err = svc.AddHost(ctx, "Maria Berg")
	require.NoError(t, err)

	renamed := "Erik Lundqvist"
	got, err := svc.UpdateHost(ctx, erik.ID, domain.SavedHostUpdate{Name: &renamed})
	require.NoError(t, err)
	require.Equal(t, renamed, got.Name)

	collision := "maria berg"
	_, err = svc.UpdateHost(ctx, erik.ID, domain.SavedHostUpdate{Name: &collision})
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = svc.UpdateHost(ctx, "missing", domain.SavedHostUpdate{Name: &renamed})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddVisitor_OverwritesOnNameCollision(t *testing.T) {
	ctx := context.Background()
	svc := newRegistryFixture(t)

	first, err := svc.AddVisitor(ctx, domain.SavedVisitorInput{Name: "Anna Svensson", Company: "Acme"})
	require.NoError(t, err)

	// Same name, different case: the newer record replaces the older one.
	replaced, err := svc.AddVisitor(ctx, domain.SavedVisitorInput{Name: "ANNA SVENSSON", Company: "Globex", Email: "anna@globex.se"})
	require.NoError(t, err)
	require.Equal(t, first.ID, replaced.ID)
	require.Equal(t, "ANNA SVENSSON", replaced.Name)
	require.Equal(t, "Globex", replaced.Company)
	require.Equal(t, "anna@globex.se", replaced.Email)

	_, err = svc.AddVisitor(ctx, domain.SavedVisitorInput{Name: "Anna"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateVisitor_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newRegistryFixture(t)

	anna, err := svc.AddVisitor(ctx, domain.SavedVisitorInput{Name: "Anna", Company: "Acme", Email: "anna@acme.se"})
	require.NoError(t, err)

	company := "Globex"
	got, err := svc.UpdateVisitor(ctx, anna.ID, domain.SavedVisitorUpdate{Company: &company})
	require.NoError(t, err)
	require.Equal(t, "Globex", got.Company)
	require.Equal(t, "Anna", got.Name)
	require.Equal(t, "anna@acme.se", got.Email)

	blank := ""
	_, err = svc.UpdateVisitor(ctx, anna.ID, domain.SavedVisitorUpdate{Name: &blank})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_UnknownIDsAreReported(t *testing.T) {
	ctx := context.Background()
	svc := newRegistryFixture(t)

	require.ErrorIs(t, svc.DeleteHost(ctx, "missing"), domain.ErrNotFound)
	require.ErrorIs(t, svc.DeleteVisitor(ctx, "missing"), domain.ErrNotFound)
}
