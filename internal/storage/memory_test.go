package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestMemoryCreateCertificationDefaults(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	cert, err := m.CreateCertification(ctx, CertificationParams{
		Company:      strPtr("Acme"),
		Title:        strPtr("X"),
		CertImageURL: strPtr("http://img"),
	})
	require.NoError(t, err)

	assert.Equal(t, "1", cert.ID)
	assert.Equal(t, "Acme", cert.Company)
	assert.Equal(t, "fas fa-certificate", cert.Icon)
	assert.Equal(t, "bg-blue-500", cert.CardColor)
	assert.Equal(t, "bg-blue-600", cert.ButtonColor)
	assert.Equal(t, "text-white", cert.TitleColor)
	assert.Equal(t, "text-white", cert.TextColor)
	assert.Equal(t, 0, cert.DisplayOrder)
	assert.Nil(t, cert.CredentialURL)
	assert.False(t, cert.CreatedAt.IsZero())
	assert.Equal(t, cert.CreatedAt, cert.UpdatedAt)
}

func TestMemoryCreateHackathonDefaults(t *testing.T) {
	m := NewMemory()

	hack, err := m.CreateHackathon(context.Background(), HackathonParams{
		Name: strPtr("HackZurich"),
	})
	require.NoError(t, err)

	assert.Equal(t, "left", hack.Side)
	assert.Equal(t, 0, hack.Delay)
	assert.Equal(t, 0, hack.DisplayOrder)
	assert.Nil(t, hack.CertificateURL)
}

func TestMemoryCreateProjectDefaults(t *testing.T) {
	m := NewMemory()

	project, err := m.CreateProject(context.Background(), ProjectParams{
		Title: strPtr("Portfolio"),
	})
	require.NoError(t, err)

	assert.Equal(t, "blue", project.PrimaryColor)
	assert.NotNil(t, project.Technologies)
	assert.Empty(t, project.Technologies)
	assert.Nil(t, project.LiveURL)
	assert.Equal(t, 0, project.DisplayOrder)
}

func TestMemoryGetAllSortedByDisplayOrder(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	// Insertion order deliberately disagrees with display order; the two
	// records sharing an order value must keep insertion order.
	_, err := m.CreateProject(ctx, ProjectParams{Title: strPtr("third"), DisplayOrder: intPtr(2)})
	require.NoError(t, err)
	_, err = m.CreateProject(ctx, ProjectParams{Title: strPtr("first"), DisplayOrder: intPtr(1)})
	require.NoError(t, err)
	_, err = m.CreateProject(ctx, ProjectParams{Title: strPtr("second"), DisplayOrder: intPtr(1)})
	require.NoError(t, err)

	projects, err := m.GetAllProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "first", projects[0].Title)
	assert.Equal(t, "second", projects[1].Title)
	assert.Equal(t, "third", projects[2].Title)
}

func TestMemoryGetAllEmpty(t *testing.T) {
	m := NewMemory()

	certs, err := m.GetAllCertifications(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, certs)
	assert.Empty(t, certs)
}

func TestMemoryUpdateNonexistent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	existing, err := m.CreateHackathon(ctx, HackathonParams{Name: strPtr("keep me")})
	require.NoError(t, err)

	hack, err := m.UpdateHackathon(ctx, "999", HackathonParams{Name: strPtr("nope")})
	require.NoError(t, err)
	assert.Nil(t, hack)

	// The miss must not have touched other records.
	unchanged, err := m.GetHackathon(ctx, existing.ID)
	require.NoError(t, err)
	require.NotNil(t, unchanged)
	assert.Equal(t, "keep me", unchanged.Name)
}

func TestMemoryUpdateMergesFields(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	cert, err := m.CreateCertification(ctx, CertificationParams{
		Company:      strPtr("Acme"),
		Title:        strPtr("Old"),
		CertImageURL: strPtr("http://img"),
	})
	require.NoError(t, err)

	updated, err := m.UpdateCertification(ctx, cert.ID, CertificationParams{
		Title: strPtr("New"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, "http://img", updated.CertImageURL)
	assert.True(t, updated.UpdatedAt.After(cert.UpdatedAt) || updated.UpdatedAt.Equal(cert.UpdatedAt))
}

func TestMemoryDeleteTwice(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	cert, err := m.CreateCertification(ctx, CertificationParams{CertImageURL: strPtr("http://img")})
	require.NoError(t, err)

	deleted, err := m.DeleteCertification(ctx, cert.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = m.DeleteCertification(ctx, cert.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryIDsNotReused(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first, err := m.CreateProject(ctx, ProjectParams{Title: strPtr("a")})
	require.NoError(t, err)

	_, err = m.DeleteProject(ctx, first.ID)
	require.NoError(t, err)

	second, err := m.CreateProject(ctx, ProjectParams{Title: strPtr("b")})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestMemoryAboutUpsert(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	about, err := m.GetAbout(ctx)
	require.NoError(t, err)
	assert.Nil(t, about)

	params := AboutParams{
		Bio:       "hello",
		Education: "school",
		Languages: "en, de",
		Skills:    []string{"go"},
		Tools:     []string{"vim"},
	}

	first, err := m.UpsertAbout(ctx, params)
	require.NoError(t, err)
	require.NotNil(t, first)

	time.Sleep(time.Millisecond)

	second, err := m.UpsertAbout(ctx, params)
	require.NoError(t, err)
	require.NotNil(t, second)

	// Idempotent on identical input, except for the update timestamp.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Bio, second.Bio)
	assert.Equal(t, first.Skills, second.Skills)
	assert.Equal(t, first.Tools, second.Tools)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestMemoryUserLookup(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	created, err := m.CreateUser(ctx, "admin", "$2a$10$hash")
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)

	tests := []struct {
		name     string
		username string
		found    bool
	}{
		{name: "exact match", username: "admin", found: true},
		{name: "trimmed match", username: "  admin  ", found: true},
		{name: "case sensitive", username: "Admin", found: false},
		{name: "unknown", username: "nobody", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := m.GetUserByUsername(ctx, tt.username)
			require.NoError(t, err)
			if tt.found {
				require.NotNil(t, user)
				assert.Equal(t, "admin", user.Username)
				assert.Equal(t, "$2a$10$hash", user.Password)
			} else {
				assert.Nil(t, user)
			}
		})
	}
}
