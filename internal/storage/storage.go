package storage

import (
	"context"
	"errors"
)

// ErrUnavailable wraps failures to reach the persistent backend. Handlers map
// it to a 500. Absence of a record is never an error: lookups return a nil
// pointer and deletes return false instead.
var ErrUnavailable = errors.New("storage unavailable")

// Storage is the contract both backends implement. List operations return
// records sorted ascending by display order and never fail on an empty store.
type Storage interface {
	// Users
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, username, hashedPassword string) (*User, error)

	// About (singleton, upsert only)
	GetAbout(ctx context.Context) (*About, error)
	UpsertAbout(ctx context.Context, params AboutParams) (*About, error)

	// Certifications
	GetAllCertifications(ctx context.Context) ([]Certification, error)
	GetCertification(ctx context.Context, id string) (*Certification, error)
	CreateCertification(ctx context.Context, params CertificationParams) (*Certification, error)
	UpdateCertification(ctx context.Context, id string, params CertificationParams) (*Certification, error)
	DeleteCertification(ctx context.Context, id string) (bool, error)

	// Hackathons
	GetAllHackathons(ctx context.Context) ([]Hackathon, error)
	GetHackathon(ctx context.Context, id string) (*Hackathon, error)
	CreateHackathon(ctx context.Context, params HackathonParams) (*Hackathon, error)
	UpdateHackathon(ctx context.Context, id string, params HackathonParams) (*Hackathon, error)
	DeleteHackathon(ctx context.Context, id string) (bool, error)

	// Projects
	GetAllProjects(ctx context.Context) ([]Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	CreateProject(ctx context.Context, params ProjectParams) (*Project, error)
	UpdateProject(ctx context.Context, id string, params ProjectParams) (*Project, error)
	DeleteProject(ctx context.Context, id string) (bool, error)

	Close() error
}
