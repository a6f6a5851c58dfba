package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	surrealdb "github.com/surrealdb/surrealdb.go"
)

var _ Storage = (*Surreal)(nil)

// SurrealConfig holds the connection settings for the SurrealDB backend.
type SurrealConfig struct {
	// URL is the websocket endpoint, e.g. "ws://localhost:8000/rpc".
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

// Surreal stores entities as documents in SurrealDB. The websocket connection
// is established lazily on first use and reused for the lifetime of the
// process; sorting and filtering are pushed down into SurrealQL.
type Surreal struct {
	cfg SurrealConfig

	mu sync.Mutex
	db *surrealdb.DB
}

func NewSurreal(cfg SurrealConfig) *Surreal {
	return &Surreal{cfg: cfg}
}

// conn returns the cached connection, dialing on first use. A failed dial is
// not cached so a later request can retry once the database is reachable.
func (s *Surreal) conn() (*surrealdb.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db, nil
	}

	db, err := surrealdb.New(s.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if _, err := db.Signin(map[string]any{"user": s.cfg.Username, "pass": s.cfg.Password}); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: signin: %v", ErrUnavailable, err)
	}
	if _, err := db.Use(s.cfg.Namespace, s.cfg.Database); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: use %s/%s: %v", ErrUnavailable, s.cfg.Namespace, s.cfg.Database, err)
	}

	log.Info("connected to surrealdb", "url", s.cfg.URL, "ns", s.cfg.Namespace, "db", s.cfg.Database)
	s.db = db
	return db, nil
}

func (s *Surreal) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		s.db.Close()
		s.db = nil
	}
	return nil
}

const (
	tableUser          = "user"
	tableAbout         = "about"
	tableCertification = "certification"
	tableHackathon     = "hackathon"
	tableProject       = "project"
)

// thing builds a SurrealDB record pointer from a table and a bare id.
func thing(table, id string) string {
	return table + ":" + id
}

// bareID strips the table prefix from a SurrealDB record id so the API only
// ever exposes a plain id string.
func bareID(id string) string {
	if _, rest, ok := strings.Cut(id, ":"); ok {
		return rest
	}
	return id
}

// decodeRecord maps a raw SurrealDB document onto an entity struct via a JSON
// round trip, normalizing the record id at the storage exit boundary.
func decodeRecord[T any](raw any) (*T, error) {
	record, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected record shape %T", raw)
	}
	if id, ok := record["id"].(string); ok {
		record["id"] = bareID(id)
	}
	buf, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var entity T
	if err := json.Unmarshal(buf, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// queryResult unwraps the first result set of a SurrealQL response.
func queryResult(raw any) ([]any, error) {
	sets, ok := raw.([]any)
	if !ok || len(sets) == 0 {
		return nil, fmt.Errorf("unexpected query response %T", raw)
	}
	first, ok := sets[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected result set %T", sets[0])
	}
	records, ok := first["result"].([]any)
	if !ok {
		return []any{}, nil
	}
	return records, nil
}

func decodeRecords[T any](raw any) ([]T, error) {
	records, err := queryResult(raw)
	if err != nil {
		return nil, err
	}
	entities := lo.Map(records, func(record any, _ int) T {
		entity, err := decodeRecord[T](record)
		if err != nil {
			log.Error("failed to decode record", "error", err)
			var zero T
			return zero
		}
		return *entity
	})
	return entities, nil
}

// isAbsent reports whether an error means "no such record". The client signals
// missing records through PermissionError rather than an empty result.
func isAbsent(err error) bool {
	var perr surrealdb.PermissionError
	return errors.As(err, &perr)
}

func (s *Surreal) selectOne(table, id string) (map[string]any, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	raw, err := db.Select(thing(table, id))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: select %s: %v", ErrUnavailable, table, err)
	}
	record, ok := raw.(map[string]any)
	if !ok {
		return nil, nil
	}
	return record, nil
}

func getByID[T any](s *Surreal, table, id string) (*T, error) {
	record, err := s.selectOne(table, id)
	if err != nil || record == nil {
		return nil, err
	}
	return decodeRecord[T](record)
}

func getAll[T any](s *Surreal, table string) ([]T, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	raw, err := db.Query(fmt.Sprintf("SELECT * FROM %s ORDER BY displayOrder ASC", table), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %v", ErrUnavailable, table, err)
	}
	return decodeRecords[T](raw)
}

func create[T any](s *Surreal, table string, data map[string]any) (*T, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	data["createdAt"] = now
	data["updatedAt"] = now
	raw, err := db.Create(table, data)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", ErrUnavailable, table, err)
	}
	// Create returns the inserted document, possibly wrapped in a slice.
	if arr, ok := raw.([]any); ok && len(arr) > 0 {
		raw = arr[0]
	}
	return decodeRecord[T](raw)
}

// change merges data onto an existing record. The existence check runs first:
// a bare MERGE on a record pointer would create the document instead of
// reporting absence.
func change[T any](s *Surreal, table, id string, data map[string]any) (*T, error) {
	record, err := s.selectOne(table, id)
	if err != nil || record == nil {
		return nil, err
	}
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	data["updatedAt"] = time.Now().UTC().Format(time.RFC3339)
	raw, err := db.Change(thing(table, id), data)
	if err != nil {
		return nil, fmt.Errorf("%w: change %s: %v", ErrUnavailable, table, err)
	}
	return decodeRecord[T](raw)
}

func (s *Surreal) deleteByID(table, id string) (bool, error) {
	record, err := s.selectOne(table, id)
	if err != nil || record == nil {
		return false, err
	}
	db, err := s.conn()
	if err != nil {
		return false, err
	}
	if _, err := db.Delete(thing(table, id)); err != nil {
		return false, fmt.Errorf("%w: delete %s: %v", ErrUnavailable, table, err)
	}
	return true, nil
}

func (s *Surreal) GetUser(_ context.Context, id string) (*User, error) {
	user, err := getByID[surrealUser](s, tableUser, id)
	if err != nil || user == nil {
		return nil, err
	}
	return user.user(), nil
}

func (s *Surreal) GetUserByUsername(_ context.Context, username string) (*User, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	raw, err := db.Query("SELECT * FROM user WHERE username = $username", map[string]any{
		"username": strings.TrimSpace(username),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: query user: %v", ErrUnavailable, err)
	}
	users, err := decodeRecords[surrealUser](raw)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0].user(), nil
}

func (s *Surreal) CreateUser(_ context.Context, username, hashedPassword string) (*User, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	raw, err := db.Create(tableUser, map[string]any{
		"username": username,
		"password": hashedPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create user: %v", ErrUnavailable, err)
	}
	if arr, ok := raw.([]any); ok && len(arr) > 0 {
		raw = arr[0]
	}
	user, err := decodeRecord[surrealUser](raw)
	if err != nil {
		return nil, err
	}
	return user.user(), nil
}

// surrealUser carries the password hash through the JSON round trip; the
// public User type hides it from marshalling.
type surrealUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (u surrealUser) user() *User {
	return &User{ID: u.ID, Username: u.Username, Password: u.Password}
}

func (s *Surreal) GetAbout(_ context.Context) (*About, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	raw, err := db.Query("SELECT * FROM about LIMIT 1", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: query about: %v", ErrUnavailable, err)
	}
	records, err := queryResult(raw)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return decodeRecord[About](records[0])
}

func (s *Surreal) UpsertAbout(ctx context.Context, params AboutParams) (*About, error) {
	existing, err := s.GetAbout(ctx)
	if err != nil {
		return nil, err
	}
	data := map[string]any{
		"bio":       params.Bio,
		"education": params.Education,
		"languages": params.Languages,
		"skills":    params.Skills,
		"tools":     params.Tools,
	}
	if existing != nil {
		return change[About](s, tableAbout, existing.ID, data)
	}
	return create[About](s, tableAbout, data)
}

func (s *Surreal) GetAllCertifications(_ context.Context) ([]Certification, error) {
	return getAll[Certification](s, tableCertification)
}

func (s *Surreal) GetCertification(_ context.Context, id string) (*Certification, error) {
	return getByID[Certification](s, tableCertification, id)
}

func (s *Surreal) CreateCertification(_ context.Context, params CertificationParams) (*Certification, error) {
	return create[Certification](s, tableCertification, map[string]any{
		"company":       strOr(params.Company, ""),
		"title":         strOr(params.Title, ""),
		"issued":        strOr(params.Issued, ""),
		"platform":      strOr(params.Platform, ""),
		"icon":          strOr(params.Icon, DefaultCertIcon),
		"cardColor":     strOr(params.CardColor, DefaultCertCardColor),
		"buttonColor":   strOr(params.ButtonColor, DefaultCertButtonColor),
		"titleColor":    strOr(params.TitleColor, DefaultCertTitleColor),
		"textColor":     strOr(params.TextColor, DefaultCertTextColor),
		"certImageUrl":  strOr(params.CertImageURL, ""),
		"credentialUrl": params.CredentialURL,
		"displayOrder":  intOr(params.DisplayOrder, 0),
	})
}

func (s *Surreal) UpdateCertification(_ context.Context, id string, params CertificationParams) (*Certification, error) {
	return change[Certification](s, tableCertification, id, certificationPatch(params))
}

func (s *Surreal) DeleteCertification(_ context.Context, id string) (bool, error) {
	return s.deleteByID(tableCertification, id)
}

func (s *Surreal) GetAllHackathons(_ context.Context) ([]Hackathon, error) {
	return getAll[Hackathon](s, tableHackathon)
}

func (s *Surreal) GetHackathon(_ context.Context, id string) (*Hackathon, error) {
	return getByID[Hackathon](s, tableHackathon, id)
}

func (s *Surreal) CreateHackathon(_ context.Context, params HackathonParams) (*Hackathon, error) {
	return create[Hackathon](s, tableHackathon, map[string]any{
		"name":           strOr(params.Name, ""),
		"role":           strOr(params.Role, ""),
		"organizer":      strOr(params.Organizer, ""),
		"side":           strOr(params.Side, DefaultHackathonSide),
		"delay":          intOr(params.Delay, 0),
		"certificateUrl": params.CertificateURL,
		"displayOrder":   intOr(params.DisplayOrder, 0),
	})
}

func (s *Surreal) UpdateHackathon(_ context.Context, id string, params HackathonParams) (*Hackathon, error) {
	return change[Hackathon](s, tableHackathon, id, hackathonPatch(params))
}

func (s *Surreal) DeleteHackathon(_ context.Context, id string) (bool, error) {
	return s.deleteByID(tableHackathon, id)
}

func (s *Surreal) GetAllProjects(_ context.Context) ([]Project, error) {
	return getAll[Project](s, tableProject)
}

func (s *Surreal) GetProject(_ context.Context, id string) (*Project, error) {
	return getByID[Project](s, tableProject, id)
}

func (s *Surreal) CreateProject(_ context.Context, params ProjectParams) (*Project, error) {
	technologies := params.Technologies
	if technologies == nil {
		technologies = []Technology{}
	}
	return create[Project](s, tableProject, map[string]any{
		"title":        strOr(params.Title, ""),
		"description":  strOr(params.Description, ""),
		"imageUrl":     strOr(params.ImageURL, ""),
		"alt":          strOr(params.Alt, ""),
		"technologies": technologies,
		"liveUrl":      params.LiveURL,
		"githubUrl":    strOr(params.GithubURL, ""),
		"primaryColor": strOr(params.PrimaryColor, DefaultProjectColor),
		"displayOrder": intOr(params.DisplayOrder, 0),
	})
}

func (s *Surreal) UpdateProject(_ context.Context, id string, params ProjectParams) (*Project, error) {
	return change[Project](s, tableProject, id, projectPatch(params))
}

func (s *Surreal) DeleteProject(_ context.Context, id string) (bool, error) {
	return s.deleteByID(tableProject, id)
}

// The patch builders translate non-nil params into a merge document so an
// update only touches the fields the caller supplied.

func certificationPatch(params CertificationParams) map[string]any {
	patch := map[string]any{}
	putStr(patch, "company", params.Company)
	putStr(patch, "title", params.Title)
	putStr(patch, "issued", params.Issued)
	putStr(patch, "platform", params.Platform)
	putStr(patch, "icon", params.Icon)
	putStr(patch, "cardColor", params.CardColor)
	putStr(patch, "buttonColor", params.ButtonColor)
	putStr(patch, "titleColor", params.TitleColor)
	putStr(patch, "textColor", params.TextColor)
	putStr(patch, "certImageUrl", params.CertImageURL)
	putStr(patch, "credentialUrl", params.CredentialURL)
	putInt(patch, "displayOrder", params.DisplayOrder)
	return patch
}

func hackathonPatch(params HackathonParams) map[string]any {
	patch := map[string]any{}
	putStr(patch, "name", params.Name)
	putStr(patch, "role", params.Role)
	putStr(patch, "organizer", params.Organizer)
	putStr(patch, "side", params.Side)
	putInt(patch, "delay", params.Delay)
	putStr(patch, "certificateUrl", params.CertificateURL)
	putInt(patch, "displayOrder", params.DisplayOrder)
	return patch
}

func projectPatch(params ProjectParams) map[string]any {
	patch := map[string]any{}
	putStr(patch, "title", params.Title)
	putStr(patch, "description", params.Description)
	putStr(patch, "imageUrl", params.ImageURL)
	putStr(patch, "alt", params.Alt)
	if params.Technologies != nil {
		patch["technologies"] = params.Technologies
	}
	putStr(patch, "liveUrl", params.LiveURL)
	putStr(patch, "githubUrl", params.GithubURL)
	putStr(patch, "primaryColor", params.PrimaryColor)
	putInt(patch, "displayOrder", params.DisplayOrder)
	return patch
}

func putStr(patch map[string]any, key string, val *string) {
	if val != nil {
		patch[key] = *val
	}
}

func putInt(patch map[string]any, key string, val *int) {
	if val != nil {
		patch[key] = *val
	}
}
