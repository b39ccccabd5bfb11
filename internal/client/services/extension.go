// Package services contains client-side flows over the REST API and the
// local state store: identity, policy load/merge, bulk save, custom-list
// edits, and the file-drop classification check.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/fileblock/internal/client/client"
	"github.com/dmitrijs2005/fileblock/internal/client/repositories/state"
	"github.com/dmitrijs2005/fileblock/internal/extension"
	"github.com/google/uuid"
)

// State keys.
const (
	userIDKey      = "user_id"
	policyCacheKey = "policy_snapshot"
)

// api is the backend surface this service needs; *client.APIClient
// satisfies it.
type api interface {
	ListFixed(ctx context.Context, userID string) ([]client.FixedExtension, error)
	SaveFixed(ctx context.Context, userID string, exts []client.FixedExtension) ([]client.FixedExtension, error)
	ListCustom(ctx context.Context, userID string) ([]client.CustomExtension, error)
	AddCustom(ctx context.Context, userID, name string) (*client.CustomExtension, error)
	DeleteCustom(ctx context.Context, userID, id string) error
}

// Policy is an explicit snapshot of the current policy. It is passed down
// to commands and replaced wholesale on reload; there is no shared mutable
// singleton.
type Policy struct {
	Fixed  []client.FixedExtension  `json:"fixed"`
	Custom []client.CustomExtension `json:"custom"`
}

// ExtensionService drives the client-side flows.
type ExtensionService struct {
	api   api
	state state.Repository
}

func NewExtensionService(a api, repos *client.Repositories) *ExtensionService {
	return &ExtensionService{api: a, state: repos.State}
}

// UserID returns the persisted namespace key, generating and storing one on
// first use. The format mirrors the browser UI's localStorage key:
// "user_<unix-millis>_<random>".
func (s *ExtensionService) UserID(ctx context.Context) (string, error) {
	v, err := s.state.Get(ctx, userIDKey)
	if err != nil {
		return "", err
	}
	if v != nil {
		return string(v), nil
	}

	id := fmt.Sprintf("user_%d_%s", time.Now().UnixMilli(), strings.SplitN(uuid.NewString(), "-", 2)[0])
	if err := s.state.Set(ctx, userIDKey, []byte(id)); err != nil {
		return "", err
	}
	return id, nil
}

// Load fetches the policy from the server. Stored fixed overrides are
// merged over the catalog (absent row = unblocked) so the snapshot always
// lists every catalog name. The snapshot is cached locally for offline
// checks.
func (s *ExtensionService) Load(ctx context.Context) (*Policy, error) {
	userID, err := s.UserID(ctx)
	if err != nil {
		return nil, err
	}

	saved, err := s.api.ListFixed(ctx, userID)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]bool, len(saved))
	for _, e := range saved {
		byName[e.Name] = e.IsBlocked
	}

	catalog := extension.Catalog()
	fixed := make([]client.FixedExtension, 0, len(catalog))
	for _, name := range catalog {
		fixed = append(fixed, client.FixedExtension{Name: name, IsBlocked: byName[name]})
	}

	custom, err := s.api.ListCustom(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &Policy{Fixed: fixed, Custom: custom}

	if err := s.cachePolicy(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// CachedPolicy returns the last snapshot stored by Load, or nil when none
// has been cached yet. It lets the check command work offline.
func (s *ExtensionService) CachedPolicy(ctx context.Context) (*Policy, error) {
	v, err := s.state.Get(ctx, policyCacheKey)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}

	p := &Policy{}
	if err := json.Unmarshal(v, p); err != nil {
		return nil, fmt.Errorf("corrupt policy cache: %w", err)
	}
	return p, nil
}

func (s *ExtensionService) cachePolicy(ctx context.Context, p *Policy) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.state.Set(ctx, policyCacheKey, b)
}

// Toggle flips the block state of a fixed catalog name in the snapshot.
// Returns false when the name is not a catalog member.
func (s *ExtensionService) Toggle(p *Policy, rawName string) bool {
	name := extension.Normalize(rawName)
	for i := range p.Fixed {
		if p.Fixed[i].Name == name {
			p.Fixed[i].IsBlocked = !p.Fixed[i].IsBlocked
			return true
		}
	}
	return false
}

// SaveFixed pushes the snapshot's fixed entries to the server in one bulk
// update and refreshes the local cache.
func (s *ExtensionService) SaveFixed(ctx context.Context, p *Policy) error {
	userID, err := s.UserID(ctx)
	if err != nil {
		return err
	}

	if _, err := s.api.SaveFixed(ctx, userID, p.Fixed); err != nil {
		return err
	}

	return s.cachePolicy(ctx, p)
}

// AddCustom validates rawName against the snapshot (same rules the server
// applies, so obviously bad input never leaves the client), sends it, and
// prepends the created record to the snapshot, newest first.
func (s *ExtensionService) AddCustom(ctx context.Context, p *Policy, rawName string) (*client.CustomExtension, error) {
	name := extension.Normalize(rawName)

	existing := make([]string, 0, len(p.Custom))
	for _, e := range p.Custom {
		existing = append(existing, e.Name)
	}

	if err := extension.ValidateNew(name, existing, len(p.Custom)); err != nil {
		return nil, err
	}

	userID, err := s.UserID(ctx)
	if err != nil {
		return nil, err
	}

	created, err := s.api.AddCustom(ctx, userID, name)
	if err != nil {
		return nil, err
	}

	p.Custom = append([]client.CustomExtension{*created}, p.Custom...)

	return created, s.cachePolicy(ctx, p)
}

// RemoveCustom deletes the entry by id and drops it from the snapshot.
func (s *ExtensionService) RemoveCustom(ctx context.Context, p *Policy, id string) error {
	userID, err := s.UserID(ctx)
	if err != nil {
		return err
	}

	if err := s.api.DeleteCustom(ctx, userID, id); err != nil {
		return err
	}

	kept := p.Custom[:0]
	for _, e := range p.Custom {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	p.Custom = kept

	return s.cachePolicy(ctx, p)
}

// Check classifies file names against the snapshot: blocked fixed entries
// plus all custom entries.
func (s *ExtensionService) Check(p *Policy, fileNames []string) []extension.Result {
	fixedBlocked := make([]string, 0, len(p.Fixed))
	for _, e := range p.Fixed {
		if e.IsBlocked {
			fixedBlocked = append(fixedBlocked, e.Name)
		}
	}

	custom := make([]string, 0, len(p.Custom))
	for _, e := range p.Custom {
		custom = append(custom, e.Name)
	}

	blocked := extension.BlockedSet(fixedBlocked, custom)

	results := make([]extension.Result, 0, len(fileNames))
	for _, name := range fileNames {
		results = append(results, extension.Classify(name, blocked))
	}
	return results
}
