package profile

import (
	"errors"
	"slices"

	"github.com/lixenwraith/sky-pilot/catalog"
)

// Sentinel errors
var (
	ErrInsufficientCoins = errors.New("insufficient coins")
	ErrNotOwned          = errors.New("skin not owned")
	ErrAlreadyOwned      = errors.New("skin already owned")
)

// Profile is the persistent player record
type Profile struct {
	Coins        int      `toml:"coins"`
	HighScore    int      `toml:"high_score"`
	OwnedSkins   []string `toml:"owned_skins"`
	SelectedSkin string   `toml:"selected_skin"`
}

// Default returns the profile of a new player
func Default() Profile {
	return Profile{
		OwnedSkins:   []string{catalog.DefaultSkinID},
		SelectedSkin: catalog.DefaultSkinID,
	}
}

// Owns reports whether the skin id is in the owned list
func (p Profile) Owns(id string) bool {
	return slices.Contains(p.OwnedSkins, id)
}

// clone copies the owned list so mutations never alias the caller's slice
func (p Profile) clone() Profile {
	p.OwnedSkins = slices.Clone(p.OwnedSkins)
	return p
}

// Store loads and saves profiles
// Implementations log their own faults and never fail the caller
type Store interface {
	Load() Profile
	Save(Profile)
}

// Manager owns the current profile and persists every mutation
type Manager struct {
	store   Store
	current Profile
}

// NewManager loads the current profile from store
func NewManager(store Store) *Manager {
	return &Manager{store: store, current: store.Load()}
}

// Current returns a copy of the current profile
func (m *Manager) Current() Profile {
	return m.current.clone()
}

// Skin returns the equipped catalog skin, falling back to the first entry
func (m *Manager) Skin() catalog.PlaneSkin {
	return catalog.SkinByID(m.current.SelectedSkin)
}

// Buy deducts the price, adds the skin to the owned list and equips it
func (m *Manager) Buy(skin catalog.PlaneSkin) error {
	if m.current.Owns(skin.ID) {
		return ErrAlreadyOwned
	}
	if m.current.Coins < skin.Price {
		return ErrInsufficientCoins
	}

	next := m.current.clone()
	next.Coins -= skin.Price
	next.OwnedSkins = append(next.OwnedSkins, skin.ID)
	next.SelectedSkin = skin.ID
	m.commit(next)
	return nil
}

// Equip selects an owned skin
func (m *Manager) Equip(id string) error {
	if !m.current.Owns(id) {
		return ErrNotOwned
	}

	next := m.current.clone()
	next.SelectedSkin = id
	m.commit(next)
	return nil
}

// RecordRun banks the run's coins and raises the high score
func (m *Manager) RecordRun(score, coins int) {
	next := m.current.clone()
	next.Coins += coins
	next.HighScore = max(next.HighScore, score)
	m.commit(next)
}

func (m *Manager) commit(p Profile) {
	m.current = p
	m.store.Save(p.clone())
}

// MemoryStore keeps a profile in memory
type MemoryStore struct {
	Data  *Profile
	Saves int
}

// Load returns the stored profile or defaults
func (s *MemoryStore) Load() Profile {
	if s.Data == nil {
		return Default()
	}
	return s.Data.clone()
}

// Save replaces the stored profile
func (s *MemoryStore) Save(p Profile) {
	c := p.clone()
	s.Data = &c
	s.Saves++
}
