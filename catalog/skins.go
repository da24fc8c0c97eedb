package catalog

// PlaneModel selects the craft silhouette
type PlaneModel uint8

const (
	ModelJet PlaneModel = iota
	ModelBiplane
	ModelUFO
)

// String returns the model name
func (m PlaneModel) String() string {
	switch m {
	case ModelBiplane:
		return "biplane"
	case ModelUFO:
		return "ufo"
	default:
		return "jet"
	}
}

// PlaneSkin is an immutable cosmetic catalog entry
type PlaneSkin struct {
	ID     string
	Name   string
	Model  PlaneModel
	Color  string // Body color
	Accent string // Wing detail color
	Price  int
}

// DefaultSkinID is owned and equipped by every new profile
const DefaultSkinID = "default"

var skins = []PlaneSkin{
	// Starters
	{ID: DefaultSkinID, Name: "Neon Jet", Model: ModelJet, Color: "#06b6d4", Accent: "#ec4899", Price: 0},
	{ID: "blue_biplane", Name: "Sky Baron", Model: ModelBiplane, Color: "#3b82f6", Accent: "#f59e0b", Price: 250},

	// Tier 1
	{ID: "rusty", Name: "Old Reliable", Model: ModelBiplane, Color: "#78350f", Accent: "#a16207", Price: 500},
	{ID: "forest_ranger", Name: "Ranger", Model: ModelBiplane, Color: "#15803d", Accent: "#86efac", Price: 600},
	{ID: "bubblegum", Name: "Sweet Tooth", Model: ModelBiplane, Color: "#ec4899", Accent: "#fbcfe8", Price: 750},
	{ID: "oceanic", Name: "Deep Dive", Model: ModelUFO, Color: "#0ea5e9", Accent: "#7dd3fc", Price: 800},
	{ID: "hot_rod", Name: "Hot Rod", Model: ModelJet, Color: "#ea580c", Accent: "#fca5a5", Price: 900},
	{ID: "stealth_jet", Name: "Night Fury", Model: ModelJet, Color: "#171717", Accent: "#404040", Price: 1000},
	{ID: "ice_breaker", Name: "Ice Breaker", Model: ModelJet, Color: "#06b6d4", Accent: "#cffafe", Price: 1100},
	{ID: "viper", Name: "Viper", Model: ModelJet, Color: "#65a30d", Accent: "#d9f99d", Price: 1200},
	{ID: "crimson_baron", Name: "Red Baron", Model: ModelBiplane, Color: "#991b1b", Accent: "#fca5a5", Price: 1300},
	{ID: "invader_x", Name: "Invader X", Model: ModelUFO, Color: "#22c55e", Accent: "#86efac", Price: 1400},
	{ID: "pink_phantom", Name: "Phantom", Model: ModelJet, Color: "#db2777", Accent: "#fdf4ff", Price: 1500},

	// Tier 2
	{ID: "saucer_51", Name: "Area 51", Model: ModelUFO, Color: "#94a3b8", Accent: "#e2e8f0", Price: 2000},
	{ID: "midnight_run", Name: "Midnight", Model: ModelJet, Color: "#1e3a8a", Accent: "#60a5fa", Price: 2200},
	{ID: "toxic_avenger", Name: "Hazmat", Model: ModelBiplane, Color: "#84cc16", Accent: "#166534", Price: 2400},
	{ID: "gold_ufo", Name: "Royal Disc", Model: ModelUFO, Color: "#eab308", Accent: "#fef08a", Price: 2500},
	{ID: "prototype_x", Name: "Prototype", Model: ModelJet, Color: "#f8fafc", Accent: "#94a3b8", Price: 3000},
	{ID: "nebula", Name: "Nebula", Model: ModelUFO, Color: "#7c3aed", Accent: "#d8b4fe", Price: 3500},
	{ID: "shadow_ops", Name: "Shadow Ops", Model: ModelUFO, Color: "#000000", Accent: "#dc2626", Price: 4000},

	// Tier 3
	{ID: "solar_flare", Name: "Solar", Model: ModelUFO, Color: "#f97316", Accent: "#fff7ed", Price: 5000},
	{ID: "silver_bullet", Name: "Silver Bullet", Model: ModelJet, Color: "#cbd5e1", Accent: "#64748b", Price: 6000},
	{ID: "golden_eagle", Name: "Gold Eagle", Model: ModelBiplane, Color: "#ca8a04", Accent: "#fde047", Price: 7500},
	{ID: "void_walker", Name: "Void Walker", Model: ModelUFO, Color: "#4c1d95", Accent: "#2dd4bf", Price: 10000},
	{ID: "cyber_punk", Name: "Cyber", Model: ModelJet, Color: "#facc15", Accent: "#06b6d4", Price: 15000},
}

// Skins returns the catalog in display order
func Skins() []PlaneSkin {
	out := make([]PlaneSkin, len(skins))
	copy(out, skins)
	return out
}

// SkinByID returns the skin with the given id, or the first catalog entry
func SkinByID(id string) PlaneSkin {
	for _, s := range skins {
		if s.ID == id {
			return s
		}
	}
	return skins[0]
}

// Exists reports whether id names a catalog skin
func Exists(id string) bool {
	for _, s := range skins {
		if s.ID == id {
			return true
		}
	}
	return false
}
