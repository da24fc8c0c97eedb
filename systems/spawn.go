package systems

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
	"github.com/lixenwraith/sky-pilot/vmath"
)

// SpawnKind is the spawn template selected by a band
type SpawnKind uint8

const (
	KindShield SpawnKind = iota
	KindMagnet
	KindRapidFire
	KindTripleShot
	KindCoinGate
	KindLargeAsteroid
	KindSmallAsteroid
	KindRing
	KindCube
)

// SpawnBand selects Kind for rolls at or above Min
type SpawnBand struct {
	Min  float64
	Kind SpawnKind
}

// SpawnBands partitions [0,1), rarest first
var SpawnBands = []SpawnBand{
	{0.98, KindShield},
	{0.96, KindMagnet},
	{0.94, KindRapidFire},
	{0.92, KindTripleShot},
	{0.75, KindCoinGate},
	{0.60, KindLargeAsteroid},
	{0.50, KindSmallAsteroid},
	{0.42, KindRing},
	{0, KindCube},
}

type spawnTemplate struct {
	typ    engine.EntityType
	width  float64
	height float64
	color  string
	hp     int
}

var spawnTemplates = map[SpawnKind]spawnTemplate{
	KindShield:        {engine.TypeShield, constants.PickupSize, constants.PickupSize, constants.ColorShield, 1},
	KindMagnet:        {engine.TypeMagnet, constants.PickupSize, constants.PickupSize, constants.ColorMagnet, 1},
	KindRapidFire:     {engine.TypeRapidFire, constants.PickupSize, constants.PickupSize, constants.ColorRapidFire, 1},
	KindTripleShot:    {engine.TypeTripleShot, constants.PickupSize, constants.PickupSize, constants.ColorTripleShot, 1},
	KindCoinGate:      {engine.TypeCoin, constants.CoinGateSize, constants.CoinGateSize, constants.ColorCoin, 1},
	KindLargeAsteroid: {engine.TypeAsteroid, constants.LargeAsteroidW, constants.LargeAsteroidH, constants.ColorAsteroid, constants.AsteroidHPLarge},
	KindSmallAsteroid: {engine.TypeAsteroid, constants.SmallAsteroidW, constants.SmallAsteroidH, constants.ColorAsteroid, constants.AsteroidHPSmall},
	KindRing:          {engine.TypeRing, constants.RingSize, constants.RingSize, constants.ColorRing, 1},
	KindCube:          {engine.TypeCube, constants.CubeSize, constants.CubeSize, constants.ColorCube, 1},
}

var errBandPartition = errors.New("spawn bands do not partition [0,1)")

// ValidateBands checks that bands are strictly descending, start below 1 and end at 0
// Together with first-match selection this makes every roll in [0,1) select exactly one band
func ValidateBands(bands []SpawnBand) error {
	if len(bands) == 0 {
		return fmt.Errorf("%w: no bands", errBandPartition)
	}
	if bands[0].Min >= 1 {
		return fmt.Errorf("%w: first band starts at %v", errBandPartition, bands[0].Min)
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].Min >= bands[i-1].Min {
			return fmt.Errorf("%w: band %d (%v) not below band %d (%v)", errBandPartition, i, bands[i].Min, i-1, bands[i-1].Min)
		}
	}
	if last := bands[len(bands)-1].Min; last != 0 {
		return fmt.Errorf("%w: last band starts at %v, leaving a gap", errBandPartition, last)
	}
	for _, b := range bands {
		if _, ok := spawnTemplates[b.Kind]; !ok {
			return fmt.Errorf("%w: band kind %d has no template", errBandPartition, b.Kind)
		}
	}
	return nil
}

// SelectBand returns the kind of the first band whose Min does not exceed roll
func SelectBand(bands []SpawnBand, roll float64) SpawnKind {
	for _, b := range bands {
		if roll >= b.Min {
			return b.Kind
		}
	}
	return bands[len(bands)-1].Kind
}

// SpawnInterval returns the frames between spawns at the given speed
func SpawnInterval(speed float64) int {
	if speed <= 0 {
		return constants.MinSpawnInterval
	}
	return max(constants.MinSpawnInterval, int(math.Floor(constants.SpawnConstant/speed)))
}

// SpawnSystem creates entities at the far plane on a speed-driven cadence
type SpawnSystem struct {
	bands []SpawnBand
}

// NewSpawnSystem creates a spawn system rolling the default SpawnBands
func NewSpawnSystem() engine.System {
	return &SpawnSystem{bands: SpawnBands}
}

// NewSpawnSystemWithBands creates a spawn system for a custom band table
// Returns error if the table does not partition [0,1)
func NewSpawnSystemWithBands(bands []SpawnBand) (engine.System, error) {
	if err := ValidateBands(bands); err != nil {
		return nil, err
	}
	return &SpawnSystem{bands: slices.Clone(bands)}, nil
}

// Priority returns the system's priority
func (sys *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update spawns one entity on cadence frames
func (sys *SpawnSystem) Update(s *engine.State) {
	if s.Crashing() {
		return
	}
	if s.Frame%SpawnInterval(s.Speed) != 0 {
		return
	}
	Spawn(s, SelectBand(sys.bands, s.Rand.Float64()))
}

// Spawn appends a new entity of kind at the spawn plane
func Spawn(s *engine.State, kind SpawnKind) *engine.Entity {
	tpl := spawnTemplates[kind]

	y := vmath.RandomRange(s.Rand, -constants.SpawnRangeY, constants.SpawnRangeY)
	safeX := constants.SpawnRangeX - tpl.width/2
	x := vmath.RandomRange(s.Rand, -safeX, safeX)

	e := &engine.Entity{
		ID:          s.NextID(),
		Pos:         engine.Point3D{X: x, Y: y, Z: constants.SpawnZ},
		Type:        tpl.typ,
		Width:       tpl.width,
		Height:      tpl.height,
		Color:       tpl.color,
		Active:      true,
		Rotation:    s.Rand.Float64() * 2 * math.Pi,
		HasRotation: true,
		HP:          tpl.hp,
		MaxHP:       tpl.hp,
	}
	s.Entities = append(s.Entities, e)
	return e
}
