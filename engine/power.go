package engine

import "github.com/lixenwraith/sky-pilot/constants"

// PowerKind indexes the timed powers
type PowerKind uint8

const (
	PowerShield PowerKind = iota
	PowerMagnet
	PowerRapidFire
	PowerTripleShot
	PowerCount
)

// PowerInfo is the static description of a power
type PowerInfo struct {
	Name     string // HUD bar label
	Notice   string // Notification on grant
	Color    string // Notification color
	BarColor string
	Duration int // Frames
}

var powerInfos = [PowerCount]PowerInfo{
	PowerShield:     {"SHIELD", "SHIELD ACTIVE", constants.ColorNoticeShield, constants.ColorBarShield, constants.ShieldDuration},
	PowerMagnet:     {"MAGNET", "MAGNET ACTIVE", constants.ColorMagnet, constants.ColorBarMagnet, constants.MagnetDuration},
	PowerRapidFire:  {"RAPID FIRE", "RAPID FIRE", constants.ColorRapidFire, constants.ColorBarRapidFire, constants.RapidFireDuration},
	PowerTripleShot: {"TRIPLE SHOT", "TRIPLE SHOT", constants.ColorTripleShot, constants.ColorBarTripleShot, constants.TripleShotDuration},
}

// Info returns the static description of the power
func (k PowerKind) Info() PowerInfo {
	return powerInfos[k]
}

// PowerState is a single timed power
type PowerState struct {
	Active    bool
	Remaining int
}

// Grant activates the power for the full duration; an active power is refreshed, never extended
func (p *PowerState) Grant(duration int) {
	p.Active = true
	p.Remaining = duration
}

// Consume deactivates the power immediately
func (p *PowerState) Consume() {
	p.Active = false
	p.Remaining = 0
}

// Tick decrements an active power once and reports whether it expired on this tick
func (p *PowerState) Tick() bool {
	if !p.Active {
		return false
	}
	p.Remaining--
	if p.Remaining <= 0 {
		p.Remaining = 0
		p.Active = false
		return true
	}
	return false
}

// Fraction returns the remaining share of duration in [0, 1]
func (p PowerState) Fraction(duration int) float64 {
	if !p.Active || duration <= 0 {
		return 0
	}
	return min(float64(p.Remaining)/float64(duration), 1)
}
