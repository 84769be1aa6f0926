package component

// PlayerTag marks the player-controlled entity.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Spawn remembers where an entity respawns after falling out of the
// world.
type Spawn struct {
	X float64
	Y float64
}

var SpawnComponent = NewComponent[Spawn]()
