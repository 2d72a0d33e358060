package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponentKind[PlayerTag]()

// Platform marks static level geometry the player collides with.
type Platform struct{}

var PlatformComponent = NewComponentKind[Platform]()

// Coin is a static pickup worth a point.
type Coin struct{}

var CoinComponent = NewComponentKind[Coin]()

// ResetOnDeath marks entities that are thrown away and rebuilt from the
// level's spawn tables when the player dies.
type ResetOnDeath struct{}

var ResetOnDeathComponent = NewComponentKind[ResetOnDeath]()
