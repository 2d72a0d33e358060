package component

// Projectile flies horizontally until it leaves the playfield or hits an
// enemy. Kind is the power that fired it.
type Projectile struct {
	Kind PowerKind
}

var ProjectileComponent = NewComponentKind[Projectile]()
