package ecs

// DestroyAll destroys every entity in ents. Already destroyed entities are
// ignored, so callers can collect removals from several passes.
func DestroyAll(w *World, ents []Entity) int {
	n := 0
	for _, e := range ents {
		if DestroyEntity(w, e) {
			n++
		}
	}
	return n
}
