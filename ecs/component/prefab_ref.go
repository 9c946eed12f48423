package component

// PrefabRef remembers which prefab built an entity so tuning reloads can
// find it again.
type PrefabRef struct {
	Path string
}

var PrefabRefComponent = NewComponent[PrefabRef]()
