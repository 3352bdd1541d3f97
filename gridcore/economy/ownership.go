package economy

import "github.com/yieldgrid/game-core/gridcore/game"

// InitializeOwnership sets the owner type and empties the owned set.
func InitializeOwnership(o *game.Ownership, ownerType game.EntityType) {
	o.OwnerType = ownerType
	o.OwnedEntities = nil
	o.OwnedTypes = nil
}

// Assign adds an entity to the owner's set. Membership is unique by id.
func Assign(o *game.Ownership, id game.EntityID, entityType game.EntityType) error {
	if o.Contains(id) {
		return game.ErrDuplicateEntity
	}
	o.OwnedEntities = append(o.OwnedEntities, id)
	o.OwnedTypes = append(o.OwnedTypes, entityType)
	return nil
}

// Remove drops an entity from the owner's set, returning its type.
func Remove(o *game.Ownership, id game.EntityID) (game.EntityType, error) {
	i := indexOfOwned(o, id)
	if i < 0 {
		return game.EntityUnknown, game.ErrEntityNotFound
	}
	t := o.OwnedTypes[i]
	last := len(o.OwnedEntities) - 1
	o.OwnedEntities[i] = o.OwnedEntities[last]
	o.OwnedTypes[i] = o.OwnedTypes[last]
	o.OwnedEntities = o.OwnedEntities[:last]
	o.OwnedTypes = o.OwnedTypes[:last]
	return t, nil
}

// TransferOwnership moves an entity from one owner's set to another as a
// single step: both the removal and the addition succeed, or neither does.
func TransferOwnership(from, to *game.Ownership, id game.EntityID) error {
	i := indexOfOwned(from, id)
	if i < 0 {
		return game.ErrEntityNotFound
	}
	if to.Contains(id) {
		return game.ErrDuplicateEntity
	}
	t, err := Remove(from, id)
	if err != nil {
		return err
	}
	return Assign(to, id, t)
}

func indexOfOwned(o *game.Ownership, id game.EntityID) int {
	for i, e := range o.OwnedEntities {
		if e == id {
			return i
		}
	}
	return -1
}
