package services

import "gin-crud-api/models"

// CanMutate is the whole of the authorization policy: an item may only be
// changed or deleted by its owner.
func CanMutate(actor *models.User, target *models.Item) bool {
	return target.OwnerID == actor.ID
}
