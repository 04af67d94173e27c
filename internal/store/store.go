package store

import (
	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore collections. Personal meals, recipes, saved recipes and the
// meal plan are embedded arrays/fields inside the per-uid users document;
// only default meals and the legacy flat recipe list get collections of
// their own.
const (
	collectionDefaultMeals = "default_meals"
	collectionUsers        = "users"
	collectionRecipes      = "recipes"
)

// Store is the gateway to the document database. Every write merges at
// top-level-field granularity; embedded array fields are mutated with
// element-level union/remove operations so concurrent writers to sibling
// fields never clobber each other.
type Store struct {
	client     *firestore.Client
	adminEmail string
}

// New wraps a Firestore client. adminEmail marks the account that gets the
// isAdmin flag on first sign-in.
func New(client *firestore.Client, adminEmail string) *Store {
	return &Store{client: client, adminEmail: adminEmail}
}

func (s *Store) users() *firestore.CollectionRef {
	return s.client.Collection(collectionUsers)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
