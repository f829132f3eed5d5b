package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"kidswear-backend/internal/store"
)

// Store is the slice of the persistence adapter the catalog needs.
type Store interface {
	InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)
	FindMany(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	FindOne(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error)
	Count(ctx context.Context, collection string) (int64, error)
}

// ListFilter narrows a product listing. Zero values mean "no filter".
type ListFilter struct {
	Category string
	Query    string
	Limit    int64
}

// SeedResult reports what the seed operation did.
type SeedResult struct {
	AlreadySeeded bool
	Existing      int64
	Inserted      int
}

type Service interface {
	ListProducts(ctx context.Context, filter ListFilter) ([]bson.M, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	SeedProducts(ctx context.Context) (*SeedResult, error)
}

type service struct {
	store Store
}

func NewService(st Store) Service {
	return &service{store: st}
}

// buildListFilter translates a ListFilter into a store query: exact
// category match, and a case-insensitive partial match of the search
// term against title, description or brand. Both combine with AND.
func buildListFilter(filter ListFilter) bson.M {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Query != "" {
		pattern := primitive.Regex{Pattern: filter.Query, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
			bson.M{"brand": pattern},
		}
	}
	return query
}

func (s *service) ListProducts(ctx context.Context, filter ListFilter) ([]bson.M, error) {
	if s.store == nil {
		return nil, store.ErrNotConfigured
	}

	docs, err := s.store.FindMany(ctx, store.CollectionProduct, buildListFilter(filter), filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to list products: %w", err)
	}
	return docs, nil
}

func (s *service) GetProduct(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	if s.store == nil {
		return nil, store.ErrNotConfigured
	}

	doc, err := s.store.FindOne(ctx, store.CollectionProduct, id)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to fetch product: %w", err)
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return doc, nil
}

// SeedProducts inserts the sample catalog once. A non-empty collection
// makes it a no-op reporting the existing count. Inserts stop on the
// first error; documents already written stay in place.
func (s *service) SeedProducts(ctx context.Context) (*SeedResult, error) {
	if s.store == nil {
		return nil, store.ErrNotConfigured
	}

	existing, err := s.store.Count(ctx, store.CollectionProduct)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to count products: %w", err)
	}
	if existing > 0 {
		return &SeedResult{AlreadySeeded: true, Existing: existing}, nil
	}

	inserted := 0
	for _, product := range SampleProducts() {
		if _, err := s.store.InsertOne(ctx, store.CollectionProduct, product); err != nil {
			return nil, fmt.Errorf("catalog: failed to seed product %q: %w", product.Title, err)
		}
		inserted++
	}

	log.Info().Int("inserted", inserted).Msg("Seeded sample products")
	return &SeedResult{Inserted: inserted}, nil
}
