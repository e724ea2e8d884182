package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/precify/pricing-api/internal/core/domain"
)

const locationCollection = "locations"

type LocationRepository struct {
	coll *mongo.Collection
}

func NewLocationRepository(db *mongo.Database) *LocationRepository {
	return &LocationRepository{coll: db.Collection(locationCollection)}
}

type locationDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Name               string             `bson:"name"`
	State              string             `bson:"state,omitempty"`
	City               string             `bson:"city,omitempty"`
	Freight            float64            `bson:"freight"`
	ExtraTaxPercent    float64            `bson:"extra_tax_percent"`
	OtherAdjustPercent float64            `bson:"other_adjust_percent"`
}

func (d locationDoc) toDomain() domain.Location {
	return domain.Location{
		ID:                 d.ID.Hex(),
		Name:               d.Name,
		State:              d.State,
		City:               d.City,
		Freight:            d.Freight,
		ExtraTaxPercent:    d.ExtraTaxPercent,
		OtherAdjustPercent: d.OtherAdjustPercent,
	}
}

func (r *LocationRepository) List(ctx context.Context) ([]domain.Location, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer cur.Close(ctx)

	var locations []domain.Location
	for cur.Next(ctx) {
		var doc locationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode location: %w", err)
		}
		locations = append(locations, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate locations: %w", err)
	}
	return locations, nil
}

func (r *LocationRepository) Insert(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	doc := locationDoc{
		Name:               location.Name,
		State:              location.State,
		City:               location.City,
		Freight:            location.Freight,
		ExtraTaxPercent:    location.ExtraTaxPercent,
		OtherAdjustPercent: location.OtherAdjustPercent,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert location: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}
