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

const productCollection = "products"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productCollection)}
}

type productDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	Code              string             `bson:"code,omitempty"`
	Unit              string             `bson:"unit,omitempty"`
	CostRaw           float64            `bson:"cost_raw"`
	CostPackaging     float64            `bson:"cost_packaging"`
	CostLabor         float64            `bson:"cost_labor"`
	CostLogisticsBase float64            `bson:"cost_logistics_base"`
	CostTaxBase       float64            `bson:"cost_tax_base"`
	CostOther         float64            `bson:"cost_other"`
}

func (d productDoc) toDomain() domain.Product {
	return domain.Product{
		ID:                d.ID.Hex(),
		Name:              d.Name,
		Code:              d.Code,
		Unit:              d.Unit,
		CostRaw:           d.CostRaw,
		CostPackaging:     d.CostPackaging,
		CostLabor:         d.CostLabor,
		CostLogisticsBase: d.CostLogisticsBase,
		CostTaxBase:       d.CostTaxBase,
		CostOther:         d.CostOther,
	}
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	var products []domain.Product
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	doc := productDoc{
		Name:              product.Name,
		Code:              product.Code,
		Unit:              product.Unit,
		CostRaw:           product.CostRaw,
		CostPackaging:     product.CostPackaging,
		CostLabor:         product.CostLabor,
		CostLogisticsBase: product.CostLogisticsBase,
		CostTaxBase:       product.CostTaxBase,
		CostOther:         product.CostOther,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}
