package listingRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"staymate/database"
	"staymate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoListingRepo implements ListingRepository using MongoDB.
type MongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo creates a new instance of ListingRepository using MongoDB.
func NewMongoListingRepo() ListingRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("listings")
	repo := &MongoListingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoListingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// containsPattern builds a case-insensitive partial-match regex filter.
func containsPattern(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}

// Search retrieves listings matching the given filters, up to the query limit.
func (r *MongoListingRepo) Search(q ListingQuery) ([]models.Listing, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if q.City != "" {
		filter["city"] = containsPattern(q.City)
	}
	if q.Country != "" {
		filter["country"] = containsPattern(q.Country)
	}
	if q.Guests > 0 {
		filter["max_guests"] = bson.M{"$gte": q.Guests}
	}
	if q.MinBedrooms > 0 {
		filter["bedrooms"] = bson.M{"$gte": q.MinBedrooms}
	}
	if q.MinPrice > 0 || q.MaxPrice > 0 {
		price := bson.M{}
		if q.MinPrice > 0 {
			price["$gte"] = q.MinPrice
		}
		if q.MaxPrice > 0 {
			price["$lte"] = q.MaxPrice
		}
		filter["price_per_night"] = price
	}
	if len(q.Amenities) > 0 {
		filter["amenities"] = bson.M{"$all": q.Amenities}
	}
	if q.Text != "" {
		filter["$or"] = bson.A{
			bson.M{"title": containsPattern(q.Text)},
			bson.M{"description": containsPattern(q.Text)},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "price_per_night", Value: 1}})
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, nil
}

// GetByTitle retrieves a listing by its exact title. Returns nil when not found.
func (r *MongoListingRepo) GetByTitle(title string) (*models.Listing, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var listing models.Listing
	if err := r.coll.FindOne(ctx, bson.M{"title": title}).Decode(&listing); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch listing with title %q: %w", title, err)
	}
	return &listing, nil
}

// GetByID retrieves a listing by its unique ID. Returns nil when not found.
func (r *MongoListingRepo) GetByID(id string) (*models.Listing, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var listing models.Listing
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&listing); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch listing with id %s: %w", id, err)
	}
	return &listing, nil
}
