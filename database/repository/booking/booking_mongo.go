package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"weddingsparks/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	repo := &MongoBookingRepo{coll: db.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "vendor_id", Value: 1}, {Key: "from_date", Value: 1}, {Key: "to_date", Value: 1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// overlapFilter matches bookings for the vendor whose date range shares at
// least one day with [from, to], inclusive on both ends.
func overlapFilter(vendorID string, from, to time.Time) bson.M {
	return bson.M{
		"vendor_id": vendorID,
		"from_date": bson.M{"$lte": to},
		"to_date":   bson.M{"$gte": from},
	}
}

// HasOverlap reports whether any booking for the vendor overlaps [from, to].
func (r *MongoBookingRepo) HasOverlap(ctx context.Context, vendorID string, from, to time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.coll.FindOne(ctx, overlapFilter(vendorID, from, to)).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("overlap query failed: %w", err)
	}
	return true, nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// ListByCustomer returns the customer's bookings, newest first.
func (r *MongoBookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"customer_id": customerID}, bson.D{{Key: "created_at", Value: -1}})
}

// ListByVendor returns the vendor's bookings sorted by start date descending.
func (r *MongoBookingRepo) ListByVendor(ctx context.Context, vendorID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"vendor_id": vendorID}, bson.D{{Key: "from_date", Value: -1}})
}

func (r *MongoBookingRepo) list(ctx context.Context, filter bson.M, sort bson.D) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// UpdateStatusFromPending moves a Pending booking to the given status.
func (r *MongoBookingRepo) UpdateStatusFromPending(ctx context.Context, id, status string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.BookingPending}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update status for booking %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}
