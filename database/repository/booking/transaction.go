package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"weddingsparks/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfAvailable inserts the booking inside a transaction that re-runs
// the overlap predicate first, so two concurrent requests for the same
// vendor and overlapping dates cannot both commit. Requires the server to
// support multi-document transactions (replica set).
func (r *MongoBookingRepo) CreateIfAvailable(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	txnFn := func(sc mongo.SessionContext) error {
		err := r.coll.FindOne(sc, overlapFilter(booking.VendorID, booking.FromDate, booking.ToDate)).Err()
		if err == nil {
			return ErrOverlap
		}
		if err != mongo.ErrNoDocuments {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}

		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrOverlap {
			return ErrOverlap
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
