package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"weddingsparks/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB. It holds
// both the payments and bookings collections so payment creation and
// booking linkage commit together.
type MongoPaymentRepo struct {
	paymentColl *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo(db *mongo.Database) *MongoPaymentRepo {
	repo := &MongoPaymentRepo{
		paymentColl: db.Collection("payments"),
		bookingColl: db.Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create payment indexes: %v\n", err)
	}
	return repo
}

func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
	}

	_, err := r.paymentColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// CreateAndLinkBooking inserts the payment and sets payment_id and
// is_payment_done on the booking in one transaction.
func (r *MongoPaymentRepo) CreateAndLinkBooking(ctx context.Context, payment *models.Payment) error {
	client := r.paymentColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.paymentColl.InsertOne(sc, payment); err != nil {
			return fmt.Errorf("insert payment failed: %w", err)
		}

		update := bson.M{"$set": bson.M{
			"payment_id":      payment.ID,
			"is_payment_done": true,
			"updated_at":      now,
		}}
		res, err := r.bookingColl.UpdateOne(sc, bson.M{"id": payment.BookingID}, update)
		if err != nil {
			return fmt.Errorf("link booking failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("booking %s not found", payment.BookingID)
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
		return fmt.Errorf("payment transaction failed: %w", err)
	}

	return nil
}

// GetByID retrieves a payment by its unique ID.
func (r *MongoPaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.paymentColl.FindOne(ctx, bson.M{"id": id}).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment with id %s: %w", id, err)
	}
	return &payment, nil
}

// GetByBookingID retrieves the payment linked to a booking, if any.
func (r *MongoPaymentRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.paymentColl.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment for booking %s: %w", bookingID, err)
	}
	return &payment, nil
}

// Find filters payments by bookingID and/or customerID.
func (r *MongoPaymentRepo) Find(ctx context.Context, bookingID, customerID string) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := bson.M{}
	if bookingID != "" {
		query["booking_id"] = bookingID
	}
	if customerID != "" {
		query["customer_id"] = customerID
	}

	cursor, err := r.paymentColl.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

// UpdateStatus sets the payment status.
func (r *MongoPaymentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := r.paymentColl.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("payment with id %s not found", id)
	}
	return nil
}
