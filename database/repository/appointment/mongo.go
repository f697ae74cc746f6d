package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"healthhive/models"
)

type mongoAppointmentRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoAppointmentRepo constructs a MongoDB AppointmentRepository over db.appointments.
func NewMongoAppointmentRepo(db *mongo.Database) AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
		now:  time.Now,
	}
}

func (r *mongoAppointmentRepo) Insert(ctx context.Context, appt models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find appointment %s: %w", id, err)
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) ListByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "slot", Value: -1}})
	return r.find(ctx, bson.M{"userId": userID}, opts)
}

func (r *mongoAppointmentRepo) FindScheduledByDoctorAndDate(ctx context.Context, doctorID string, date models.CalendarDate) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"status":   models.StatusScheduled,
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "slot", Value: 1}}))
}

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Appointment, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appts := []models.Appointment{}
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) UpdateIfScheduled(ctx context.Context, id string, patch models.AppointmentPatch) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": r.now().UTC()}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.Slot != nil {
		set["slot"] = *patch.Slot
	}
	if patch.Symptoms != nil {
		set["symptoms"] = *patch.Symptoms
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}

	filter := bson.M{"id": id, "status": models.StatusScheduled}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Appointment
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	switch {
	case err == nil:
		return &updated, nil
	case mongo.IsDuplicateKeyError(err):
		return nil, ErrDuplicateKey
	case errors.Is(err, mongo.ErrNoDocuments):
		// Distinguish a missing appointment from one that left the scheduled state.
		count, countErr := r.coll.CountDocuments(ctx, bson.M{"id": id})
		if countErr != nil {
			return nil, fmt.Errorf("failed to check appointment %s: %w", id, countErr)
		}
		if count == 0 {
			return nil, ErrNotFound
		}
		return nil, ErrNotScheduled
	default:
		return nil, fmt.Errorf("failed to update appointment %s: %w", id, err)
	}
}
