// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"glowdesk/models"
)

func (r *mongoAppointmentRepo) findSorted(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying appointments: %w", err)
	}
	defer cur.Close(ctx)

	var appointments []models.Appointment
	if err := cur.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appointments, nil
}

// GetByCalendarAndRange returns a calendar's appointments whose time range
// intersects [from, to), sorted by start.
func (r *mongoAppointmentRepo) GetByCalendarAndRange(ctx context.Context, calendarID string, from, to time.Time) ([]models.Appointment, error) {
	return r.findSorted(ctx, bson.M{
		"calendarId": calendarID,
		"start":      bson.M{"$lt": to},
		"end":        bson.M{"$gt": from},
	})
}

// GetByRange returns all appointments intersecting [from, to) across calendars.
func (r *mongoAppointmentRepo) GetByRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	return r.findSorted(ctx, bson.M{
		"start": bson.M{"$lt": to},
		"end":   bson.M{"$gt": from},
	})
}

// GetByClient returns a client's appointment history, newest first.
func (r *mongoAppointmentRepo) GetByClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"clientId": clientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying client appointments: %w", err)
	}
	defer cur.Close(ctx)

	var appointments []models.Appointment
	if err := cur.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("error decoding client appointments: %w", err)
	}
	return appointments, nil
}

// MarkPastAs bulk-transitions appointments that ended before the cutoff
// from any of the given statuses to the target status. Used by the
// nightly sweep; idempotent.
func (r *mongoAppointmentRepo) MarkPastAs(ctx context.Context, before time.Time, fromStatuses []models.AppointmentStatus, to models.AppointmentStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"end":    bson.M{"$lt": before},
		"status": bson.M{"$in": fromStatuses},
	}
	update := bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("error sweeping past appointments: %w", err)
	}
	return res.ModifiedCount, nil
}
