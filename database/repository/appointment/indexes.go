// File: database/repository/appointment/indexes.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
func (r *mongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: a calendar's appointments over a time range.
		{
			Keys:    bson.D{{Key: "calendarId", Value: 1}, {Key: "start", Value: 1}, {Key: "end", Value: 1}},
			Options: options.Index().SetName("calendar_start_end_idx"),
		},
		// Sweep query: ended-before with status filter.
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "end", Value: 1}},
			Options: options.Index().SetName("status_end_idx"),
		},
		{
			Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "start", Value: -1}},
			Options: options.Index().SetName("client_start_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
