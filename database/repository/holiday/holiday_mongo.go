// File: database/repository/holiday/holiday_mongo.go
package holidayRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"glowdesk/models"
)

// ListYear returns every holiday recorded for the given year, in date order.
func (r *mongoHolidayRepo) ListYear(ctx context.Context, year int) ([]models.Holiday, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date.month", Value: 1}, {Key: "date.day", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"date.year": year}, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying holidays for %d: %w", year, err)
	}
	defer cur.Close(ctx)

	var holidays []models.Holiday
	if err := cur.All(ctx, &holidays); err != nil {
		return nil, fmt.Errorf("error decoding holidays: %w", err)
	}
	return holidays, nil
}

// Upsert stores or replaces the holiday for its date.
func (r *mongoHolidayRepo) Upsert(ctx context.Context, holiday models.Holiday) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": holiday.Date}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, holiday, opts); err != nil {
		return fmt.Errorf("error upserting holiday %s: %w", holiday.Date, err)
	}
	return nil
}

// Delete removes the holiday for the given date.
func (r *mongoHolidayRepo) Delete(ctx context.Context, date models.DateKey) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"date": date}); err != nil {
		return fmt.Errorf("error deleting holiday %s: %w", date, err)
	}
	return nil
}
