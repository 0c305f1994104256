// File: database/repository/hours/hours_mongo.go
package hoursRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"glowdesk/models"
)

// settingsDocID keys the single business-hours document.
const settingsDocID = "business-hours"

// Get loads the hours settings. A missing document is not an error: the
// salon starts with no rules, which the resolver treats as always open.
func (r *mongoHoursRepo) Get(ctx context.Context) (*models.HoursSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings models.HoursSettings
	err := r.coll.FindOne(ctx, bson.M{"id": settingsDocID}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &models.HoursSettings{ID: settingsDocID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading hours settings: %w", err)
	}
	return &settings, nil
}

// ReplaceOpening swaps the opening rule list, minting ids for new rules.
func (r *mongoHoursRepo) ReplaceOpening(ctx context.Context, rules []models.BusinessHoursRule) (*models.HoursSettings, error) {
	return r.replaceList(ctx, "opening", rules)
}

// ReplaceClosing swaps the closing rule list, minting ids for new rules.
func (r *mongoHoursRepo) ReplaceClosing(ctx context.Context, rules []models.BusinessHoursRule) (*models.HoursSettings, error) {
	return r.replaceList(ctx, "closing", rules)
}

func (r *mongoHoursRepo) replaceList(ctx context.Context, field string, rules []models.BusinessHoursRule) (*models.HoursSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rules == nil {
		rules = []models.BusinessHoursRule{}
	}
	for i := range rules {
		if rules[i].ID == "" {
			rules[i].ID = uuid.New().String()
		}
	}

	filter := bson.M{"id": settingsDocID}
	update := bson.M{"$set": bson.M{field: rules}, "$setOnInsert": bson.M{"id": settingsDocID}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return nil, fmt.Errorf("error replacing %s rules: %w", field, err)
	}
	return r.Get(ctx)
}
