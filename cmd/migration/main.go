package main

import (
	"context"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/drivers/database"
	"mindfulness-service/internal/app/drivers/logger"
	"mindfulness-service/internal/pkg/constvars"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig)

	client := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("Failed to disconnect from mongo database")
		}
	}()

	db := client.Database(driverConfig.MongoDB.DbName)
	applied, err := run(ctx, db, log)
	if err != nil {
		log.WithError(err).Fatal("Error executing migration")
	}

	log.WithField("indexes", applied).Info("Migration finished")
}

// run creates every index listed by indexPlan. CreateMany is idempotent for
// identical specs, so reruns are safe.
func run(ctx context.Context, db *mongo.Database, log *logrus.Logger) (int, error) {
	applied := 0
	for _, plan := range indexPlan() {
		names, err := db.Collection(plan.collection).Indexes().CreateMany(ctx, plan.models)
		if err != nil {
			return applied, err
		}
		log.WithFields(logrus.Fields{
			"collection": plan.collection,
			"indexes":    names,
		}).Info("Indexes ensured")
		applied += len(names)
	}
	return applied, nil
}

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

func indexPlan() []collectionIndexes {
	return []collectionIndexes{
		{
			collection: constvars.MongoCollectionUsers,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
				{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_username")},
				{Keys: bson.D{{Key: "role", Value: 1}}, Options: options.Index().SetName("role")},
			},
		},
		{
			collection: constvars.MongoCollectionAssessments,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "completedAt", Value: -1}}, Options: options.Index().SetName("student_history")},
				{Keys: bson.D{{Key: "questionnaireId", Value: 1}, {Key: "severity", Value: 1}}, Options: options.Index().SetName("questionnaire_severity")},
			},
		},
		{
			collection: constvars.MongoCollectionAppointments,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "counselorId", Value: 1}, {Key: "startsAt", Value: 1}}, Options: options.Index().SetName("counselor_schedule")},
				{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "startsAt", Value: 1}}, Options: options.Index().SetName("student_schedule")},
			},
		},
		{
			collection: constvars.MongoCollectionFeedback,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "createdAt", Value: -1}}, Options: options.Index().SetName("recent")},
			},
		},
	}
}
