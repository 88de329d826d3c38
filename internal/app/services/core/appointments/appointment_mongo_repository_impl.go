package appointments

import (
	"context"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (repo *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (appointmentID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, appointmentModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return repo.findOne(ctx, bson.M{"_id": objectID}, nil)
}

func (repo *AppointmentMongoRepository) ExistsBookedSlot(ctx context.Context, counselorID string, startsAt time.Time) (bool, error) {
	filter := bson.M{
		"counselorId": counselorID,
		"startsAt":    startsAt,
		"status":      constvars.AppointmentStatusBooked,
	}
	total, err := repo.Collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBCountDocuments(err)
	}
	return total > 0, nil
}

func (repo *AppointmentMongoRepository) FindUpcomingByCounselorID(ctx context.Context, counselorID string, now time.Time) ([]models.Appointment, error) {
	return repo.findUpcoming(ctx, bson.M{"counselorId": counselorID}, now)
}

func (repo *AppointmentMongoRepository) FindUpcomingByStudentID(ctx context.Context, studentID string, now time.Time) ([]models.Appointment, error) {
	return repo.findUpcoming(ctx, bson.M{"studentId": studentID}, now)
}

func (repo *AppointmentMongoRepository) FindNextByStudentID(ctx context.Context, studentID string, now time.Time) (*models.Appointment, error) {
	filter := bson.M{
		"studentId": studentID,
		"status":    constvars.AppointmentStatusBooked,
		"startsAt":  bson.M{"$gte": now},
	}
	return repo.findOne(ctx, filter, options.FindOne().SetSort(bson.D{{Key: "startsAt", Value: 1}}))
}

func (repo *AppointmentMongoRepository) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrNotFound(nil)
	}
	return nil
}

// CompleteEndedBefore marks every booked appointment that started before the
// cutoff as completed and returns how many changed.
func (repo *AppointmentMongoRepository) CompleteEndedBefore(ctx context.Context, before time.Time) (int64, error) {
	filter := bson.M{
		"status":   constvars.AppointmentStatusBooked,
		"startsAt": bson.M{"$lt": before},
	}
	update := bson.M{"$set": bson.M{"status": constvars.AppointmentStatusCompleted, "updatedAt": time.Now()}}

	result, err := repo.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

// CountByStatus returns the number of appointments per status value.
func (repo *AppointmentMongoRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := repo.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (repo *AppointmentMongoRepository) findUpcoming(ctx context.Context, filter bson.M, now time.Time) ([]models.Appointment, error) {
	filter["status"] = constvars.AppointmentStatusBooked
	filter["startsAt"] = bson.M{"$gte": now}
	findOptions := options.Find().SetSort(bson.D{{Key: "startsAt", Value: 1}})

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) findOne(ctx context.Context, filter bson.M, findOptions *options.FindOneOptions) (*models.Appointment, error) {
	var appointment models.Appointment
	var err error
	if findOptions != nil {
		err = repo.Collection.FindOne(ctx, filter, findOptions).Decode(&appointment)
	} else {
		err = repo.Collection.FindOne(ctx, filter).Decode(&appointment)
	}
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}
