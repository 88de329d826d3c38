package feedback

import (
	"context"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FeedbackMongoRepository struct {
	Collection *mongo.Collection
}

func NewFeedbackMongoRepository(db *mongo.Client, dbName string) contracts.FeedbackRepository {
	return &FeedbackMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionFeedback),
	}
}

func (repo *FeedbackMongoRepository) CreateFeedback(ctx context.Context, feedbackModel *models.Feedback) (feedbackID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, feedbackModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *FeedbackMongoRepository) FindAll(ctx context.Context, request *requests.Pagination) ([]models.Feedback, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(request.Skip()).
		SetLimit(request.Limit())

	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	feedback := make([]models.Feedback, 0, request.PageSize)
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return feedback, nil
}

func (repo *FeedbackMongoRepository) CountAll(ctx context.Context) (int64, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return total, nil
}

// AverageRating returns 0 when no feedback has been submitted.
func (repo *FeedbackMongoRepository) AverageRating(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "average", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
		}}},
	}

	cursor, err := repo.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Average float64 `bson:"average"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Average, nil
}
