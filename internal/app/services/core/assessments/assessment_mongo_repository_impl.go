package assessments

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

type AssessmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAssessmentMongoRepository(db *mongo.Client, dbName string) contracts.AssessmentRepository {
	return &AssessmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAssessments),
	}
}

func (repo *AssessmentMongoRepository) CreateAssessment(ctx context.Context, assessmentModel *models.Assessment) (assessmentID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, assessmentModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AssessmentMongoRepository) FindByID(ctx context.Context, assessmentID string) (*models.Assessment, error) {
	objectID, err := primitive.ObjectIDFromHex(assessmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var assessment models.Assessment
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&assessment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assessment, nil
}

func (repo *AssessmentMongoRepository) FindAll(ctx context.Context, request *requests.QueryAssessments) ([]models.Assessment, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "completedAt", Value: -1}}).
		SetSkip(request.Skip()).
		SetLimit(request.Limit())

	cursor, err := repo.Collection.Find(ctx, buildAssessmentsFilter(request), findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	assessments := make([]models.Assessment, 0, request.PageSize)
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return assessments, nil
}

func (repo *AssessmentMongoRepository) CountAll(ctx context.Context, request *requests.QueryAssessments) (int64, error) {
	total, err := repo.Collection.CountDocuments(ctx, buildAssessmentsFilter(request))
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return total, nil
}

func (repo *AssessmentMongoRepository) FindLatestByStudentID(ctx context.Context, studentID string) (*models.Assessment, error) {
	findOptions := options.FindOne().SetSort(bson.D{{Key: "completedAt", Value: -1}})

	var assessment models.Assessment
	err := repo.Collection.FindOne(ctx, bson.M{"studentId": studentID}, findOptions).Decode(&assessment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assessment, nil
}

func (repo *AssessmentMongoRepository) UpdateReportObject(ctx context.Context, assessmentID, objectName string) error {
	objectID, err := primitive.ObjectIDFromHex(assessmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"reportObject": objectName}})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// AggregateSeverityStats groups every stored assessment by questionnaire and
// severity, returning the count and score sum of each group.
func (repo *AssessmentMongoRepository) AggregateSeverityStats(ctx context.Context) ([]models.AssessmentSeverityStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "questionnaireId", Value: "$questionnaireId"},
				{Key: "severity", Value: "$severity"},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "scoreSum", Value: bson.D{{Key: "$sum", Value: "$totalScore"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.questionnaireId", Value: 1}}}},
	}

	cursor, err := repo.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var stats []models.AssessmentSeverityStat
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return stats, nil
}

func buildAssessmentsFilter(request *requests.QueryAssessments) bson.M {
	filter := bson.M{}
	if request.StudentID != "" {
		filter["studentId"] = request.StudentID
	}
	if request.QuestionnaireID != "" {
		filter["questionnaireId"] = request.QuestionnaireID
	}
	return filter
}
