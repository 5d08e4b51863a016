package settings

import (
	"context"
	"sefasevim-service/internal/app/contracts"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettingsMongoRepository struct {
	Collection *mongo.Collection
}

func NewSettingsMongoRepository(db *mongo.Client, dbName string) contracts.SettingsRepository {
	return &SettingsMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSettings),
	}
}

func (r *SettingsMongoRepository) FindWorkingHours(ctx context.Context) (*models.WorkingHoursDocument, error) {
	var document models.WorkingHoursDocument
	err := r.Collection.FindOne(ctx, bson.M{"_id": constvars.SettingsDocumentWorkingHours}).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &document, nil
}

func (r *SettingsMongoRepository) ReplaceWorkingHours(ctx context.Context, document *models.WorkingHoursDocument) error {
	document.ID = constvars.SettingsDocumentWorkingHours
	filter := bson.M{"_id": constvars.SettingsDocumentWorkingHours}

	_, err := r.Collection.ReplaceOne(ctx, filter, document, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
