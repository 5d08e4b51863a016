package faqs

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

// The FAQ list lives as a single document in the settings collection; the
// admin panel always replaces the whole list.
type FaqMongoRepository struct {
	Collection *mongo.Collection
}

func NewFaqMongoRepository(db *mongo.Client, dbName string) contracts.FaqRepository {
	return &FaqMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSettings),
	}
}

func (r *FaqMongoRepository) Find(ctx context.Context) (*models.FaqDocument, error) {
	var document models.FaqDocument
	err := r.Collection.FindOne(ctx, bson.M{"_id": constvars.SettingsDocumentFaqs}).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &document, nil
}

func (r *FaqMongoRepository) Replace(ctx context.Context, document *models.FaqDocument) error {
	document.ID = constvars.SettingsDocumentFaqs
	filter := bson.M{"_id": constvars.SettingsDocumentFaqs}

	_, err := r.Collection.ReplaceOne(ctx, filter, document, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
