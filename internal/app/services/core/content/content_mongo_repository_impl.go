package content

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

type ContentMongoRepository struct {
	Collection *mongo.Collection
}

func NewContentMongoRepository(db *mongo.Client, dbName string) contracts.ContentRepository {
	return &ContentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionContent),
	}
}

func (r *ContentMongoRepository) FindBySection(ctx context.Context, section string) (*models.ContentSection, error) {
	var content models.ContentSection
	err := r.Collection.FindOne(ctx, bson.M{"_id": section}).Decode(&content)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &content, nil
}

func (r *ContentMongoRepository) Upsert(ctx context.Context, content *models.ContentSection) error {
	filter := bson.M{"_id": content.Section}
	update := bson.M{"$set": bson.M{
		"fields":     content.Fields,
		"updated_at": content.UpdatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
