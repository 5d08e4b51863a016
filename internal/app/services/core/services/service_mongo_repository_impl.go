package services

import (
	"context"
	"sefasevim-service/internal/app/contracts"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ServiceMongoRepository struct {
	Collection *mongo.Collection
}

func NewServiceMongoRepository(db *mongo.Client, dbName string) contracts.ServiceRepository {
	return &ServiceMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionServices),
	}
}

func (r *ServiceMongoRepository) Create(ctx context.Context, service *models.Service) (string, error) {
	result, err := r.Collection.InsertOne(ctx, service)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ServiceMongoRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	services := make([]models.Service, 0)
	if err := cursor.All(ctx, &services); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return services, nil
}

func (r *ServiceMongoRepository) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	objectID, err := primitive.ObjectIDFromHex(serviceID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var service models.Service
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&service)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &service, nil
}

func (r *ServiceMongoRepository) Update(ctx context.Context, service *models.Service) error {
	filter := bson.M{"_id": service.ID}
	update := bson.M{"$set": bson.M{
		"title":       service.Title,
		"description": service.Description,
		"icon":        service.Icon,
		"order":       service.Order,
		"updated_at":  service.UpdatedAt,
	}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrResourceNotFound(mongo.ErrNoDocuments)
	}
	return nil
}

func (r *ServiceMongoRepository) Delete(ctx context.Context, serviceID string) error {
	objectID, err := primitive.ObjectIDFromHex(serviceID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrResourceNotFound(mongo.ErrNoDocuments)
	}
	return nil
}
