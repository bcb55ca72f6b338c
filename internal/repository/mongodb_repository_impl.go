package repository

import (
	"context"

	"github.com/abcall/incident-query-service/internal/domain"
	"github.com/abcall/incident-query-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIncidentRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBIncidentRepository(db *mongo.Database) IncidentRepository {
	return &MongoDBIncidentRepositoryImpl{db: db}
}

func (r *MongoDBIncidentRepositoryImpl) GetIncidentsByReporter(ctx context.Context, clientID string, reporterID string) (data []domain.Incident, err error) {
	filter := bson.D{{Key: "client_id", Value: clientID}, {Key: "reported_by", Value: reporterID}}
	opts := options.Find().SetSort(bson.D{{Key: "last_modified", Value: -1}})

	cursor, err := r.db.Collection("incidents").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetIncidentsByReporter").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetIncidentsByReporter").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBIncidentRepositoryImpl) GetIncidentsByAssignee(ctx context.Context, clientID string, assigneeID string, offset int64, limit int64) (data []domain.Incident, err error) {
	filter := bson.D{{Key: "client_id", Value: clientID}, {Key: "assigned_to", Value: assigneeID}}
	opts := options.Find().SetSort(bson.D{{Key: "last_modified", Value: -1}})

	if limit != 0 {
		opts = opts.SetSkip(offset).SetLimit(limit)
	}

	cursor, err := r.db.Collection("incidents").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetIncidentsByAssignee").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetIncidentsByAssignee").Msg("")
		return
	}

	return data, nil
}

// CountIncidentsByAssignee uses the same filter as GetIncidentsByAssignee. The
// two run as independent queries with no cross-call snapshot, so the count may
// lag the fetched page under concurrent writes.
func (r *MongoDBIncidentRepositoryImpl) CountIncidentsByAssignee(ctx context.Context, clientID string, assigneeID string) (count int64, err error) {
	filter := bson.D{{Key: "client_id", Value: clientID}, {Key: "assigned_to", Value: assigneeID}}

	count, err = r.db.Collection("incidents").CountDocuments(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountIncidentsByAssignee").Msg("")
		return 0, err
	}

	return
}

func (r *MongoDBIncidentRepositoryImpl) GetIncidentsByClient(ctx context.Context, clientID string) (data []domain.Incident, err error) {
	filter := bson.D{{Key: "client_id", Value: clientID}}
	opts := options.Find().SetSort(bson.D{{Key: "last_modified", Value: -1}})

	cursor, err := r.db.Collection("incidents").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetIncidentsByClient").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetIncidentsByClient").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBIncidentRepositoryImpl) GetIncidentByID(ctx context.Context, clientID string, incidentID string) (incident domain.Incident, err error) {
	filter := bson.D{{Key: "_id", Value: incidentID}, {Key: "client_id", Value: clientID}}

	err = r.db.Collection("incidents").FindOne(ctx, filter).Decode(&incident)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return incident, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetIncidentByID").Msg("")
		return incident, err
	}

	return incident, nil
}

func (r *MongoDBIncidentRepositoryImpl) GetIncidentHistory(ctx context.Context, clientID string, incidentID string) (entries []domain.HistoryEntry, err error) {
	filter := bson.D{{Key: "client_id", Value: clientID}, {Key: "incident_id", Value: incidentID}}
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})

	cursor, err := r.db.Collection("incident_history").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetIncidentHistory").Msg("")
		return
	}

	if err = cursor.All(ctx, &entries); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetIncidentHistory").Msg("")
		return
	}

	return entries, nil
}
