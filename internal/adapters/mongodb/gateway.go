package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/bft-labs/stringsaver/internal/domain"
	"github.com/bft-labs/stringsaver/internal/ports"
)

var _ ports.Gateway = (*Gateway)(nil)

// Gateway implements ports.Gateway for a single MongoDB collection.
type Gateway struct {
	client     *Client
	database   string
	collection string
	logger     ports.Logger
}

// NewGateway binds a gateway to client and the database/collection in cfg.
func NewGateway(client *Client, cfg Config, logger ports.Logger) *Gateway {
	return &Gateway{
		client:     client,
		database:   cfg.Database,
		collection: cfg.Collection,
		logger:     logger,
	}
}

// Connect opens the driver session and pings the primary so that an
// unreachable endpoint fails here rather than on first use.
func (g *Gateway) Connect(ctx context.Context) error {
	conn, err := mongo.Connect(ctx, g.client.opts)
	if err != nil {
		return domain.NewStorageError(domain.OpConnect, err)
	}
	if err := conn.Ping(ctx, readpref.Primary()); err != nil {
		if derr := conn.Disconnect(ctx); derr != nil {
			g.logger.Debug("disconnect after failed ping", ports.Err(derr))
		}
		return domain.NewStorageError(domain.OpConnect, err)
	}
	g.client.conn = conn
	g.logger.Debug("connected",
		ports.String("database", g.database),
		ports.String("collection", g.collection),
	)
	return nil
}

// InsertOne writes record into the configured collection.
func (g *Gateway) InsertOne(ctx context.Context, record any) error {
	coll, err := g.coll()
	if err != nil {
		return domain.NewStorageError(domain.OpInsert, err)
	}
	res, err := coll.InsertOne(ctx, record)
	if err != nil {
		return domain.NewStorageError(domain.OpInsert, err)
	}
	g.logger.Debug("inserted", ports.Any("id", res.InsertedID))
	return nil
}

// FindOne returns the first document matching filter, or nil if none does.
func (g *Gateway) FindOne(ctx context.Context, filter domain.Filter, sort *domain.Sort) (domain.Document, error) {
	coll, err := g.coll()
	if err != nil {
		return nil, domain.NewStorageError(domain.OpFind, err)
	}

	opts := options.FindOne()
	if sort != nil {
		opts.SetSort(bsonSort(sort))
	}

	var doc bson.M
	err = coll.FindOne(ctx, bsonFilter(filter), opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStorageError(domain.OpFind, err)
	}
	return domain.Document(doc), nil
}

// Close disconnects the driver session.
func (g *Gateway) Close(ctx context.Context) error {
	if g.client.conn == nil {
		return domain.NewStorageError(domain.OpClose, mongo.ErrClientDisconnected)
	}
	if err := g.client.conn.Disconnect(ctx); err != nil {
		return domain.NewStorageError(domain.OpClose, err)
	}
	g.client.conn = nil
	g.logger.Debug("disconnected")
	return nil
}

func (g *Gateway) coll() (*mongo.Collection, error) {
	if g.client.conn == nil {
		return nil, mongo.ErrClientDisconnected
	}
	return g.client.conn.Database(g.database).Collection(g.collection), nil
}

func bsonFilter(f domain.Filter) bson.M {
	m := bson.M{}
	for k, v := range f {
		m[k] = v
	}
	return m
}

func bsonSort(s *domain.Sort) bson.D {
	dir := 1
	if s.Descending {
		dir = -1
	}
	return bson.D{{Key: s.Field, Value: dir}}
}
