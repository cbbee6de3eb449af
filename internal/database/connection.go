package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func (d *Database) Connect(ctx context.Context, uri, dbName string) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	db := client.Database(dbName)
	d.client = client
	d.users = db.Collection("users")
	d.queries = db.Collection("queries")
	d.buddies = db.Collection("findingbuddies")
	d.gems = db.Collection("hiddengems")

	return nil
}

func (d *Database) Disconnect(ctx context.Context) error {
	if d.client == nil {
		return nil
	}
	return d.client.Disconnect(ctx)
}
