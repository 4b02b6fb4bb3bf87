// Package mongodb implements ports.Gateway on top of the official MongoDB driver.
package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AppName identifies the tool to the server in connection handshakes.
const AppName = "stringsaver"

// DefaultTimeout bounds connection establishment and server selection.
const DefaultTimeout = 10 * time.Second

// Config locates the collection the gateway reads and writes.
type Config struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

// Client holds driver options bound to a Config and, once connected, the
// driver client itself.
type Client struct {
	opts *options.ClientOptions
	conn *mongo.Client
}

// NewClient builds an unconnected client for cfg.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(AppName).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)
	return &Client{opts: opts}
}
