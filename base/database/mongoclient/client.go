package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/x-xyz/goauction/base/log"
)

const (
	mgSocketTimeout = 60 * time.Second
	connectTimeout  = 10 * time.Second
)

// Config is the `mongo` section of the config file
type Config struct {
	URI                string  `mapstructure:"uri"`
	AuthDBName         string  `mapstructure:"authDBName"`
	DBName             string  `mapstructure:"dbName"`
	EnableSSL          bool    `mapstructure:"enableSSL"`
	SetSafe            bool    `mapstructure:"setSafe"`
	PoolSizeMultiplier float64 `mapstructure:"poolSizeMultiplier"`
	CheckIndex         bool    `mapstructure:"checkIndex"`
}

// Client wraps mongo.Client
type Client struct {
	DbName string
	*mongo.Client
}

// MustConnectMongoClient returns MongoDB connection client if connected successfully, or it will trigger panic
func MustConnectMongoClient(cfg Config) *Client {
	cli, err := ConnectMongoClient(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoURI": cfg.URI, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

// ConnectMongoClient returns mongo driver client
func ConnectMongoClient(cfg Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	logger := log.Log().WithFields(log.Fields{"dbName": cfg.DBName})

	connSetting, err := connstring.Parse(cfg.URI)
	if err != nil {
		logger.WithField("err", err).Error("fail to parse connstring")
		return nil, err
	}
	logger = logger.WithField("mongoHosts", connSetting.Hosts)

	clientOpts := options.Client()
	clientOpts.ApplyURI(cfg.URI)
	clientOpts.SetSocketTimeout(mgSocketTimeout)

	// If AuthSource is not set in connstring, set it to authDBName
	if connSetting.Username != "" && connSetting.AuthSource == "" {
		clientOpts.SetAuth(options.Credential{
			AuthMechanism:           connSetting.AuthMechanism,
			AuthMechanismProperties: connSetting.AuthMechanismProperties,
			Username:                connSetting.Username,
			Password:                connSetting.Password,
			PasswordSet:             connSetting.PasswordSet,
			AuthSource:              cfg.AuthDBName,
		})
	}

	multiplier := cfg.PoolSizeMultiplier
	if multiplier <= 0 {
		multiplier = 2
	}
	// each host keeps its own pool, split the total between them
	poolSize := int(float64(runtime.NumCPU()) * multiplier)
	poolSize = (poolSize + len(connSetting.Hosts) - 1) / len(connSetting.Hosts)
	clientOpts.SetMinPoolSize(uint64(poolSize / 4))
	clientOpts.SetMaxPoolSize(uint64(poolSize))
	logger.WithField("poolSize", poolSize).Info("mongo driver pool size")

	if cfg.EnableSSL {
		clientOpts.SetTLSConfig(&tls.Config{})
	}

	if cfg.SetSafe {
		// Force the server to wait for a majority of members of a replica set to return
		clientOpts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}
	clientOpts.SetRetryWrites(true)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.WithField("err", err).Error("fail to connect mongo db")
		return nil, err
	}

	// Test if mongoDBName is valid
	if _, err := client.Database(cfg.DBName).ListCollectionNames(ctx, bson.D{}); err != nil {
		logger.WithField("err", err).Error("fail to test mongo db")
		return nil, err
	}

	logger.Info("mongo connected")
	return &Client{
		Client: client,
		DbName: cfg.DBName,
	}, nil
}

// Index describes one index EnsureIndexes creates
type Index struct {
	Table  string
	Keys   bson.D
	Unique bool
}

// EnsureIndexes creates the given indexes, existing ones are left untouched
func (c *Client) EnsureIndexes(ctx context.Context, indexes []Index) error {
	for _, idx := range indexes {
		model := mongo.IndexModel{
			Keys:    idx.Keys,
			Options: options.Index().SetUnique(idx.Unique),
		}
		if _, err := c.Database(c.DbName).Collection(idx.Table).Indexes().CreateOne(ctx, model); err != nil {
			log.Log().WithFields(log.Fields{"err": err, "table": idx.Table}).Error("CreateOne index failed")
			return err
		}
	}
	return nil
}
