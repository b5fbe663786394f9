package mongodb

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/minimart-api/pkg/config"
)

// Client es el dueño del mongo.Client compartido por todos los repositorios.
// El cliente del driver ya es thread-safe y con pool interno; aquí solo se
// garantiza que se conecta una vez y se cierra una vez.
type Client struct {
	cfg config.MongoConfig

	connectOnce sync.Once
	closeOnce   sync.Once
	connErr     error
	client      *mongo.Client
	db          *mongo.Database
}

// NewClient construye el proveedor de conexión; no toca la red hasta Connect.
func NewClient(cfg config.MongoConfig) *Client {
	return &Client{cfg: cfg}
}

// Connect establece la conexión y verifica con un ping. Idempotente: llamadas
// concurrentes o repetidas comparten el resultado del primer intento.
func (c *Client) Connect(ctx context.Context) error {
	c.connectOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, c.cfg.ConnTimeout)
		defer cancel()

		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(c.cfg.URI))
		if err != nil {
			c.connErr = fmt.Errorf("mongodb connect: %w", err)
			return
		}
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			_ = cl.Disconnect(context.Background())
			c.connErr = fmt.Errorf("mongodb ping: %w", err)
			return
		}

		c.client = cl
		c.db = cl.Database(c.cfg.Database)
		log.Info().Str("database", c.cfg.Database).Msg("conectado a MongoDB")
	})
	return c.connErr
}

// Database devuelve el handle a la base lógica. Requiere Connect previo.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Close cierra el cliente. Idempotente y seguro aunque Connect nunca se haya
// llamado o haya fallado.
func (c *Client) Close(ctx context.Context) error {
	var err error
	c.closeOnce.Do(func() {
		if c.client != nil {
			err = c.client.Disconnect(ctx)
			log.Info().Msg("conexión a MongoDB cerrada")
		}
	})
	return err
}

// EnsureIndexes crea los índices que el dominio exige: username único en la
// colección users. La unicidad la arbitra el storage, no la aplicación.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	if c.db == nil {
		return fmt.Errorf("mongodb: EnsureIndexes requiere una conexión activa")
	}
	_, err := c.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("crear índice único users.username: %w", err)
	}
	return nil
}
