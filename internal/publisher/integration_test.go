//go:build integration

package publisher

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"newsdesk/internal/domain"
	"newsdesk/testdata/utils"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) config(name string) Config {
	return Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-" + name,
		RoutingKey: "test." + name,
		QueueName:  "test-queue-" + name,
	}
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	pub, err := NewRabbitMQ(s.config("conn"), s.logger)
	s.NoError(err)
	s.NotNil(pub)

	s.NoError(pub.Close())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_RoutingKey() {
	pub, err := NewRabbitMQ(s.config("keys"), s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	s.Equal("test.keys.published", pub.RoutingKey(domain.EventPublished))
	s.Equal("test.keys.unpublished", pub.RoutingKey(domain.EventUnpublished))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_NoQueue() {
	cfg := s.config("noqueue")
	cfg.QueueName = ""

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	article := &domain.Article{ID: 1, TitleOriginal: "x", Status: domain.StatusPublished}
	s.NoError(pub.Publish(s.ctx, domain.NewLifecycleEvent(domain.EventPublished, article, time.Now())))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishPublished() {
	cfg := s.config("published")
	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	article := &domain.Article{
		ID:            42,
		TitleOriginal: "Artist - Song",
		TitleJa:       utils.Ptr("新曲"),
		Link:          "https://example.com/a",
		Status:        domain.StatusPublished,
	}
	event := domain.NewLifecycleEvent(domain.EventPublished, article, time.Now())

	s.Require().NoError(pub.Publish(s.ctx, event))

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)
	s.Equal("application/json", msg.ContentType)
	s.Equal(string(domain.EventPublished), msg.Type)
	s.NotEmpty(msg.MessageId)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
	s.Equal("test.published.published", msg.RoutingKey)

	var received domain.LifecycleEvent
	s.Require().NoError(json.Unmarshal(msg.Body, &received))
	s.Equal(domain.EventPublished, received.Type)
	s.Equal(int64(42), received.ArticleID)
	s.Equal(domain.StatusPublished, received.Status)
	s.Equal("新曲", received.Title)
	s.Nil(received.PostID)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishPosted() {
	cfg := s.config("posted")
	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	article := &domain.Article{ID: 7, TitleOriginal: "x", Status: domain.StatusPosted}
	event := domain.NewLifecycleEvent(domain.EventPosted, article, time.Now())
	event.PostID = utils.Ptr(int64(3))
	event.ExternalID = utils.Ptr("1799")

	s.Require().NoError(pub.Publish(s.ctx, event))

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	var received domain.LifecycleEvent
	s.Require().NoError(json.Unmarshal(msg.Body, &received))
	s.Equal(domain.EventPosted, received.Type)
	s.Equal(int64(3), *received.PostID)
	s.Equal("1799", *received.ExternalID)
	s.False(received.OccurredAt.IsZero())
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
