package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Subscriber receives site tour events on a private queue bound to the
// events exchange. Every subscribing process gets its own copy of each
// event; the queue is deleted when the connection closes.
type Subscriber struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger
}

func NewSubscriber(cfg Config, logger *slog.Logger) (*Subscriber, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	queue, err := declarePrivateQueue(ch, cfg)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger = logger.With("component", "subscriber")
	logger.Info("subscribed to site tour events", "exchange", cfg.Exchange, "queue", queue)

	return &Subscriber{
		conn:    conn,
		channel: ch,
		queue:   queue,
		logger:  logger,
	}, nil
}

func declarePrivateQueue(ch *amqp.Channel, cfg Config) (string, error) {
	if err := declareExchange(ch, cfg.Exchange); err != nil {
		return "", err
	}

	q, err := ch.QueueDeclare(
		"",
		false,
		true,
		true,
		false,
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return "", fmt.Errorf("bind queue: %w", err)
	}
	return q.Name, nil
}

// Run delivers each site tour event to handle until ctx is done. It returns
// nil on cancellation and an error when the broker closes the channel.
func (s *Subscriber) Run(ctx context.Context, handle func(SiteToursMessage)) error {
	deliveries, err := s.channel.Consume(s.queue, "", true, true, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			dispatchSiteTours(s.logger, d.Body, handle)
		}
	}
}

func (s *Subscriber) Close() error {
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// dispatchSiteTours decodes body and passes it on. Undecodable messages and
// other actions are dropped.
func dispatchSiteTours(logger *slog.Logger, body []byte, handle func(SiteToursMessage)) bool {
	var msg SiteToursMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		logger.Warn("dropping undecodable event", "error", err)
		return false
	}
	if msg.Action != ActionSiteToursUpdated || msg.SiteID == "" {
		logger.Debug("ignoring event", "action", msg.Action)
		return false
	}
	handle(msg)
	return true
}
