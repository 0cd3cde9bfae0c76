package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"storefront-service/internal/entity"
)

// Notifier forwards an order notification to the linking service.
type Notifier interface {
	Notify(ctx context.Context, token string, notification *entity.TelegramNotification) error
}

// Consumer listens for order status events and forwards a Telegram
// notification for each one. Delivery is best effort: the linking
// service drops messages for customers without a linked chat.
type Consumer struct {
	reader       *kafka.Reader
	notifier     Notifier
	serviceToken string
}

func NewConsumer(reader *kafka.Reader, notifier Notifier, serviceToken string) *Consumer {
	return &Consumer{reader: reader, notifier: notifier, serviceToken: serviceToken}
}

// statusMessages are the per-status notification texts.
var statusMessages = map[entity.OrderStatus]string{
	entity.StatusPending:   "Pedido recebido e aguardando confirmação",
	entity.StatusAccepted:  "Pedido foi aceito pela loja",
	entity.StatusPreparing: "Pedido está sendo preparado",
	entity.StatusReady:     "Pedido está pronto para retirada/entrega",
	entity.StatusCompleted: "Pedido foi finalizado",
	entity.StatusCancelled: "Pedido foi cancelado",
}

// Start runs the consume loop until the context is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error().Msgf("Error reading message: %v", err)
			continue
		}

		c.processMessage(ctx, msg)
	}
}

// processMessage turns one order event into a notification.
func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message) {
	var event entity.OrderEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error().Msgf("Error unmarshalling message: %v", err)
		return
	}
	if event.CustomerID == "" || event.OrderID == "" {
		log.Warn().Msg("Order event missing order or customer id, skipping")
		return
	}

	status := entity.MapStatus(event.Status)
	notification := &entity.TelegramNotification{
		UserID:  event.CustomerID,
		OrderID: event.OrderID,
		Message: fmt.Sprintf("Pedido #%s: %s", shortID(event.OrderID), statusMessages[status]),
	}

	if err := c.notifier.Notify(ctx, c.serviceToken, notification); err != nil {
		log.Error().Msgf("Error forwarding notification for order %s: %v", event.OrderID, err)
	}
}

// shortID keeps the last four characters, matching the order numbers
// customers see in the storefront.
func shortID(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
