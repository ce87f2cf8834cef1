package notifier

import (
	"encoding/json"
	"log"

	"github.com/hostellink/backend/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Notifier consumes reservation and payment lifecycle events and emits the
// user-facing notifications for them. Delivery channels (email/SMS) are not
// wired yet, so intents are logged.
type Notifier struct{}

func New() *Notifier {
	return &Notifier{}
}

// Start listens for messages until the channel closes.
func (n *Notifier) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			n.handleMessage(msg)
		}
		log.Println("[Notifier] channel closed, stopping")
	}()
}

func (n *Notifier) handleMessage(msg amqp.Delivery) {
	switch msg.RoutingKey {
	case "reservation.created":
		var reservation models.Reservation
		if err := json.Unmarshal(msg.Body, &reservation); err != nil {
			log.Printf("[Notifier] failed to unmarshal reservation: %v", err)
			msg.Nack(false, false)
			return
		}
		log.Printf("[Notifier] reservation %s created for student %s, deposit %d due by %s",
			reservation.ID, reservation.StudentID, reservation.DepositAmount,
			reservation.ExpiresAt.Format("2006-01-02 15:04"))

	case "payment.succeeded":
		var payload struct {
			ProviderRef string `json:"provider_ref"`
			Amount      int64  `json:"amount"`
		}
		if err := json.Unmarshal(msg.Body, &payload); err != nil {
			log.Printf("[Notifier] failed to unmarshal payment event: %v", err)
			msg.Nack(false, false)
			return
		}
		log.Printf("[Notifier] deposit received for %s, amount %d", payload.ProviderRef, payload.Amount)

	default:
		log.Printf("[Notifier] ignoring event %s", msg.RoutingKey)
	}

	msg.Ack(false)
}
