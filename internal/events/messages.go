package events

import (
	"encoding/json"
	"time"

	"recurrence-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OccurrenceMaterializedMessage announces that a recurrence occurrence was written to the ledger
type OccurrenceMaterializedMessage struct {
	RecurrenceID  uuid.UUID       `json:"recurrence_id"`
	TransactionID uuid.UUID       `json:"transaction_id"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Timestamp     time.Time       `json:"timestamp"`
}

// NewOccurrenceMaterializedMessage builds the message for a transaction created from a recurrence
func NewOccurrenceMaterializedMessage(transaction *models.Transaction) *OccurrenceMaterializedMessage {
	msg := &OccurrenceMaterializedMessage{
		TransactionID: transaction.ID,
		Date:          models.DateOf(transaction.Date).Format(models.DateLayout),
		Amount:        transaction.Amount,
		Currency:      transaction.Currency,
		Timestamp:     time.Now().UTC(),
	}
	if transaction.RecurrenceID != nil {
		msg.RecurrenceID = *transaction.RecurrenceID
	}
	return msg
}

func (m *OccurrenceMaterializedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func OccurrenceMaterializedMessageFromJSON(data []byte) (*OccurrenceMaterializedMessage, error) {
	var msg OccurrenceMaterializedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
