package kafka

import "time"

// TradeInEvent describes a change in the lifecycle of a trade-in quote.
type TradeInEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	TradeInID      uint      `json:"trade_in_id"`
	DeviceType     string    `json:"device_type"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model"`
	Age            string    `json:"age"`
	Condition      string    `json:"condition"`
	EstimatedValue int64     `json:"estimated_value"`
	Status         string    `json:"status"`
	CustomerName   string    `json:"customer_name,omitempty"`
	CustomerEmail  string    `json:"customer_email,omitempty"`
	CustomerPhone  string    `json:"customer_phone,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeTradeInQuoted    = "tradein.quoted"
	EventTypeTradeInCollected = "tradein.collected"
)

// Kafka topics
const (
	TopicTradeIns = "trade-ins"
)
