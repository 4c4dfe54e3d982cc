package models

import (
	"strings"
	"time"
)

type DeadLetter struct {
	OriginalRoutingKey string    `json:"originalRoutingKey"`
	Queue              string    `json:"queue"`
	Body               string    `json:"body"`
	Error              string    `json:"error"`
	Timestamp          time.Time `json:"timestamp"`
	Attempts           int       `json:"attempts"`
}

// DeadLetterKey maps "create.delivery" to "create.deadletter".
func DeadLetterKey(routingKey string) string {
	verb, _, _ := strings.Cut(routingKey, ".")
	if verb == "" {
		verb = "unknown"
	}
	return verb + "." + DeadLetterSubject
}
