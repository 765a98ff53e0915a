package event

import (
	"context"
	"time"
)

const (
	ActionCreated  = "created"
	ActionModified = "modified"
	ActionDeleted  = "deleted"
)

type RecordChangedEvent struct {
	Resource  string      `json:"resource"`
	Action    string      `json:"action"`
	RecordID  int64       `json:"recordId"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func (e RecordChangedEvent) RoutingKey() string {
	return e.Resource + "." + e.Action
}

type Publisher interface {
	PublishRecordChanged(ctx context.Context, event RecordChangedEvent) error
}
