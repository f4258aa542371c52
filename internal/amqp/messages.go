package amqp

import (
	"encoding/json"
	"time"
)

// ReportWrittenMessage announces that the composer persisted a report. The
// audit worker consumes these and records them in the report log.
type ReportWrittenMessage struct {
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	WrittenAt time.Time `json:"written_at"`
}

// NewReportWrittenMessage creates a report-written event for a sink write.
func NewReportWrittenMessage(name, kind string) *ReportWrittenMessage {
	return &ReportWrittenMessage{
		Name:      name,
		Kind:      kind,
		WrittenAt: time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ReportWrittenMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportWrittenMessageFromJSON creates a message from JSON bytes
func ReportWrittenMessageFromJSON(data []byte) (*ReportWrittenMessage, error) {
	var msg ReportWrittenMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
