package worker

// ExportNotifyMessage is the WebSocket message protocol relayed to clients
// through redis pub/sub. Field names must stay in sync with client parsing.
type ExportNotifyMessage struct {
	Status        string `json:"status"`
	ResumeID      uint   `json:"resume_id"`
	CorrelationID string `json:"correlation_id"`
	ErrorCode     int    `json:"error_code"`
	ErrorMessage  string `json:"error_message"`
}
