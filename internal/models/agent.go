package models

import "time"

// AgentRole is the closed set of roles the router can dispatch to.
type AgentRole string

const (
	AgentStudent  AgentRole = "student"
	AgentTeacher  AgentRole = "teacher"
	AgentAnalysis AgentRole = "analysis"
	AgentCritique AgentRole = "critique"
)

// AgentRoles lists every dispatchable role.
var AgentRoles = []AgentRole{
	AgentStudent,
	AgentTeacher,
	AgentAnalysis,
	AgentCritique,
}

// IsValidAgentRole reports whether role belongs to the closed role set.
func IsValidAgentRole(role AgentRole) bool {
	for _, r := range AgentRoles {
		if r == role {
			return true
		}
	}
	return false
}

// MessageStatus is the routing lifecycle of an agent message.
// Completed and Failed are terminal.
type MessageStatus string

const (
	MessagePending    MessageStatus = "pending"
	MessageProcessing MessageStatus = "processing"
	MessageCompleted  MessageStatus = "completed"
	MessageFailed     MessageStatus = "failed"
)

// AgentMessage records one routed message and its outcome.
type AgentMessage struct {
	ID        string        `json:"id"`
	From      AgentRole     `json:"from"`
	To        AgentRole     `json:"to"`
	SessionID string        `json:"session_id"`
	Payload   string        `json:"payload"`
	Status    MessageStatus `json:"status"`
	Response  interface{}   `json:"response,omitempty"`
	Error     string        `json:"error,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// RouteResult is what the router hands back to the caller. A handler
// failure is represented here, never propagated as an unhandled fault.
type RouteResult struct {
	Success   bool        `json:"success"`
	MessageID string      `json:"message_id"`
	Response  interface{} `json:"response,omitempty"`
	Error     string      `json:"error,omitempty"`
}
