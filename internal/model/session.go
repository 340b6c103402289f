package model

import "time"

// Decision is the classified next action for one feedback turn.
type Decision string

const (
	DecisionSearchAgain Decision = "search_again"
	DecisionRefine      Decision = "refine"
	DecisionEnd         Decision = "end"
)

// SessionStatus tracks whether a session still accepts feedback.
type SessionStatus string

const (
	StatusActive     SessionStatus = "active"
	StatusTerminated SessionStatus = "terminated"
)

// Message is one turn of conversation history passed to the language model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is the state threaded through the search/summarize/feedback loop.
// It is owned and mutated exclusively by the session controller.
type Session struct {
	ID           string        `json:"session_id"`
	Status       SessionStatus `json:"status"`
	Request      SearchRequest `json:"request"`
	RawResults   string        `json:"-"`
	Hotels       []Hotel       `json:"hotels"`
	Summary      string        `json:"summary"`
	Filters      []string      `json:"filters,omitempty"`
	History      []Message     `json:"-"`
	LastFeedback string        `json:"-"`
	Turns        int           `json:"turns"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Clone returns a snapshot safe to serialize outside the controller's lock.
func (s *Session) Clone() *Session {
	c := *s
	c.Hotels = append([]Hotel(nil), s.Hotels...)
	c.Filters = append([]string(nil), s.Filters...)
	c.History = append([]Message(nil), s.History...)
	return &c
}

// FeedbackRequest carries one line of free-text feedback for a session.
type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}
