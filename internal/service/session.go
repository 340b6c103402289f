package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"hotelfinder/internal/model"
	"hotelfinder/internal/repository"
	"hotelfinder/internal/scrape"
)

var (
	// ErrSessionNotFound is returned for feedback against an unknown session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionTerminated is returned for feedback against an ended session.
	ErrSessionTerminated = errors.New("session already terminated")
)

// TurnResult reports the outcome of one feedback turn.
type TurnResult struct {
	Decision model.Decision `json:"decision"`
	Session  *model.Session `json:"session"`
}

// SessionController owns the search -> summarize -> feedback loop and every
// session state transition. Sessions are independent: each is keyed by its
// own identifier and locked so at most one turn is in flight per session.
type SessionController struct {
	fetcher    scrape.Fetcher
	classifier *IntentClassifier
	params     *ParameterExtractor
	filters    *FilterExtractor
	summary    *SummaryGenerator
	repo       *repository.PostgresRepository // optional, may be nil
	maxResults int
	maxTurns   int

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	mu      sync.Mutex
	session *model.Session
}

// NewSessionController creates the controller with its collaborators. repo
// may be nil when telemetry logging is disabled.
func NewSessionController(
	fetcher scrape.Fetcher,
	classifier *IntentClassifier,
	params *ParameterExtractor,
	filters *FilterExtractor,
	summary *SummaryGenerator,
	repo *repository.PostgresRepository,
	maxResults, maxTurns int,
) *SessionController {
	return &SessionController{
		fetcher:    fetcher,
		classifier: classifier,
		params:     params,
		filters:    filters,
		summary:    summary,
		repo:       repo,
		maxResults: maxResults,
		maxTurns:   maxTurns,
		sessions:   make(map[string]*sessionEntry),
	}
}

// Start validates the request, runs the initial search and summarization, and
// registers the new session. Validation failures surface before any scrape is
// issued.
func (c *SessionController) Start(ctx context.Context, req model.SearchRequest) (*model.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sess := &model.Session{
		ID:        uuid.NewString(),
		Status:    model.StatusActive,
		Request:   req,
		CreatedAt: time.Now(),
	}

	hotels, rendered, err := c.runSearch(ctx, sess.ID, req)
	if err != nil {
		return nil, err
	}

	summaryText, err := c.summary.Summarize(ctx, req, rendered, nil, nil)
	if err != nil {
		return nil, err
	}

	sess.Hotels = hotels
	sess.RawResults = rendered
	sess.Summary = summaryText
	sess.History = append(sess.History, model.Message{Role: "assistant", Content: summaryText})

	c.mu.Lock()
	c.sessions[sess.ID] = &sessionEntry{session: sess}
	c.mu.Unlock()

	log.Printf("Session %s started: %s %s -> %s, %d adults, %d hotels",
		sess.ID, req.Location, req.CheckInDate, req.CheckOutDate, req.NumAdults, len(hotels))

	return sess.Clone(), nil
}

// Get returns a snapshot of the session.
func (c *SessionController) Get(id string) (*model.Session, error) {
	entry, err := c.lookup(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.session.Clone(), nil
}

// Feedback runs one AwaitingFeedback transition: classify the feedback once,
// then act on exactly that decision. Failures leave the session state as it
// was before the turn, so the same turn can be retried.
func (c *SessionController) Feedback(ctx context.Context, id, feedback string) (*TurnResult, error) {
	entry, err := c.lookup(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	sess := entry.session
	if sess.Status == model.StatusTerminated {
		return nil, ErrSessionTerminated
	}

	decision, err := c.classifier.Classify(ctx, feedback, sess.History)
	if err != nil {
		return nil, err
	}

	c.logFeedback(sess.ID, feedback, decision)

	switch decision {
	case model.DecisionEnd:
		c.commitTurn(sess, feedback, "")
		c.terminate(sess, "user is satisfied")

	case model.DecisionSearchAgain:
		update, err := c.params.Extract(ctx, feedback)
		if err != nil {
			return nil, err
		}
		newFilters, err := c.filters.Extract(ctx, feedback)
		if err != nil {
			return nil, err
		}

		merged := update.Apply(sess.Request)
		hotels, rendered, err := c.runSearch(ctx, sess.ID, merged)
		if err != nil {
			return nil, err
		}
		summaryText, err := c.summary.Summarize(ctx, merged, rendered, newFilters, sess.History)
		if err != nil {
			return nil, err
		}

		sess.Request = merged
		sess.Filters = newFilters
		sess.Hotels = hotels
		sess.RawResults = rendered
		c.commitTurn(sess, feedback, summaryText)

	case model.DecisionRefine:
		newFilters, err := c.filters.Extract(ctx, feedback)
		if err != nil {
			return nil, err
		}

		// Re-summarize the existing results under the new filters; no scrape.
		summaryText, err := c.summary.Summarize(ctx, sess.Request, sess.RawResults, newFilters, sess.History)
		if err != nil {
			return nil, err
		}

		sess.Filters = newFilters
		c.commitTurn(sess, feedback, summaryText)
	}

	if sess.Status == model.StatusActive && sess.Turns >= c.maxTurns {
		c.terminate(sess, "turn limit reached")
	}

	return &TurnResult{Decision: decision, Session: sess.Clone()}, nil
}

// runSearch builds the search URL, fetches the page and extracts records.
// It mutates nothing; callers commit the results on success.
func (c *SessionController) runSearch(ctx context.Context, sessionID string, req model.SearchRequest) ([]model.Hotel, string, error) {
	target := scrape.SearchURL(req)

	start := time.Now()
	raw, err := c.fetcher.FetchText(ctx, target)
	if err != nil {
		return nil, "", err
	}
	took := time.Since(start).Milliseconds()

	hotels := scrape.ExtractHotels(raw, c.maxResults)
	if len(hotels) == 0 {
		log.Printf("Session %s: no hotel records extracted for %s", sessionID, req.Location)
	}

	c.logSearchTurn(sessionID, req, len(hotels), int(took))

	return hotels, scrape.RenderMarkdown(hotels), nil
}

// commitTurn applies the per-turn bookkeeping once every fallible step of the
// turn has succeeded.
func (c *SessionController) commitTurn(sess *model.Session, feedback, summaryText string) {
	sess.LastFeedback = feedback
	sess.History = append(sess.History, model.Message{Role: "user", Content: feedback})
	if summaryText != "" {
		sess.Summary = summaryText
		sess.History = append(sess.History, model.Message{Role: "assistant", Content: summaryText})
	}
	sess.Turns++
}

func (c *SessionController) terminate(sess *model.Session, reason string) {
	sess.Status = model.StatusTerminated
	log.Printf("Session %s terminated after %d turn(s): %s", sess.ID, sess.Turns, reason)
}

func (c *SessionController) lookup(id string) (*sessionEntry, error) {
	c.mu.RLock()
	entry, ok := c.sessions[id]
	c.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry, nil
}

// Telemetry logging is fire-and-forget; a failed insert never fails a turn.

func (c *SessionController) logSearchTurn(sessionID string, req model.SearchRequest, resultCount, tookMs int) {
	if c.repo == nil {
		return
	}
	go func() {
		if err := c.repo.LogSearchTurn(context.Background(), sessionID, req, resultCount, tookMs); err != nil {
			log.Printf("Warning: failed to log search turn: %v", err)
		}
	}()
}

func (c *SessionController) logFeedback(sessionID, feedback string, decision model.Decision) {
	if c.repo == nil {
		return
	}
	go func() {
		if err := c.repo.LogFeedback(context.Background(), sessionID, feedback, decision); err != nil {
			log.Printf("Warning: failed to log feedback: %v", err)
		}
	}()
}
