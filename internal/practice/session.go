package practice

import (
	"time"

	"github.com/felixgeelhaar/algodrill/internal/analyzer"
	"github.com/felixgeelhaar/algodrill/internal/answer"
	"github.com/felixgeelhaar/algodrill/internal/domain"
)

// Session is one generated problem and the learner's progress on it
type Session struct {
	ID          domain.SessionID
	AlgorithmID string
	Seed        int64
	Instance    domain.Instance

	// Progress
	Attempts      int
	Correct       bool
	Revealed      bool
	HintShown     bool
	TraceShown    bool
	SolutionShown bool
	Language      domain.Language

	LastVerdict *answer.Verdict
	LastReport  *analyzer.Report

	// Timestamps
	CreatedAt time.Time
	UpdatedAt time.Time

	answer *domain.Answer
}

// NewSession creates a session for a generated instance
func NewSession(algorithmID string, seed int64, inst domain.Instance, lang domain.Language, now time.Time) *Session {
	return &Session{
		ID:          domain.GenerateSessionID(),
		AlgorithmID: algorithmID,
		Seed:        seed,
		Instance:    inst,
		Language:    lang,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Touched reports whether the learner has interacted with the problem
func (s *Session) Touched() bool {
	return s.Attempts > 0 || s.Revealed || s.LastReport != nil
}

// Record converts the session into a history record
func (s *Session) Record() *Record {
	r := &Record{
		ID:          s.ID.String(),
		AlgorithmID: s.AlgorithmID,
		Seed:        s.Seed,
		Attempts:    s.Attempts,
		Correct:     s.Correct,
		Revealed:    s.Revealed,
		HintShown:   s.HintShown,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.LastReport != nil {
		score := s.LastReport.Percentage
		r.CodeScore = &score
	}
	return r
}

// Record is the persisted outcome of one practice problem
type Record struct {
	ID          string    `json:"id"`
	AlgorithmID string    `json:"algorithm_id"`
	Seed        int64     `json:"seed"`
	Attempts    int       `json:"attempts"`
	Correct     bool      `json:"correct"`
	Revealed    bool      `json:"revealed"`
	HintShown   bool      `json:"hint_shown"`
	CodeScore   *int      `json:"code_score,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
