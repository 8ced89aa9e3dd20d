package practice

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/felixgeelhaar/algodrill/internal/analyzer"
	"github.com/felixgeelhaar/algodrill/internal/answer"
	"github.com/felixgeelhaar/algodrill/internal/catalog"
	"github.com/felixgeelhaar/algodrill/internal/domain"
	"github.com/felixgeelhaar/algodrill/internal/generator"
)

// Options configures a Service
type Options struct {
	Sizes    catalog.Sizes
	Seed     int64 // seeds the per-problem seeds; 0 uses the clock
	Language domain.Language
	Store    HistoryStore // optional
	Logger   *slog.Logger
	Now      func() time.Time
}

// Service drives one practice session at a time
type Service struct {
	registry *catalog.Registry
	analyzer *analyzer.Analyzer
	sizes    catalog.Sizes
	seeds    *rand.Rand
	store    HistoryStore
	logger   *slog.Logger
	now      func() time.Time

	language domain.Language
	current  *Session
}

// NewService creates a practice service
func NewService(registry *catalog.Registry, an *analyzer.Analyzer, opts Options) *Service {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	lang := opts.Language
	if lang == "" {
		lang = domain.LanguageJava
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	sizes := opts.Sizes
	if sizes == (catalog.Sizes{}) {
		sizes = catalog.DefaultSizes()
	}

	return &Service{
		registry: registry,
		analyzer: an,
		sizes:    sizes,
		seeds:    rand.New(rand.NewSource(seed)),
		store:    opts.Store,
		logger:   logger,
		now:      now,
		language: lang,
	}
}

// Current returns the active session, or nil
func (s *Service) Current() *Session {
	return s.current
}

// Entry returns the catalog entry of the active session
func (s *Service) Entry() (*catalog.Entry, error) {
	if s.current == nil {
		return nil, domain.ErrNoProblem
	}
	return s.registry.Get(s.current.AlgorithmID)
}

// Start generates a problem for algorithm id
func (s *Service) Start(id string) (*Session, error) {
	return s.StartSeeded(id, s.nextSeed())
}

// StartSeeded generates the problem for id that seed produces
func (s *Service) StartSeeded(id string, seed int64) (*Session, error) {
	inst, err := s.registry.NewInstance(id, generator.New(seed), s.sizes)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", id, err)
	}

	s.current = NewSession(id, seed, inst, s.language, s.now())
	s.logger.Debug("problem generated", "algorithm", id, "seed", seed, "session", s.current.ID.String())
	return s.current, nil
}

// NewProblem replaces the instance with a fresh one for the same algorithm
func (s *Service) NewProblem() (*Session, error) {
	if s.current == nil {
		return nil, domain.ErrNoProblem
	}
	return s.Start(s.current.AlgorithmID)
}

// Select switches to algorithm id and generates a problem
func (s *Service) Select(id string) (*Session, error) {
	return s.Start(id)
}

// Cycle moves delta positions through the catalog list and starts that algorithm
func (s *Service) Cycle(delta int) (*Session, error) {
	entries := s.registry.List()
	if len(entries) == 0 {
		return nil, domain.ErrAlgorithmNotFound
	}

	idx := 0
	if s.current != nil {
		for i, e := range entries {
			if e.ID() == s.current.AlgorithmID {
				idx = i
				break
			}
		}
		idx += delta
	}
	idx = ((idx % len(entries)) + len(entries)) % len(entries)
	return s.Start(entries[idx].ID())
}

// Question returns the question text for the active problem
func (s *Service) Question() (string, error) {
	if s.current == nil {
		return "", domain.ErrNoProblem
	}
	return s.registry.Question(s.current.AlgorithmID, s.current.Instance)
}

func (s *Service) solve() (domain.Answer, error) {
	if s.current.answer != nil {
		return *s.current.answer, nil
	}
	ans, err := s.registry.Solve(s.current.AlgorithmID, s.current.Instance)
	if err != nil {
		return domain.Answer{}, err
	}
	s.current.answer = &ans
	return ans, nil
}

// Check compares input with the canonical answer
func (s *Service) Check(input string) (answer.Verdict, error) {
	if s.current == nil {
		return answer.Verdict{}, domain.ErrNoProblem
	}
	entry, err := s.Entry()
	if err != nil {
		return answer.Verdict{}, err
	}
	ans, err := s.solve()
	if err != nil {
		return answer.Verdict{}, fmt.Errorf("check answer: %w", err)
	}
	if ans.Text == catalog.AnswerLoading {
		return answer.Verdict{}, fmt.Errorf("check %s: %w", s.current.AlgorithmID, domain.ErrNoAnswer)
	}

	v := answer.Check(entry.Category(), input, ans.Text)
	s.current.Attempts++
	if v.Correct {
		s.current.Correct = true
	}
	s.current.LastVerdict = &v
	s.touch()

	s.logger.Debug("answer checked", "algorithm", s.current.AlgorithmID, "correct", v.Correct, "attempts", s.current.Attempts)
	return v, nil
}

// Reveal returns the canonical answer and marks it as seen
func (s *Service) Reveal() (domain.Answer, error) {
	if s.current == nil {
		return domain.Answer{}, domain.ErrNoProblem
	}
	ans, err := s.solve()
	if err != nil {
		return domain.Answer{}, fmt.Errorf("reveal answer: %w", err)
	}
	s.current.Revealed = true
	s.touch()
	return ans, nil
}

// Trace returns the worked steps. The steps end in the answer, so showing
// them counts as a reveal.
func (s *Service) Trace() ([]string, error) {
	if s.current == nil {
		return nil, domain.ErrNoProblem
	}
	ans, err := s.solve()
	if err != nil {
		return nil, err
	}
	if len(ans.Trace) > 0 {
		s.current.Revealed = true
		s.touch()
	}
	return ans.Trace, nil
}

// ToggleHint flips hint visibility
func (s *Service) ToggleHint() (bool, error) {
	if s.current == nil {
		return false, domain.ErrNoProblem
	}
	s.current.HintShown = !s.current.HintShown
	return s.current.HintShown, nil
}

// ToggleTrace flips trace visibility
func (s *Service) ToggleTrace() (bool, error) {
	if s.current == nil {
		return false, domain.ErrNoProblem
	}
	s.current.TraceShown = !s.current.TraceShown
	return s.current.TraceShown, nil
}

// ToggleSolution flips reference code visibility
func (s *Service) ToggleSolution() (bool, error) {
	if s.current == nil {
		return false, domain.ErrNoProblem
	}
	s.current.SolutionShown = !s.current.SolutionShown
	return s.current.SolutionShown, nil
}

// Language returns the selected reference code language
func (s *Service) Language() domain.Language {
	return s.language
}

// CycleLanguage advances to the next language the active algorithm has code for
func (s *Service) CycleLanguage() domain.Language {
	next := s.language.Next()
	if entry, err := s.Entry(); err == nil {
		if langs := entry.Algorithm.Languages(); len(langs) > 0 {
			next = langs[0]
			for i, l := range langs {
				if l == s.language {
					next = langs[(i+1)%len(langs)]
					break
				}
			}
		}
	}

	s.language = next
	if s.current != nil {
		s.current.Language = next
	}
	return next
}

// ReferenceCode returns the snippet for the selected language, falling back
// to the first language that has one
func (s *Service) ReferenceCode() (string, domain.Language, error) {
	entry, err := s.Entry()
	if err != nil {
		return "", "", err
	}
	if code, ok := entry.Algorithm.Code(s.language); ok {
		return code, s.language, nil
	}
	if langs := entry.Algorithm.Languages(); len(langs) > 0 {
		code, _ := entry.Algorithm.Code(langs[0])
		return code, langs[0], nil
	}
	return "", "", fmt.Errorf("reference code for %s: %w", entry.ID(), domain.ErrUnsupportedLanguage)
}

// SubmitCode scores code against the active algorithm's rubric
func (s *Service) SubmitCode(code string) (analyzer.Report, error) {
	if s.current == nil {
		return analyzer.Report{}, domain.ErrNoProblem
	}
	rubric, err := s.registry.Rubric(s.current.AlgorithmID)
	if err != nil {
		return analyzer.Report{}, err
	}

	report := s.analyzer.Analyze(code, rubric)
	s.current.LastReport = &report
	s.touch()

	s.logger.Debug("code analyzed", "algorithm", s.current.AlgorithmID, "language", report.Language, "percentage", report.Percentage)
	return report, nil
}

// History returns the persisted records, or nil without a store
func (s *Service) History() ([]*Record, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.ListRecords()
}

// touch updates the timestamp and persists the session when a store is set.
// Storage failures are logged, never surfaced to the learner.
func (s *Service) touch() {
	s.current.UpdatedAt = s.now()
	if s.store == nil || !s.current.Touched() {
		return
	}
	if err := s.store.SaveRecord(s.current.Record()); err != nil {
		s.logger.Warn("failed to save practice record", "session", s.current.ID.String(), "error", err)
	}
}

func (s *Service) nextSeed() int64 {
	for {
		if seed := s.seeds.Int63(); seed != 0 {
			return seed
		}
	}
}
