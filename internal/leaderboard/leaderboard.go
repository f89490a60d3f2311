// Package leaderboard ranks many resumes against one job description.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Aanishnithin07/FitForge/internal/analysis"
	"github.com/Aanishnithin07/FitForge/internal/logger"
	"github.com/Aanishnithin07/FitForge/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultConcurrency is the number of analyses run in parallel when unset
	DefaultConcurrency = 4
	// MaxCandidates is the largest batch accepted by Rank
	MaxCandidates = 200
	// topMissingCount is how many missing skills an entry lists
	topMissingCount = 3
)

var (
	// ErrNoCandidates is returned when Rank is called with an empty batch
	ErrNoCandidates = errors.New("at least one candidate is required")
	// ErrTooManyCandidates is returned when the batch exceeds MaxCandidates
	ErrTooManyCandidates = fmt.Errorf("at most %d candidates are allowed", MaxCandidates)
)

var validate = validator.New()

// Options configures a Rank call
type Options struct {
	// Concurrency bounds parallel analyses; values below 1 use DefaultConcurrency
	Concurrency int
	Logger      logger.Logger
}

// Rank analyzes every candidate against jdText and returns the entries sorted by
// score, highest first. Equal scores keep the order the candidates were given in.
// Candidates without an ID are assigned one. Cancelling ctx stops scheduling new
// analyses and Rank returns the context error.
func Rank(ctx context.Context, engine analysis.Engine, jdText string, candidates []types.Candidate, opts Options) (*types.Leaderboard, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if len(candidates) > MaxCandidates {
		return nil, ErrTooManyCandidates
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	limit := opts.Concurrency
	if limit < 1 {
		limit = DefaultConcurrency
	}

	batch := make([]types.Candidate, len(candidates))
	for i, c := range candidates {
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("invalid candidate %d: %w", i, err)
		}
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		batch[i] = c
	}

	// each goroutine owns one slot, so no lock is needed
	results := make([]*types.AnalysisResult, len(batch))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range batch {
		if gCtx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = engine.Analyze(types.AnalysisInput{
				JDText:     jdText,
				ResumeText: batch[i].ResumeText,
			})
			log.Debug("candidate analyzed", logger.Fields{
				"candidate_id": batch[i].ID,
				"score":        results[i].Score,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("leaderboard cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("leaderboard cancelled: %w", err)
	}

	entries := make([]types.LeaderboardEntry, len(batch))
	for i, c := range batch {
		entries[i] = newEntry(c, results[i])
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	log.Info("leaderboard ranked", logger.Fields{
		"candidates":  len(entries),
		"concurrency": limit,
	})

	return &types.Leaderboard{Entries: entries}, nil
}

func newEntry(c types.Candidate, result *types.AnalysisResult) types.LeaderboardEntry {
	missing := result.MissingSkills
	if len(missing) > topMissingCount {
		missing = missing[:topMissingCount]
	}
	return types.LeaderboardEntry{
		CandidateID: c.ID,
		Name:        c.Name,
		Score:       result.Score,
		Label:       result.Label,
		ATSScore:    result.ATSScore,
		TopMissing:  append([]string{}, missing...),
		Result:      result,
	}
}

// Lookup finds an entry by candidate ID, falling back to name
func Lookup(lb *types.Leaderboard, key string) (types.LeaderboardEntry, bool) {
	if lb == nil {
		return types.LeaderboardEntry{}, false
	}
	for _, e := range lb.Entries {
		if e.CandidateID == key {
			return e, true
		}
	}
	for _, e := range lb.Entries {
		if e.Name == key {
			return e, true
		}
	}
	return types.LeaderboardEntry{}, false
}
