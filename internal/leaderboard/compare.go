package leaderboard

import "github.com/Aanishnithin07/FitForge/internal/types"

// Compare reports the differences between two entries as a minus b.
// When scores are equal the better-ranked entry leads, and a leads when neither is ranked.
func Compare(a, b types.LeaderboardEntry) types.Comparison {
	da, db := details(a), details(b)

	c := types.Comparison{
		A:               a.Name,
		B:               b.Name,
		ScoreDelta:      a.Score - b.Score,
		SkillDelta:      da.SkillScore - db.SkillScore,
		KeywordDelta:    da.KeywordScore - db.KeywordScore,
		ContextDelta:    da.ContextScore - db.ContextScore,
		ATSDelta:        a.ATSScore - b.ATSScore,
		ExperienceDelta: yearsDelta(a.Result, b.Result),
		OnlyAMatched:    difference(matched(a), matched(b)),
		OnlyBMatched:    difference(matched(b), matched(a)),
	}

	switch {
	case c.ScoreDelta > 0:
		c.Leader = a.Name
	case c.ScoreDelta < 0:
		c.Leader = b.Name
	case b.Rank > 0 && (a.Rank == 0 || b.Rank < a.Rank):
		c.Leader = b.Name
	default:
		c.Leader = a.Name
	}
	return c
}

func details(e types.LeaderboardEntry) types.Details {
	if e.Result == nil || e.Result.Details == nil {
		return types.Details{}
	}
	return *e.Result.Details
}

func matched(e types.LeaderboardEntry) []string {
	if e.Result == nil {
		return nil
	}
	return e.Result.MatchedSkills
}

// yearsDelta is nil unless both candidates stated their years of experience
func yearsDelta(a, b *types.AnalysisResult) *int {
	if a == nil || b == nil || a.Experience == nil || b.Experience == nil {
		return nil
	}
	if a.Experience.Candidate == nil || b.Experience.Candidate == nil {
		return nil
	}
	d := *a.Experience.Candidate - *b.Experience.Candidate
	return &d
}

// difference returns the items of xs not in ys, keeping xs order
func difference(xs, ys []string) []string {
	exclude := make(map[string]struct{}, len(ys))
	for _, y := range ys {
		exclude[y] = struct{}{}
	}
	out := []string{}
	for _, x := range xs {
		if _, ok := exclude[x]; !ok {
			out = append(out, x)
		}
	}
	return out
}
