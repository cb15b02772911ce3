package content

import "fmt"

// fallbackScenarios is the fixed, hand-authored scenario set used whenever
// generation is unavailable. Exactly three scenarios, never mutated,
// never randomized: a session must always be able to reach completion
// with zero connectivity.
var fallbackScenarios = []Scenario{
	{
		Situation: "During sprint planning, a colleague dismisses your estimate in front of the team: that task is trivial, two hours at most. You have done similar work before and know it takes at least two days.",
		Options: map[OptionKind]string{
			KindPassive:     "Say nothing and accept the two-hour estimate, planning to work late to absorb the difference.",
			KindCNV:         "When you call my estimate trivial, I feel dismissed, because I need my experience with this code to count. Could we walk through the subtasks together before we commit to a number?",
			KindNeutral:     "Note that estimates vary and suggest the team revisit this one later if it turns out to be off.",
			KindProblematic: "Reply that it is easy to call work trivial when you are not the one doing it, and that maybe they should take the task themselves.",
		},
	},
	{
		Situation: "Your manager emails you at 18:45, for the third time this week, asking for a report first thing tomorrow morning. You had planned the evening with your family.",
		Options: map[OptionKind]string{
			KindPassive:     "Cancel your plans again and send the report before midnight without mentioning anything.",
			KindCNV:         "Reply that when requests arrive after hours you feel torn, because you need predictability to organize family time, and ask whether you can agree on a cut-off hour for same-day requests.",
			KindNeutral:     "Send a short reply saying you will see what you can do and deliver part of the report in the morning.",
			KindProblematic: "Answer that constantly dumping last-minute work on people is disrespectful and that you are done responding after 18:00.",
		},
	},
	{
		Situation: "In a code review, a teammate leaves a one-line comment on your pull request: this whole approach is wrong, rewrite it. There is no further explanation.",
		Options: map[OptionKind]string{
			KindPassive:     "Rewrite everything from scratch without asking what exactly was wrong.",
			KindCNV:         "Comment that reading rewrite it without context leaves you at a loss, because you need to understand the concern to address it, and ask for fifteen minutes to go through it together.",
			KindNeutral:     "Ask in the thread whether they could add a bit more detail when they have time.",
			KindProblematic: "Reply that your approach works fine and that drive-by comments like this one are exactly why reviews take forever on this team.",
		},
	},
}

// FallbackScenarios returns the fixed scenario set. The returned slice is
// a fresh copy so callers cannot corrupt the store.
func FallbackScenarios() []Scenario {
	out := make([]Scenario, len(fallbackScenarios))
	for i, s := range fallbackScenarios {
		options := make(map[OptionKind]string, len(s.Options))
		for k, v := range s.Options {
			options[k] = v
		}
		out[i] = Scenario{Situation: s.Situation, Options: options}
	}
	return out
}

// fallbackImmediate holds the locally synthesized first feedback line per
// kind. %s is the trainee's name.
var fallbackImmediate = map[OptionKind]string{
	KindCNV:         "Excellent choice, %s! That response names what happened, how it felt, and what you need.",
	KindNeutral:     "Reasonable, %s. That keeps the conversation open, though it leaves your need unspoken.",
	KindPassive:     "That avoids the clash, %s, but the cost lands on you.",
	KindProblematic: "Careful, %s. That response attacks the person instead of addressing the need.",
}

var fallbackDetailed = map[OptionKind]string{
	KindCNV:         "Responses built on observation, feeling, need, and request tend to lower defensiveness and invite cooperation. Keep practicing this structure until it feels natural under pressure.",
	KindNeutral:     "Polite, low-risk responses preserve the relationship but rarely resolve the underlying tension. Try adding what you observed and what you need to give the other person something to work with.",
	KindPassive:     "Absorbing the problem quietly protects the moment but builds resentment over time. Naming your need is not a confrontation, it is information the other person is missing.",
	KindProblematic: "Blame and sarcasm usually trigger the same in return and bury the real issue. Start from what you observed, without judgment, then say what you need.",
}

// FallbackFeedback synthesizes feedback locally from the trainee's name
// and the option kind. Points come from the fixed table, so a provider
// fault never blocks scoring.
func FallbackFeedback(userName string, kind OptionKind) FeedbackResult {
	return FeedbackResult{
		Immediate: fmt.Sprintf(fallbackImmediate[kind], userName),
		Detailed:  fallbackDetailed[kind],
		Points:    PointsFor(kind),
	}
}

// FallbackSummary derives a deterministic closing message from the score
// percentage.
func FallbackSummary(userName string, totalScore, totalQuestions int) string {
	maxScore := totalQuestions * PointsFor(KindCNV)
	if maxScore == 0 {
		return fmt.Sprintf("Thanks for training today, %s.", userName)
	}

	pct := totalScore * 100 / maxScore

	switch {
	case pct >= 80:
		return fmt.Sprintf("Outstanding session, %s. You scored %d of %d points: your responses consistently named observations, feelings, and needs. Keep using that structure in your next difficult conversation at work.", userName, totalScore, maxScore)
	case pct >= 50:
		return fmt.Sprintf("Solid session, %s. You scored %d of %d points: you often found constructive responses, with room to make your needs more explicit. This week, try stating one observation and one need before proposing anything.", userName, totalScore, maxScore)
	default:
		return fmt.Sprintf("Thanks for training today, %s. You scored %d of %d points: many of your choices either avoided the tension or escalated it. Pick one real situation this week and practice describing it without judgment before you respond.", userName, totalScore, maxScore)
	}
}
