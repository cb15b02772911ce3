package content

import (
	"fmt"
	"strings"
)

const scenarioSystemPrompt = `You are a corporate communication coach creating role-play training scenarios based on Non-Violent Communication (NVC) principles.

Rules:
- Each scenario describes a realistic, specific workplace situation in the second person ("Your colleague...", "During the sprint review...").
- Each scenario offers exactly four response options, one per style: "passive" (avoids the conflict), "cnv" (observation, feeling, need, request), "neutral" (polite but surface-level), "problematic" (aggressive, blaming, or passive-aggressive).
- Options must be plausible things a real person would say or do, each a single short paragraph.
- Never label the options by style inside their text and never make the best answer obviously longer or more polished than the others.
- Use plain text. No markdown, no asterisks, no double quotes inside texts.
- Vary settings: meetings, code review, deadlines, feedback conversations, cross-team friction.`

const feedbackSystemPrompt = `You are a corporate communication coach reviewing a trainee's chosen response in a role-play scenario based on Non-Violent Communication (NVC).

Rules:
- Produce two parts: "immediate" (one or two encouraging sentences reacting to the choice, addressing the trainee by name) and "detailed" (a short paragraph explaining how the chosen style lands on the other person and what an NVC-aligned response looks like here).
- Be warm and concrete. Refer to the actual situation, not generic advice.
- Use plain text. No markdown, no asterisks, no double quotes inside texts.`

const summarySystemPrompt = `You are a corporate communication coach wrapping up a role-play training session based on Non-Violent Communication (NVC).

Write a narrative closing summary of at most 250 words, addressing the trainee by name: what their answer pattern says about their current communication habits, one strength to keep, and one concrete practice for the coming week. Plain text only, no markdown, no double quotes.`

// buildScenariosMessage embeds the profile as free-text context. The
// profile is advisory prompt material, never structurally validated.
func buildScenariosMessage(profile UserProfile, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate exactly %d scenarios.\n\n", count)
	fmt.Fprintf(&b, "Trainee name: %s\n", profile.Name)
	fmt.Fprintf(&b, "Familiar with NVC: %t\n", profile.KnowsCNV)

	b.WriteString("\nIntake questionnaire answers:\n")
	if len(profile.Answers) == 0 {
		b.WriteString("None")
	} else {
		for i, a := range profile.Answers {
			fmt.Fprintf(&b, "%d. %s\n", i+1, a)
		}
	}

	b.WriteString("\nShape the situations toward contexts the trainee mentioned, when any.")

	return b.String()
}

func buildFeedbackMessage(situation, chosenOption string, kind OptionKind, userName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Trainee name: %s\n", userName)
	fmt.Fprintf(&b, "Situation: %s\n", situation)
	fmt.Fprintf(&b, "Chosen response: %s\n", chosenOption)
	fmt.Fprintf(&b, "Response style: %s\n", kind)

	return b.String()
}

func buildSummaryMessage(userName string, totalScore, totalQuestions int, distribution map[OptionKind]int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Trainee name: %s\n", userName)
	fmt.Fprintf(&b, "Total score: %d of %d possible\n", totalScore, totalQuestions*PointsFor(KindCNV))
	fmt.Fprintf(&b, "Questions answered: %d\n", totalQuestions)

	b.WriteString("\nAnswers by style:\n")
	for _, kind := range AllKinds {
		fmt.Fprintf(&b, "- %s: %d\n", kind, distribution[kind])
	}

	return b.String()
}
