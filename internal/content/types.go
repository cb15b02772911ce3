package content

// OptionKind is one of the four canonical response styles evaluated in a
// scenario.
type OptionKind string

const (
	KindPassive     OptionKind = "passive"
	KindCNV         OptionKind = "cnv"
	KindNeutral     OptionKind = "neutral"
	KindProblematic OptionKind = "problematic"
)

// AllKinds is the canonical option order. Answer indices 0-3 map into it;
// presentation may shuffle display order but submits canonical indices.
var AllKinds = []OptionKind{KindPassive, KindCNV, KindNeutral, KindProblematic}

// pointsTable is the process-wide scoring constant. Points are never taken
// from provider output, keeping scoring deterministic regardless of
// generation quality.
var pointsTable = map[OptionKind]int{
	KindCNV:         10,
	KindNeutral:     5,
	KindPassive:     3,
	KindProblematic: 0,
}

// PointsFor returns the fixed point value for an option kind.
func PointsFor(kind OptionKind) int {
	return pointsTable[kind]
}

// Valid reports whether k is one of the four canonical kinds.
func (k OptionKind) Valid() bool {
	_, ok := pointsTable[k]
	return ok
}

// Scenario is a single role-play situation with one response option per
// kind. Immutable once constructed.
type Scenario struct {
	Situation string
	Options   map[OptionKind]string
}

// OptionAt returns the kind and text for a canonical option index (0-3).
func (s Scenario) OptionAt(i int) (OptionKind, string) {
	kind := AllKinds[i]
	return kind, s.Options[kind]
}

// FeedbackResult is the two-part feedback for one answered question.
// Points always come from the fixed table, never from provider text.
type FeedbackResult struct {
	Immediate string
	Detailed  string
	Points    int
}

// UserProfile describes the trainee. Immutable once a session starts.
type UserProfile struct {
	// Name is required to start a session.
	Name string

	// KnowsCNV records whether the trainee is familiar with Non-Violent
	// Communication.
	KnowsCNV bool

	// Answers holds prior questionnaire responses, embedded as free-text
	// context in generation prompts.
	Answers []string
}
