package events

const (
	// KindDecisionPrompted identifies the session awaiting a branch choice.
	KindDecisionPrompted Kind = "decision.prompted"
	// KindDecisionResolved identifies a branch being chosen.
	KindDecisionResolved Kind = "decision.resolved"
)

// DecisionPrompted marks the session awaiting a branch choice.
type DecisionPrompted struct {
	Base
	Prompt   string
	Branches []string
}

// NewDecisionPrompted creates a decision prompted event.
func NewDecisionPrompted(prompt string, branches []string) DecisionPrompted {
	return DecisionPrompted{Base: NewBase(KindDecisionPrompted), Prompt: prompt, Branches: branches}
}

// DecisionResolved marks a branch being chosen.
type DecisionResolved struct {
	Base
	BranchID  string
	Narration string
}

// NewDecisionResolved creates a decision resolved event.
func NewDecisionResolved(branchID, narration string) DecisionResolved {
	return DecisionResolved{Base: NewBase(KindDecisionResolved), BranchID: branchID, Narration: narration}
}
