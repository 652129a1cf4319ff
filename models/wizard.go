package models

// Step is one position in the checkout wizard.
type Step string

// Wizard steps in their fixed order. Confirmation is terminal and sits
// outside the back/forward sequence: it is reached only by a successful
// submission and cannot be navigated away from.
const (
	StepTree         Step = "tree"
	StepStand        Step = "stand"
	StepDelivery     Step = "delivery"
	StepAddons       Step = "addons"
	StepSchedule     Step = "schedule"
	StepContact      Step = "contact"
	StepReview       Step = "review"
	StepConfirmation Step = "confirmation"
)

// StepSequence is the linear navigation order. No skipping and no jumping to
// arbitrary steps.
var StepSequence = []Step{
	StepTree,
	StepStand,
	StepDelivery,
	StepAddons,
	StepSchedule,
	StepContact,
	StepReview,
}

func stepIndex(s Step) int {
	for i, step := range StepSequence {
		if step == s {
			return i
		}
	}
	return -1
}

// NextStep returns the step one position forward, or the current step when
// already at the end of the sequence.
func NextStep(s Step) Step {
	i := stepIndex(s)
	if i < 0 || i >= len(StepSequence)-1 {
		return s
	}
	return StepSequence[i+1]
}

// PrevStep returns the step one position back, or the current step when
// already at the start.
func PrevStep(s Step) Step {
	i := stepIndex(s)
	if i <= 0 {
		return s
	}
	return StepSequence[i-1]
}

// CanAdvance reports whether forward navigation is allowed from step given
// the draft's current contents. Stand, add-on, schedule, and review steps
// never block; the tree step needs at least one tree, delivery needs a
// selected option, and contact needs every required field.
func CanAdvance(step Step, draft OrderDraft) bool {
	switch step {
	case StepTree:
		return len(draft.Trees) > 0
	case StepStand, StepAddons, StepSchedule, StepReview:
		return true
	case StepDelivery:
		return draft.Delivery != nil
	case StepContact:
		return draft.Contact.Complete()
	default:
		return false
	}
}
