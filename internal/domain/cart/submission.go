package cart

import "errors"

// ErrSubmissionInFlight is returned when Begin is called while a previous
// submission has not finished.
var ErrSubmissionInFlight = errors.New("cart: submission already in flight")

// SubmissionState tracks the checkout lifecycle of a cart. It replaces the
// usual ad hoc "is loading" boolean with an enum whose transitions can be
// asserted in tests.
type SubmissionState int

const (
	SubmissionIdle SubmissionState = iota
	SubmissionInFlight
	SubmissionSucceeded
	SubmissionFailed
)

func (s SubmissionState) String() string {
	switch s {
	case SubmissionIdle:
		return "idle"
	case SubmissionInFlight:
		return "submitting"
	case SubmissionSucceeded:
		return "succeeded"
	case SubmissionFailed:
		return "failed"
	}
	return "unknown"
}

// Submission couples a cart with its checkout state. A submission may begin
// only when no other is in flight; failure returns the cart untouched and
// ready for retry; success clears the cart.
type Submission struct {
	cart  *Cart
	state SubmissionState
}

// NewSubmission wraps a cart in an idle submission.
func NewSubmission(c *Cart) *Submission {
	return &Submission{cart: c, state: SubmissionIdle}
}

// State returns the current lifecycle state.
func (s *Submission) State() SubmissionState {
	return s.state
}

// Cart returns the underlying cart.
func (s *Submission) Cart() *Cart {
	return s.cart
}

// Begin moves into the in-flight state. It is rejected while a submission
// is outstanding; a previously failed or succeeded submission may begin again.
func (s *Submission) Begin() error {
	if s.state == SubmissionInFlight {
		return ErrSubmissionInFlight
	}
	s.state = SubmissionInFlight
	return nil
}

// Succeed records a successful checkout and empties the cart.
func (s *Submission) Succeed() {
	s.state = SubmissionSucceeded
	s.cart.Clear()
}

// Fail records a failed checkout. Cart contents are preserved so the same
// submission can be retried.
func (s *Submission) Fail() {
	s.state = SubmissionFailed
}
