package errors

const (
	UnsupportedActionError  = "Action is not supported for the current status"
	ActionInFlightError     = "Another action is already in progress for this entry"
	InvalidRatingError      = "Rating must be between 1 and 5"
	EmptyReviewError        = "Review text cannot be empty"
	InvalidKickReasonError  = "A valid kick reason is required"
	MissingRefundProofError = "Refund evidence is required to disapprove a booking"

	GenericReservationError = "Error updating reservation"
	GenericBookingError     = "Error updating booking"
	GenericSendError        = "Message could not be sent"
	GenericSubmitError      = "Error submitting form"
)

// ValidationError carries a user-facing message produced before any network
// call is attempted.
type ValidationError struct {
	Message string `json:"message"`
}

func (v *ValidationError) Error() string {
	return v.Message
}

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}
