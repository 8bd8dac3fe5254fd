package receipt

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the verification state of a payment receipt.
//
//	Pending ──> Verified
//	   │
//	   └──────> Rejected
//
// Verified and Rejected are terminal; only the order's seller moves a
// receipt out of Pending.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status when a buyer attaches a receipt.
	Pending

	// Verified indicates the seller accepted the receipt as proof of payment.
	Verified

	// Rejected indicates the seller refused the receipt.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Pending:  "pending",
		Verified: "verified",
		Rejected: "rejected",
	}
}

// StatusFromString parses a status name such as "verified".
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"receipt status is invalid",
		fmt.Errorf("%q is not a valid receipt status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Pending && s != Verified && s != Rejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"receipt status is invalid",
			fmt.Errorf("%d is not a valid receipt status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
