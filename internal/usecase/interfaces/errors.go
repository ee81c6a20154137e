package interfaces

import "errors"

var (
	// ErrPairLocked is returned by IRequestRepository.Create when an active
	// request already holds the client/handyman pair lock.
	ErrPairLocked = errors.New("an active request already exists for this pair")
	// ErrPaymentExists is returned by IPaymentRepository.Create when the
	// quotation already has a payment row.
	ErrPaymentExists = errors.New("payment already registered")
)
