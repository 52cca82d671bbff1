package farm

import "errors"

var (
	// ErrInvalidCredentials is returned for any failed login. It carries no
	// detail about whether the username exists.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotLoggedIn is returned when an operation needs an active session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrPermissionDenied is returned when the logged-in user lacks edit
	// rights for a mutating operation.
	ErrPermissionDenied = errors.New("user cannot edit records")

	// ErrNotFound is returned when a referenced record does not exist in
	// the aggregate.
	ErrNotFound = errors.New("record not found")

	// ErrIllegalTransition is returned when a cage status change is not in
	// the legal transition set.
	ErrIllegalTransition = errors.New("illegal cage status transition")

	// ErrUsernameTaken is returned when registering a username that exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrMasterExists is returned when promoting a second master user.
	ErrMasterExists = errors.New("a master user already exists")

	// ErrInsufficientStock is returned when a feeding would overdraw a
	// feed type's stock.
	ErrInsufficientStock = errors.New("insufficient feed stock")
)
