package user

// Principal identifies the authenticated caller of a request. Session and
// token handling live in the upstream gateway; this service only consumes
// the identity it forwards.
type Principal struct {
	UserID int64
	Admin  bool
}
