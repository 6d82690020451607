package remote

// AuthContext carries the signed-in employee's identity and bearer
// credential. The token is opaque to the console and attached to every
// repository call; an expired token surfaces as an AuthError.
type AuthContext struct {
	UserID string
	Role   string
	Token  string
}
