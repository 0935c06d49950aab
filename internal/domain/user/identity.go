package user

// Identity is the verified caller identity produced by the identity-provider
// exchange (or synthesized for bot bookings).
type Identity struct {
	ID            string
	Username      string
	Discriminator string
	Avatar        string
}
