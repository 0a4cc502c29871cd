package pokemon

// Profile is the trainer ID pair needed for the shininess check.
type Profile struct {
	TID uint16
	SID uint16
}

// NewProfile creates a Profile from a trainer ID and secret ID.
func NewProfile(tid, sid uint16) Profile {
	return Profile{TID: tid, SID: sid}
}
