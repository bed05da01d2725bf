package repository

// UserRepository is the durable registry of everyone who ever started the
// bot. Inserts are write-through and idempotent; there is no removal.
type UserRepository interface {
	Register(userID int64) error
	All() ([]int64, error)
}
