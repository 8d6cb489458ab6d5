package ports

// Messenger delivers a rendered notification to a single user.
type Messenger interface {
	Send(userID int64, html string) error
}
