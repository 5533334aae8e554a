package domain

type User struct {
	ID       string
	Name     string
	RealName string
	Email    string
	Deleted  bool
	IsBot    bool
}

// Identity is the workspace principal behind the current token.
type Identity struct {
	TeamID   string
	TeamName string
	UserID   string
	UserName string
}
