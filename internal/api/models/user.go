package models

// User represents a user in the database.
type User struct {
	ID             int64  `db:"id"`
	Username       string `db:"username"`
	Email          string `db:"email"`
	HashedPassword string `db:"hashed_password"`
}

// UserOut is the public representation of a user. It has no password field.
type UserOut struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// ToUserOut maps a stored user onto its public representation.
func ToUserOut(u *User) UserOut {
	return UserOut{ID: u.ID, Username: u.Username}
}

// ToUserOuts maps a list of stored users.
func ToUserOuts(users []User) []UserOut {
	out := make([]UserOut, 0, len(users))
	for i := range users {
		out = append(out, ToUserOut(&users[i]))
	}
	return out
}

// RegisterRequest defines the structure for a user registration request.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=15,nospace"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
}

// LoginRequest carries OAuth2 password-flow credentials. It binds from
// form-encoded bodies and from JSON.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Token is returned by a successful login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Pagination holds the skip/limit query parameters of list endpoints.
type Pagination struct {
	Skip  int `form:"skip" binding:"gte=0"`
	Limit int `form:"limit,default=100" binding:"gte=1,lte=100"`
}
