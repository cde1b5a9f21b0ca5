package models

// Credentials carries a sign-in or sign-up attempt. The password is sent
// to the auth endpoint as-is and never stored locally.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	if c.Username == "" {
		return ErrEmptyUsername
	}
	if c.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}
