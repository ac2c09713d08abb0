package models

// User is a registered account as exposed to the presentation layer.
// The password never appears on this type.
type User struct {
	// ID is an opaque unique string generated at signup.
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	// JoinDate is the year the account was created.
	JoinDate int `json:"joinDate"`
}

// Credential is the stored form of a registered user, password included.
// It exists only inside the credential store's persisted user list.
type Credential struct {
	User
	Password string `json:"password"`
}
