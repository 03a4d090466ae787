package entity

import "time"

// HospitalAccount is the login record for a hospital. Passwords are stored
// as given; see the account service for the comparison rules.
type HospitalAccount struct {
	ID           string    `db:"id"`
	HospitalID   string    `db:"hospital_id"`
	Password     string    `db:"password"`
	HospitalName string    `db:"hospital_name"`
	PhoneNumber  string    `db:"phone_number"`
	CreatedAt    time.Time `db:"created_at"`
}
