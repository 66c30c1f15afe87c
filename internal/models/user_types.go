package models

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User roles. Staff accounts work the clinic back office (approving
// appointments, completing pickups); everyone else is a customer.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
)

// User is the model for the 'users' table. Name, contact and address are the
// pickup information snapshotted onto orders at checkout.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Role         string    `json:"role" db:"role"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Contact      string    `json:"contact" db:"contact"`
	Address      string    `json:"address" db:"address"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Password helper wrapping bcrypt.
type Password struct {
	Plaintext *string
	Hash      string
}

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
