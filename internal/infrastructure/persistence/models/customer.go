package models

import (
	"time"

	"github.com/storefront/backend/internal/domain/customer"
)

// CustomerModel is the persistence model for customer accounts
type CustomerModel struct {
	AggregateModel
	Name           string     `gorm:"type:varchar(200);not null"`
	Email          string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	Phone          string     `gorm:"type:varchar(50)"`
	PasswordHash   string     `gorm:"type:varchar(100);not null"`
	Status         string     `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt    *time.Time
	LastLoginIP    string     `gorm:"type:varchar(45)"`
	FailedAttempts int        `gorm:"not null;default:0"`
	LockedUntil    *time.Time
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer
func (m *CustomerModel) ToDomain() *customer.Customer {
	c := &customer.Customer{
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		PasswordHash:   m.PasswordHash,
		Status:         customer.CustomerStatus(m.Status),
		LastLoginAt:    m.LastLoginAt,
		LastLoginIP:    m.LastLoginIP,
		FailedAttempts: m.FailedAttempts,
		LockedUntil:    m.LockedUntil,
	}
	m.PopulateAggregateRoot(&c.BaseAggregateRoot)
	return c
}

// FromDomain populates the persistence model from a domain Customer
func (m *CustomerModel) FromDomain(c *customer.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Email = c.Email
	m.Phone = c.Phone
	m.PasswordHash = c.PasswordHash
	m.Status = string(c.Status)
	m.LastLoginAt = c.LastLoginAt
	m.LastLoginIP = c.LastLoginIP
	m.FailedAttempts = c.FailedAttempts
	m.LockedUntil = c.LockedUntil
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer
func CustomerModelFromDomain(c *customer.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
