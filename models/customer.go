package models

import (
	"time"
)

type CustomerStatus string

const (
	CustomerNew        CustomerStatus = "NEW"
	CustomerActive     CustomerStatus = "ACTIVE"
	CustomerSuspended  CustomerStatus = "SUSPENDED"
	CustomerInactive   CustomerStatus = "INACTIVE"
	CustomerTerminated CustomerStatus = "TERMINATED"
)

// ValidCustomerStatus reports whether s is one of the known lifecycle states.
func ValidCustomerStatus(s CustomerStatus) bool {
	switch s {
	case CustomerNew, CustomerActive, CustomerSuspended, CustomerInactive, CustomerTerminated:
		return true
	}
	return false
}

// Customer is the subscriber record. BillingDay is the day-of-month payments
// are due, always 1-28 so month length never matters. UserID references the
// portal login account and is empty when none was provisioned.
type Customer struct {
	ID               string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CustomerID       string         `json:"customerId" gorm:"uniqueIndex;not null"`
	Name             string         `json:"name"`
	Address          string         `json:"address"`
	Phone            string         `json:"phone"`
	Email            string         `json:"email"`
	PackageName      string         `json:"packageName"`
	JoinDate         time.Time      `json:"joinDate"`
	InstallationDate *time.Time     `json:"installationDate"`
	BillingDay       int            `json:"billingDay"`
	Status           CustomerStatus `json:"status" gorm:"type:varchar(20);default:'NEW'"`
	Notes            string         `json:"notes"`
	UserID           string         `json:"userId"`
	Payments         []Payment      `json:"payments,omitempty" gorm:"foreignKey:CustomerID;references:ID"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// CustomerCreate carries the admin creation form. Dates travel as YYYY-MM-DD
// strings and are parsed at the handler boundary.
type CustomerCreate struct {
	CustomerID       string `json:"customerId" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Address          string `json:"address" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	Email            string `json:"email"`
	PackageName      string `json:"packageName" binding:"required"`
	JoinDate         string `json:"joinDate" binding:"required"`
	InstallationDate string `json:"installationDate"`
	BillingDay       int    `json:"billingDay" binding:"required"`
	Notes            string `json:"notes"`
}

// CustomerUpdate is the admin edit form. Status transitions are free here,
// only the automatic activation on payment confirmation is constrained.
type CustomerUpdate struct {
	Name             string         `json:"name"`
	Address          string         `json:"address"`
	Phone            string         `json:"phone"`
	Email            string         `json:"email"`
	PackageName      string         `json:"packageName"`
	InstallationDate string         `json:"installationDate"`
	BillingDay       int            `json:"billingDay"`
	Status           CustomerStatus `json:"status"`
	Notes            string         `json:"notes"`
}

// CustomerProfileUpdate is the portal self-service form, restricted to
// contact fields.
type CustomerProfileUpdate struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
}
