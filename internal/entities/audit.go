package entities

import "time"

type AuditAction string

const (
	AuditActionUserRegister AuditAction = "user_register"
	AuditActionUserLogin    AuditAction = "user_login"
	AuditActionUserLogout   AuditAction = "user_logout"
	AuditActionSellerLogin  AuditAction = "seller_login"
	AuditActionSellerLogout AuditAction = "seller_logout"
)

type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailed  AuditStatus = "failed"
)

// AuditEvent records one authentication attempt. Subject is a user id,
// the seller email, or the submitted email for failed attempts.
type AuditEvent struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Subject   string      `gorm:"index;size:254" json:"subject"`
	Action    AuditAction `gorm:"index;size:50" json:"action"`
	Channel   string      `gorm:"size:10" json:"channel"`
	IPAddress string      `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent string      `gorm:"size:500" json:"user_agent,omitempty"`
	Status    AuditStatus `gorm:"size:20" json:"status"`
	Reason    string      `gorm:"size:200" json:"reason,omitempty"`
	CreatedAt time.Time   `gorm:"index" json:"created_at"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
