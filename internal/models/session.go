package models

import "time"

// Session is the stored form of a user session. BackendToken holds ciphertext only.
type Session struct {
	SessionID    string    `json:"sessionID" db:"session_id"`
	UserID       string    `json:"userID" db:"user_id"`
	UserName     string    `json:"userName" db:"user_name"`
	Email        string    `json:"email" db:"email"`
	BackendToken string    `json:"backendToken" db:"backend_token"`
	CompanyID    *string   `json:"companyID,omitempty" db:"company_id"`
	CompanyName  *string   `json:"companyName,omitempty" db:"company_name"`
	CompanyRole  *string   `json:"companyRole,omitempty" db:"company_role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
	ExpiresAt    time.Time `json:"expiresAt" db:"expires_at"`
}

// TableName specifies the table name
func (Session) TableName() string {
	return "sessions"
}
