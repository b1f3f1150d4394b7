package models

type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	Email        string   `gorm:"index" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'resident'" json:"role"`
	Apartment    string   `json:"apartment"`
	Phone        string   `json:"phone"`
}

// DisplayName returns the full name, falling back to the username
// when first/last name are not filled in.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}

// IsStaff reports whether the user manages the building.
func (u *User) IsStaff() bool {
	return u.Role == UserRoleSyndic || u.Role == UserRoleSuperAdmin
}
