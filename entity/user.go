package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/c41m07/sf-restaurant/utils"
)

const RoleUser = "ROLE_USER"
const RoleAdmin = "ROLE_ADMIN"

// RoleList est stockée en JSON dans une colonne texte.
type RoleList []string

func (r RoleList) Value() (driver.Value, error) {
	if r == nil {
		r = RoleList{}
	}
	b, err := json.Marshal(r)
	return string(b), err
}

func (r *RoleList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*r = RoleList{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), r)
	case []byte:
		return json.Unmarshal(v, r)
	default:
		return fmt.Errorf("type %T non supporté pour RoleList", value)
	}
}

type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UUID        string     `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"`
	Email       string     `gorm:"type:varchar(180);uniqueIndex;not null" json:"email"`
	Password    string     `json:"-"`
	Roles       RoleList   `gorm:"type:text" json:"roles"`
	ApiToken    string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"-"`
	FirstName   string     `gorm:"type:varchar(255)" json:"first_name"`
	LastName    string     `gorm:"type:varchar(255)" json:"last_name"`
	GuestNumber *int       `json:"guest_number,omitempty"`
	Allergy     *string    `gorm:"type:varchar(255)" json:"allergy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`

	// Côté inverse de restaurant.owner_id (1:1, unique).
	Restaurant   *Restaurant   `gorm:"foreignKey:OwnerID" json:"-"`
	Reservations []Reservation `gorm:"foreignKey:UserID" json:"-"`
}

// NewUser génère le token API à la construction, jamais vide.
func NewUser() *User {
	return &User{
		UUID:     uuid.NewString(),
		ApiToken: utils.NewAPIToken(),
	}
}

// BeforeCreate garantit uuid et apiToken même pour un User construit à la main.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.UUID == "" {
		u.UUID = uuid.NewString()
	}
	if u.ApiToken == "" {
		u.ApiToken = utils.NewAPIToken()
	}
	return nil
}

// GrantedRoles renvoie les rôles assignés plus ROLE_USER, sans doublon.
func (u *User) GrantedRoles() []string {
	roles := []string{}
	seen := map[string]bool{}
	for _, r := range append(append(RoleList{}, u.Roles...), RoleUser) {
		if !seen[r] {
			seen[r] = true
			roles = append(roles, r)
		}
	}
	return roles
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.GrantedRoles() {
		if r == role {
			return true
		}
	}
	return false
}

// UserIdentifier est l'identifiant visuel renvoyé par register/login.
func (u *User) UserIdentifier() string { return u.Email }

// AttachRestaurant synchronise les deux côtés du lien de propriété.
// Détache l'ancien restaurant avant de pointer vers le nouveau.
func (u *User) AttachRestaurant(r *Restaurant) {
	if u.Restaurant == r {
		return
	}
	if prev := u.Restaurant; prev != nil && prev.Owner == u {
		prev.Owner = nil
		prev.OwnerID = 0
	}
	u.Restaurant = r
	if r != nil && r.Owner != u {
		r.AttachOwner(u)
	}
}
