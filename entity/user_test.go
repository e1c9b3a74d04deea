package entity

import "testing"

func TestNewUserGeneratesCredentials(t *testing.T) {
	u := NewUser()
	if u.UUID == "" {
		t.Fatal("expected uuid to be set")
	}
	if len(u.ApiToken) != 40 {
		t.Fatalf("expected 40 char api token got %d", len(u.ApiToken))
	}
	if NewUser().ApiToken == u.ApiToken {
		t.Fatal("expected distinct api tokens")
	}
}

func TestGrantedRoles(t *testing.T) {
	u := &User{Roles: RoleList{RoleAdmin, RoleUser, RoleAdmin}}
	roles := u.GrantedRoles()
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles got %v", roles)
	}
	if !u.HasRole(RoleUser) || !u.HasRole(RoleAdmin) {
		t.Fatalf("missing expected role in %v", roles)
	}

	// ROLE_USER est toujours accordé, même sans rôle assigné.
	anon := &User{}
	if !anon.HasRole(RoleUser) {
		t.Fatal("expected implicit ROLE_USER")
	}
	if anon.HasRole(RoleAdmin) {
		t.Fatal("unexpected ROLE_ADMIN")
	}
}

func TestAttachRestaurantSyncsBothSides(t *testing.T) {
	owner := &User{ID: 1}
	restaurant := &Restaurant{ID: 10}

	owner.AttachRestaurant(restaurant)
	if restaurant.Owner != owner || restaurant.OwnerID != owner.ID {
		t.Fatal("expected restaurant side to point back at owner")
	}
	if owner.Restaurant != restaurant {
		t.Fatal("expected owner side to point at restaurant")
	}

	// Changer de restaurant détache l'ancien.
	other := &Restaurant{ID: 11}
	owner.AttachRestaurant(other)
	if restaurant.Owner != nil || restaurant.OwnerID != 0 {
		t.Fatal("expected previous restaurant to be detached")
	}
	if other.Owner != owner || owner.Restaurant != other {
		t.Fatal("expected new restaurant to be attached on both sides")
	}
}

func TestAttachOwnerSyncsBothSides(t *testing.T) {
	first := &User{ID: 1}
	second := &User{ID: 2}
	restaurant := &Restaurant{ID: 10}

	restaurant.AttachOwner(first)
	if first.Restaurant != restaurant || restaurant.OwnerID != 1 {
		t.Fatal("expected first owner attached")
	}

	restaurant.AttachOwner(second)
	if first.Restaurant != nil {
		t.Fatal("expected first owner detached")
	}
	if second.Restaurant != restaurant || restaurant.OwnerID != 2 {
		t.Fatal("expected second owner attached")
	}
}
