package domain

// NavItem is one entry of a role's side navigation.
type NavItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
	Icon string `json:"icon"`
}

// Layout is the authenticated shell for a role: who is signed in and where they can go.
type Layout struct {
	Role        UserRole  `json:"role"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	NavItems    []NavItem `json:"navItems"`
}
