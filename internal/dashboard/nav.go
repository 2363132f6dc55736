package dashboard

// NavItem is a navigation entry.
type NavItem struct {
	Name    string
	Href    string
	Current bool
}

// User is the signed in user shown in the header.
type User struct {
	Name     string
	Email    string
	ImageURL string
}

// Initials returns the initials of the user's name, used in place of an avatar.
func (u User) Initials() string {
	var out []rune
	start := true
	for _, r := range u.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
		}
		if len(out) == 2 {
			break
		}
	}

	return string(out)
}

// DefaultUser is the user shown when none is configured.
var DefaultUser = User{
	Name:     "Tom Cook",
	Email:    "tom@example.com",
	ImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e",
}

// DefaultNavigation is the primary navigation.
var DefaultNavigation = []NavItem{
	{Name: "Dashboard", Href: "#", Current: true},
	{Name: "Team", Href: "#"},
	{Name: "Projects", Href: "#"},
	{Name: "Calendar", Href: "#"},
	{Name: "Reports", Href: "#"},
}

// DefaultUserNavigation is the user menu navigation.
var DefaultUserNavigation = []NavItem{
	{Name: "Your Profile", Href: "#"},
	{Name: "Settings", Href: "#"},
	{Name: "Sign out", Href: "#"},
}
