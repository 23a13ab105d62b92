package shell

import "MedSyncAI/internal/models"

type NavItem struct {
	Label string
	Path  string
	Icon  string
}

// NavItems is the sidebar, top to bottom.
var NavItems = []NavItem{
	{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
	{Label: "Blog", Path: "/blog", Icon: "book-open"},
	{Label: "Medications", Path: "/medications", Icon: "pill"},
	{Label: "Conditions", Path: "/conditions", Icon: "stethoscope"},
	{Label: "Activity", Path: "/activity", Icon: "activity"},
	{Label: "Sleep", Path: "/sleep", Icon: "moon"},
	{Label: "Hydration", Path: "/hydration", Icon: "droplets"},
	{Label: "Weight", Path: "/weight", Icon: "scale"},
	{Label: "Vitals", Path: "/vitals", Icon: "heart"},
	{Label: "Cycle", Path: "/cycle", Icon: "calendar"},
	{Label: "Symptoms", Path: "/symptoms", Icon: "file-text"},
	{Label: "Timeline", Path: "/timeline", Icon: "clock"},
	{Label: "AI Assistant", Path: "/assistant", Icon: "sparkles"},
}

type NavLink struct {
	NavItem
	Active bool
}

type ProfileCard struct {
	Name  string
	Email string
}

// Layout is everything the chrome needs to render around a page.
type Layout struct {
	Nav     []NavLink
	Profile *ProfileCard
	// SignOutFrom is posted with the sign-out form so the guard can react
	// to the same path once the session is gone.
	SignOutFrom string
}

// Build derives the chrome for path. The active item comes from the path
// alone.
func Build(path string, profile *models.Profile) Layout {
	layout := Layout{
		Nav:         make([]NavLink, len(NavItems)),
		SignOutFrom: path,
	}
	for i, item := range NavItems {
		layout.Nav[i] = NavLink{NavItem: item, Active: item.Path == path}
	}
	if profile != nil {
		layout.Profile = &ProfileCard{Name: profile.DisplayName(), Email: profile.Email}
	}
	return layout
}

// Active returns the active nav item, if any.
func (l Layout) Active() (NavItem, bool) {
	for _, link := range l.Nav {
		if link.Active {
			return link.NavItem, true
		}
	}
	return NavItem{}, false
}
