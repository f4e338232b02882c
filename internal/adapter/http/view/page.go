package view

import (
	"taskboard/internal/app/board"
	"taskboard/internal/app/form"
	"taskboard/internal/app/notice"
	"taskboard/internal/core/domain"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	// SkeletonCards is how many placeholders the fallback shows.
	SkeletonCards = 6
)

func ParseTheme(value string) string {
	if value == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

func ToggleTheme(value string) string {
	if ParseTheme(value) == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type Column struct {
	Status      string
	StatusClass string
	Cards       []Card
}

type Toast struct {
	Level   string
	Title   string
	Message string
}

type UserOption struct {
	ID   string
	Name string
	Role string
}

type FormDialog struct {
	LoadingUsers bool
	Users        []UserOption
	Values       form.Values
	Errors       map[string]string
	Submitting   bool
}

type Page struct {
	Theme            string
	Mode             string
	Search           string
	StatusFilter     string
	Statuses         []string
	ShowStatusFilter bool
	Loaded           bool
	LoadError        string
	Skeleton         []int
	Cards            []Card
	Columns          []Column
	Active           *Card
	Toasts           []Toast
	Form             *FormDialog
}

func (p Page) Kanban() bool {
	return p.Mode == string(board.ViewKanban)
}

// NewPage assembles everything the page template needs. loadError is shown
// with the skeleton when the board never loaded.
func NewPage(p board.Presentation, theme string, toasts []notice.Notification, dialog form.View, loadError string) Page {
	page := Page{
		Theme:            ParseTheme(theme),
		Mode:             string(p.Mode),
		Search:           p.Filter.Search,
		StatusFilter:     board.NormalizeStatusFilter(p.Filter.Status),
		ShowStatusFilter: p.ShowStatusFilter,
		Loaded:           p.Loaded,
		Toasts:           NewToasts(toasts),
	}
	for _, status := range domain.TaskStatuses() {
		page.Statuses = append(page.Statuses, string(status))
	}

	if !p.Loaded {
		page.LoadError = loadError
		page.Skeleton = make([]int, SkeletonCards)
		for i := range page.Skeleton {
			page.Skeleton[i] = i
		}
	}

	switch p.Mode {
	case board.ViewKanban:
		for _, col := range p.Columns {
			page.Columns = append(page.Columns, Column{
				Status:      string(col.Status),
				StatusClass: StatusClass(col.Status),
				Cards:       NewCards(col.Tasks, true),
			})
		}
	default:
		page.Cards = NewCards(p.Tasks, false)
	}

	if p.Active != nil {
		active := NewCard(*p.Active, true)
		page.Active = &active
	}

	if dialog.Open() {
		page.Form = NewFormDialog(dialog)
	}
	return page
}

func NewFormDialog(v form.View) *FormDialog {
	dialog := &FormDialog{
		LoadingUsers: v.LoadingUsers(),
		Values:       v.Values,
		Errors:       v.Errors,
		Submitting:   v.Submitting,
	}
	for _, user := range v.Users {
		dialog.Users = append(dialog.Users, UserOption{ID: user.ID, Name: user.Name, Role: string(user.Role)})
	}
	return dialog
}

func NewToasts(notifications []notice.Notification) []Toast {
	toasts := make([]Toast, 0, len(notifications))
	for _, n := range notifications {
		toasts = append(toasts, Toast{Level: string(n.Level), Title: n.Title, Message: n.Message})
	}
	return toasts
}
