package view

import (
	"embed"
	"html/template"
	"strings"

	"MedSyncAI/internal/models"
	"MedSyncAI/internal/pages"
	"MedSyncAI/internal/session"
	"MedSyncAI/internal/shell"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PlaceholderTemplate is rendered while a guarded page waits for the session.
const PlaceholderTemplate = "placeholder.tmpl"

// Data is the single model every template receives.
type Data struct {
	Path     string
	Page     pages.Page
	Layout   *shell.Layout
	Toasts   []session.Toast
	Greeting string
	Genders  []models.Gender
	// InviteRequired shows the invite code field on sign-up.
	InviteRequired bool
	// Form echoes submitted values back after a failed submit (never passwords).
	Form map[string]string
	// Suggestions feed the assistant page.
	Suggestions []string
	Blog        *Blog
}

// Blog is the curated post list for the current reader.
type Blog struct {
	Posts           []pages.Post
	Categories      []string
	Category        string
	Personalization string
}

var funcs = template.FuncMap{
	"lower": strings.ToLower,
	"field": func(form map[string]string, key string) string {
		return form[key]
	},
}

// Templates parses the embedded template set.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
}

func MustTemplates() *template.Template {
	t, err := Templates()
	if err != nil {
		panic(err)
	}
	return t
}
