/**
* Name: 			page_handler.go
* Description: 		라우트 테이블 기반 페이지 렌더링
* Workflow: 		경로 해석 -> 접근 가드 -> 셸 + 페이지 렌더링
 */
package handler

import (
	"net/http"
	"strings"
	"time"

	"MedSyncAI/internal/assistant"
	"MedSyncAI/internal/auth"
	"MedSyncAI/internal/middleware"
	"MedSyncAI/internal/models"
	"MedSyncAI/internal/pages"
	"MedSyncAI/internal/routes"
	"MedSyncAI/internal/session"
	"MedSyncAI/internal/shell"
	"MedSyncAI/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Cookies middleware.CookieOptions
	// InviteCode, when set, gates the sign-up form.
	InviteCode string
}

// Handler serves pages, forms, the JSON API and the WebSocket endpoints.
type Handler struct {
	table   *routes.Table
	service *auth.Service
	opts    Options
	now     func() time.Time
}

func New(table *routes.Table, service *auth.Service, opts Options) *Handler {
	return &Handler{table: table, service: service, opts: opts, now: time.Now}
}

// Dispatch is installed as the NoRoute handler, so every page request goes
// through the route table.
func (h *Handler) Dispatch(c *gin.Context) {
	path := c.Request.URL.Path
	if strings.HasPrefix(path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	entry := h.table.Resolve(path)
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		entry = h.table.Fallback()
	}

	bc := middleware.Browser(c)
	snap := bc.Store.Current()

	switch middleware.Decide(entry, snap) {
	case middleware.Placeholder:
		c.Header("Cache-Control", "no-store")
		c.Header("Retry-After", "1")
		c.HTML(http.StatusOK, view.PlaceholderTemplate, view.Data{})
	case middleware.Redirect:
		log.Debug().Str("path", path).Msg("Dispatch(): unauthenticated, redirecting to sign-in")
		c.Header("Cache-Control", "no-store")
		c.Redirect(http.StatusFound, routes.SignInPath)
	default:
		h.render(c, http.StatusOK, entry, bc, snap, nil)
	}
}

func (h *Handler) render(c *gin.Context, status int, entry routes.Entry, bc *session.Context, snap session.Snapshot, form map[string]string) {
	page := pages.Lookup(entry.Page)
	if entry.Page == pages.NotFound {
		status = http.StatusNotFound
	}

	data := view.Data{
		Path:   c.Request.URL.Path,
		Page:   page,
		Toasts: bc.DrainToasts(),
		Form:   form,
	}
	if entry.Guarded {
		layout := shell.Build(data.Path, snap.Profile)
		data.Layout = &layout
		c.Header("Cache-Control", "no-store")
	}

	switch page.ID {
	case pages.Dashboard:
		data.Greeting = pages.Greeting(h.now())
	case pages.SignUp:
		data.Genders = models.Genders
		data.InviteRequired = h.opts.InviteCode != ""
	case pages.Assistant:
		data.Suggestions = assistant.Suggestions
	case pages.Blog:
		category := pages.BlogCategory(c.Query("category"))
		data.Page.Description = pages.BlogDescription(snap.Profile)
		data.Blog = &view.Blog{
			Posts:           pages.BlogPosts(snap.Profile, category),
			Categories:      pages.BlogCategories,
			Category:        category,
			Personalization: pages.BlogPersonalization(snap.Profile),
		}
	}

	c.HTML(status, page.Template, data)
}

// renderForm re-renders a public form page after a failed submit.
func (h *Handler) renderForm(c *gin.Context, id pages.ID, err error, form map[string]string) {
	h.renderFormStatus(c, id, statusFor(err), session.UserMessage(err), form)
}

func (h *Handler) renderFormStatus(c *gin.Context, id pages.ID, status int, message string, form map[string]string) {
	bc := middleware.Browser(c)
	bc.PushToast(session.ToastError, message)

	path, _ := h.table.PathOf(id)
	entry := h.table.Resolve(path)
	h.render(c, status, entry, bc, bc.Store.Current(), form)
}
