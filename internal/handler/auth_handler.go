/**
* Name: 			auth_handler.go
* Description: 		회원가입, 로그인, 로그아웃 폼 처리
* Workflow: 		폼 입력 -> 세션 스토어 -> 토큰 쿠키 -> 리다이렉트
 */
package handler

import (
	"errors"
	"net/http"
	"strings"

	"MedSyncAI/internal/middleware"
	"MedSyncAI/internal/pages"
	"MedSyncAI/internal/routes"
	"MedSyncAI/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SignUpForm handles POST /signup.
func (h *Handler) SignUpForm(c *gin.Context) {
	bc := middleware.Browser(c)

	in := session.SignUpInput{
		Email:           c.PostForm("email"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirm_password"),
		FullName:        c.PostForm("full_name"),
		Gender:          c.PostForm("gender"),
		DateOfBirth:     c.PostForm("date_of_birth"),
	}

	form := map[string]string{
		"email":         in.Email,
		"full_name":     in.FullName,
		"gender":        in.Gender,
		"date_of_birth": in.DateOfBirth,
	}

	if !middleware.InviteCodeValid(c, h.opts.InviteCode) {
		h.renderFormStatus(c, pages.SignUp, http.StatusForbidden, "Invalid invite code", form)
		return
	}

	if _, err := bc.Store.SignUp(c.Request.Context(), in); err != nil {
		h.renderForm(c, pages.SignUp, err, form)
		return
	}

	middleware.PersistToken(c, bc.Store.Token(), h.opts.Cookies)
	bc.PushToast(session.ToastSuccess, "Account created successfully!")
	c.Redirect(http.StatusSeeOther, routes.DashboardPath)
}

// SignInForm handles POST /signin.
func (h *Handler) SignInForm(c *gin.Context) {
	bc := middleware.Browser(c)
	email := strings.TrimSpace(c.PostForm("email"))

	if _, err := bc.Store.SignIn(c.Request.Context(), email, c.PostForm("password")); err != nil {
		h.renderForm(c, pages.SignIn, err, map[string]string{"email": email})
		return
	}

	middleware.PersistToken(c, bc.Store.Token(), h.opts.Cookies)
	bc.PushToast(session.ToastSuccess, "Welcome back!")
	c.Redirect(http.StatusSeeOther, routes.DashboardPath)
}

// SignOut handles POST /signout. It sends the browser back to the page it
// came from and leaves the redirect decision to the access guard.
func (h *Handler) SignOut(c *gin.Context) {
	bc := middleware.Browser(c)
	storeToken := bc.Store.Token()
	bc.Store.SignOut(c.Request.Context())

	// a browsing session still restoring does not know the cookie token yet
	if cookieToken, _ := c.Cookie(middleware.TokenCookie); cookieToken != "" && cookieToken != storeToken {
		if err := h.service.SignOut(c.Request.Context(), cookieToken); err != nil {
			log.Warn().Err(err).Str("sid", bc.ID).Msg("SignOut(): failed to revoke cookie token")
		}
	}
	middleware.PersistToken(c, "", h.opts.Cookies)

	c.Redirect(http.StatusSeeOther, localPath(c.PostForm("from")))
}

// localPath only lets same-site absolute paths through.
func localPath(from string) string {
	if !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.Contains(from, "\\") {
		return "/"
	}
	return from
}

func statusFor(err error) int {
	var (
		validationErr *session.ValidationError
		conflictErr   *session.ConflictError
		authErr       *session.AuthError
		networkErr    *session.NetworkError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &networkErr):
		return http.StatusServiceUnavailable
	case errors.Is(err, session.ErrSuperseded):
		return http.StatusConflict
	}
	log.Error().Err(err).Msg("statusFor(): unclassified error")
	return http.StatusInternalServerError
}
