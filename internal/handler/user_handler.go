/**
* Name: 			user_handler.go
* Description: 		JSON API 핸들러 (토큰 기반)
* Workflow: 		회원가입, 로그인, 로그아웃, 프로필 조회, 라우트/세션 조회
 */
package handler

import (
	"net/http"
	"strings"

	"MedSyncAI/internal/middleware"
	"MedSyncAI/internal/models"
	"MedSyncAI/internal/routes"
	"MedSyncAI/internal/session"

	"github.com/gin-gonic/gin"
)

// /api/auth/signup 요청 바디
type SignupRequest struct {
	Email           string `json:"email" example:"jane@example.com"`
	Password        string `json:"password" example:"password123"`
	ConfirmPassword string `json:"confirm_password" example:"password123"`
	FullName        string `json:"full_name" example:"Jane Doe"`
	Gender          string `json:"gender" example:"female"`
	DateOfBirth     string `json:"date_of_birth,omitempty" example:"1990-04-02"`
}

// /api/auth/signin 요청 바디
type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"password123"`
}

type SuccessResponse struct {
	Message string `json:"message" example:"Signed out"`
}
type ErrorResponse struct {
	Error string `json:"error" example:"invalid email or password"`
}
type TokenResponse struct {
	Token   string         `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Session models.Session `json:"session"`
}

// 프로필 조회 응답
type ProfileResponse struct {
	Session models.Session `json:"session"`
	Profile models.Profile `json:"profile"`
}

// 라우트 테이블 응답
type RoutesResponse struct {
	Routes   []routes.Entry `json:"routes"`
	Fallback routes.Entry   `json:"fallback"`
}

// APISignup godoc
// @Summary      회원가입 (Signup)
// @Description  새 계정을 만들고 액세스 토큰을 발급합니다.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        X-Invite-Code header string false "초대 코드 (설정된 경우 필수)"
// @Param        request body handler.SignupRequest true "회원가입 요청 정보"
// @Success      201 {object} handler.TokenResponse
// @Failure      400 {object} handler.ErrorResponse "입력값 검증 실패"
// @Failure      403 {object} handler.ErrorResponse "초대 코드 불일치"
// @Failure      409 {object} handler.ErrorResponse "이미 등록된 이메일"
// @Failure      503 {object} handler.ErrorResponse "백엔드 오류"
// @Router       /api/auth/signup [post]
func (h *Handler) APISignup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	in := session.SignUpInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FullName:        req.FullName,
		Gender:          req.Gender,
		DateOfBirth:     req.DateOfBirth,
	}
	if err := in.Validate(); err != nil {
		c.JSON(statusFor(err), gin.H{"error": session.UserMessage(err)})
		return
	}

	identity, err := h.service.SignUp(c.Request.Context(), strings.TrimSpace(in.Email), in.Password, session.ProfileFields{
		FullName:    strings.TrimSpace(in.FullName),
		Gender:      models.Gender(in.Gender),
		DateOfBirth: strings.TrimSpace(in.DateOfBirth),
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": session.UserMessage(err)})
		return
	}
	c.JSON(http.StatusCreated, tokenResponse(identity))
}

// APISignin godoc
// @Summary      로그인 (Login)
// @Description  이메일과 비밀번호로 로그인하고 JWT 토큰을 발급받습니다.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "로그인 요청 정보"
// @Success      200 {object} handler.TokenResponse
// @Failure      400 {object} handler.ErrorResponse "잘못된 요청"
// @Failure      401 {object} handler.ErrorResponse "인증 실패 (자격 증명 오류)"
// @Failure      503 {object} handler.ErrorResponse "백엔드 오류"
// @Router       /api/auth/signin [post]
func (h *Handler) APISignin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	identity, err := h.service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": session.UserMessage(err)})
		return
	}
	c.JSON(http.StatusOK, tokenResponse(identity))
}

// APISignout godoc
// @Summary      로그아웃 (Signout)
// @Description  현재 액세스 토큰을 폐기합니다. (JWT 필요)
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.SuccessResponse
// @Failure      401 {object} handler.ErrorResponse "인증 토큰 누락 또는 만료"
// @Router       /api/auth/signout [post]
func (h *Handler) APISignout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.service.SignOut(c.Request.Context(), token); err != nil {
		c.JSON(statusFor(err), gin.H{"error": session.UserMessage(err)})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Signed out"})
}

// Profile godoc
// @Summary      프로필 조회 (Profile)
// @Description  인증된 사용자의 프로필 정보를 조회합니다. (JWT 필요)
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.ProfileResponse
// @Failure      401 {object} handler.ErrorResponse "인증 토큰 누락 또는 만료"
// @Failure      503 {object} handler.ErrorResponse "백엔드 오류"
// @Router       /api/profile [get]
func (h *Handler) Profile(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := h.service.FetchProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": session.UserMessage(err)})
		return
	}
	c.JSON(http.StatusOK, ProfileResponse{
		Session: models.Session{UserID: userID, Email: c.GetString("email"), IsAuthenticated: true},
		Profile: profile,
	})
}

// Routes godoc
// @Summary      라우트 테이블 조회
// @Description  경로별 페이지와 접근 가드 여부를 반환합니다.
// @Tags         Shell
// @Produce      json
// @Success      200 {object} handler.RoutesResponse
// @Router       /api/routes [get]
func (h *Handler) Routes(c *gin.Context) {
	c.JSON(http.StatusOK, RoutesResponse{Routes: h.table.Entries(), Fallback: h.table.Fallback()})
}

// SessionState godoc
// @Summary      브라우저 세션 상태 조회
// @Description  현재 브라우징 세션의 상태 (loading, authenticated, unauthenticated)를 반환합니다.
// @Tags         Shell
// @Produce      json
// @Success      200 {object} session.Snapshot
// @Router       /api/session [get]
func (h *Handler) SessionState(c *gin.Context) {
	bc := middleware.Browser(c)
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, bc.Store.Current())
}

func tokenResponse(identity models.Identity) TokenResponse {
	return TokenResponse{
		Token:   identity.Token,
		Session: models.Session{UserID: identity.UserID, Email: identity.Email, IsAuthenticated: true},
	}
}
