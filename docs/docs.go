// Package docs registers the swagger document served at /swagger. Keep it in
// sync with the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/auth/signin": {
            "post": {
                "description": "이메일과 비밀번호로 로그인하고 JWT 토큰을 발급받습니다.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "로그인 (Login)",
                "parameters": [
                    {
                        "description": "로그인 요청 정보",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TokenResponse"}},
                    "400": {"description": "잘못된 요청", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "인증 실패 (자격 증명 오류)", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "503": {"description": "백엔드 오류", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/auth/signout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "현재 액세스 토큰을 폐기합니다. (JWT 필요)",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "로그아웃 (Signout)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SuccessResponse"}},
                    "401": {"description": "인증 토큰 누락 또는 만료", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/auth/signup": {
            "post": {
                "description": "새 계정을 만들고 액세스 토큰을 발급합니다.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "회원가입 (Signup)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "초대 코드 (설정된 경우 필수)",
                        "name": "X-Invite-Code",
                        "in": "header"
                    },
                    {
                        "description": "회원가입 요청 정보",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.SignupRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.TokenResponse"}},
                    "400": {"description": "입력값 검증 실패", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "초대 코드 불일치", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "이미 등록된 이메일", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "503": {"description": "백엔드 오류", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "인증된 사용자의 프로필 정보를 조회합니다. (JWT 필요)",
                "produces": ["application/json"],
                "tags": ["API (Protected)"],
                "summary": "프로필 조회 (Profile)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ProfileResponse"}},
                    "401": {"description": "인증 토큰 누락 또는 만료", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "503": {"description": "백엔드 오류", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/routes": {
            "get": {
                "description": "경로별 페이지와 접근 가드 여부를 반환합니다.",
                "produces": ["application/json"],
                "tags": ["Shell"],
                "summary": "라우트 테이블 조회",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.RoutesResponse"}}
                }
            }
        },
        "/api/session": {
            "get": {
                "description": "현재 브라우징 세션의 상태 (loading, authenticated, unauthenticated)를 반환합니다.",
                "produces": ["application/json"],
                "tags": ["Shell"],
                "summary": "브라우저 세션 상태 조회",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/session.Snapshot"}}
                }
            }
        },
        "/ws/assistant": {
            "get": {
                "description": "인증된 브라우징 세션만 연결할 수 있습니다.",
                "tags": ["WebSocket"],
                "summary": "AI 어시스턴트 WebSocket (스크립트 응답)",
                "responses": {
                    "101": {"description": "101 Switching Protocols", "schema": {"type": "string"}},
                    "401": {"description": "로그인 필요", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/ws/session": {
            "get": {
                "description": "브라우징 세션의 상태 변화를 JSON 스냅샷으로 전송합니다.",
                "tags": ["WebSocket"],
                "summary": "세션 상태 WebSocket",
                "responses": {
                    "101": {"description": "101 Switching Protocols", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "invalid email or password"}}
        },
        "handler.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "jane@example.com"},
                "password": {"type": "string", "example": "password123"}
            }
        },
        "handler.ProfileResponse": {
            "type": "object",
            "properties": {
                "profile": {"$ref": "#/definitions/models.Profile"},
                "session": {"$ref": "#/definitions/models.Session"}
            }
        },
        "handler.RoutesResponse": {
            "type": "object",
            "properties": {
                "fallback": {"$ref": "#/definitions/routes.Entry"},
                "routes": {"type": "array", "items": {"$ref": "#/definitions/routes.Entry"}}
            }
        },
        "handler.SignupRequest": {
            "type": "object",
            "properties": {
                "confirm_password": {"type": "string", "example": "password123"},
                "date_of_birth": {"type": "string", "example": "1990-04-02"},
                "email": {"type": "string", "example": "jane@example.com"},
                "full_name": {"type": "string", "example": "Jane Doe"},
                "gender": {"type": "string", "example": "female"},
                "password": {"type": "string", "example": "password123"}
            }
        },
        "handler.SuccessResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "Signed out"}}
        },
        "handler.TokenResponse": {
            "type": "object",
            "properties": {
                "session": {"$ref": "#/definitions/models.Session"},
                "token": {"type": "string", "example": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."}
            }
        },
        "models.Profile": {
            "type": "object",
            "properties": {
                "date_of_birth": {"type": "string"},
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "gender": {"type": "string", "enum": ["male", "female", "non-binary", "prefer-not-to-say"]}
            }
        },
        "models.Session": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "is_authenticated": {"type": "boolean"},
                "user_id": {"type": "string"}
            }
        },
        "routes.Entry": {
            "type": "object",
            "properties": {
                "guarded": {"type": "boolean"},
                "page": {"type": "string"},
                "path": {"type": "string"}
            }
        },
        "session.Snapshot": {
            "type": "object",
            "properties": {
                "profile": {"$ref": "#/definitions/models.Profile"},
                "session": {"$ref": "#/definitions/models.Session"},
                "state": {"type": "string", "enum": ["loading", "authenticated", "unauthenticated"]}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "MedSyncAI API",
	Description:      "MedSyncAI 헬스 대시보드 인증 및 세션 API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
