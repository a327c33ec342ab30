//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"turnera/internal/domain/user"
	"turnera/internal/handler/dto/request"
	resdto "turnera/internal/handler/dto/response"
	"turnera/tests/common/authtest"
	"turnera/tests/common/dbtest"
	"turnera/tests/common/httptest"
	"turnera/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.T(), s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "owner@example.com", string(user.RoleEntrepreneur))
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		req            request.RegisterRequest
		expectedStatus int
		description    string
	}{
		{
			name:           "正常な登録",
			req:            request.RegisterRequest{Email: "new@example.com", Username: "new.user", Password: "password123"},
			expectedStatus: http.StatusCreated,
			description:    "新規アカウントが顧客として作成されること",
		},
		{
			name:           "メールアドレス重複",
			req:            request.RegisterRequest{Email: "test@example.com", Username: "other", Password: "password123"},
			expectedStatus: http.StatusConflict,
			description:    "既存のメールアドレスは拒否されること",
		},
		{
			name:           "ユーザー名重複",
			req:            request.RegisterRequest{Email: "other@example.com", Username: "test", Password: "password123"},
			expectedStatus: http.StatusConflict,
			description:    "既存のユーザー名は拒否されること",
		},
		{
			name:           "短いパスワード",
			req:            request.RegisterRequest{Email: "short@example.com", Username: "short", Password: "1234"},
			expectedStatus: http.StatusBadRequest,
			description:    "短いパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, tt.req, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description+": "+w.Body.String())

			if tt.expectedStatus == http.StatusCreated {
				var res resdto.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
				require.NotEmpty(t, res.AccessToken)
				require.Equal(t, string(user.RoleCustomer), res.User.Role)
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "test@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &loginRes)
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.Equal(t, tt.email, loginRes.User.Email)
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("正常なリフレッシュ", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		refreshed := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, httptest.ExtractCookies(w), "")
		require.Equal(t, http.StatusNoContent, refreshed.Code, refreshed.Body.String())

		access := httptest.ExtractCookie(refreshed, "access_token")
		require.NotNil(t, access)
		me := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, access.Value)
		require.Equal(t, http.StatusOK, me.Code)
	})

	s.Run("無効なリフレッシュトークン", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("アクセストークンはリフレッシュに使えない", func() {
		token := authtest.LoginUser(s.T(), s.Router, "test@example.com", "password123")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: token}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("正常なログアウト", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: "password123"}, "")
		require.Equal(s.T(), http.StatusOK, w.Code)

		authtest.LogoutUser(s.T(), s.Router, httptest.ExtractCookies(w))
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupUser      func() (string, string, string) // email, role, token
		expectedStatus int
		description    string
	}{
		{
			name: "顧客ユーザーの情報取得",
			setupUser: func() (string, string, string) {
				email := "customer@example.com"
				role := string(user.RoleCustomer)
				token, _ := authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
				return email, role, token
			},
			expectedStatus: http.StatusOK,
			description:    "顧客ユーザーの情報が取得できること",
		},
		{
			name: "事業者ユーザーの情報取得",
			setupUser: func() (string, string, string) {
				email := "owner2@example.com"
				role := string(user.RoleEntrepreneur)
				token, _ := authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
				return email, role, token
			},
			expectedStatus: http.StatusOK,
			description:    "事業者ユーザーの情報が取得できること",
		},
		{
			name: "無効なトークン",
			setupUser: func() (string, string, string) {
				return "", "", "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "無効なトークンでは情報取得できないこと",
		},
		{
			name: "トークンなし",
			setupUser: func() (string, string, string) {
				return "", "", ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "トークンなしでは情報取得できないこと",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setupUser()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				// レスポンス内容をチェック
				responseBody := w.Body.String()
				require.Contains(t, responseBody, email, "レスポンスにメールアドレスが含まれていない")
				require.Contains(t, responseBody, role, "レスポンスにロールが含まれていない")
				require.NotContains(t, responseBody, "password", "レスポンスにパスワード情報が含まれている")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleCustomer))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code, "期限切れトークンは拒否されるべき")
	})
}

func (s *authSuite) TestRefreshTokenAsBearer() {
	s.Run("リフレッシュトークンはBearerとして使えない", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "bearer@example.com", string(user.RoleCustomer))
		refresh := s.jwtHelper.GenerateRefreshToken(t, userID, user.RoleCustomer)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, refresh)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		access := s.jwtHelper.GenerateToken(t, userID, user.RoleCustomer)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, access)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestUpdateMe() {
	s.Run("パスワード変更後は新しいパスワードでログインできる", func() {
		t := s.T()
		token, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "cambio@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, meURL, map[string]any{
			"firstName":       "Ana",
			"currentPassword": "password123",
			"newPassword":     "otra-clave-456",
		}, token)
		var updated resdto.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.NotNil(t, updated.FirstName)
		require.Equal(t, "Ana", *updated.FirstName)

		require.NotEmpty(t, authtest.LoginUser(t, s.Router, "cambio@example.com", "otra-clave-456"))
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "cambio@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "古いパスワードは使えない")
	})

	s.Run("現在のパスワードが違う", func() {
		t := s.T()
		token, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "cambio@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, meURL, map[string]any{
			"currentPassword": "no-es-esta",
			"newPassword":     "otra-clave-456",
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Current password is incorrect")
	})

	s.Run("他アカウントのメールアドレスは使えない", func() {
		t := s.T()
		token, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "cambio@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, meURL, map[string]any{"email": "test@example.com"}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}
