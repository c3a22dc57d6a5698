package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officialmikal/cbc-edutrac-automation/core/staff"
)

func Test_staffApi_login(t *testing.T) {
	tests := []httpTest{
		{
			name:     "empty body",
			body:     []byte("{}"),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"username": "this field is required"}),
		},
		{
			name:     "unknown username",
			body:     []byte(`{"username": "nobody"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "invalid credentials"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/staff/login", tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("login ok", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/staff/login", []byte(`{"username": "Admin"}`)) // trimmed+lowered
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Token string     `json:"token"`
			User  staff.User `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, adminUsr, resp.User)
	})
}

func Test_staffApi_query(t *testing.T) {
	users, err := staffRepo.QueryAllUsers()
	require.NoError(t, err)

	tests := []httpTest{
		{name: "no token", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "settings is admin-only: teacher", token: getToken(t, teacherUsr), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)},
		{name: "settings is admin-only: accountant", token: getToken(t, accountantUsr), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)},
		{name: "settings is admin-only: head teacher", token: getToken(t, headUsr), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)},
		{name: "admin ok", token: getToken(t, adminUsr), wantCode: http.StatusOK, wantData: marchallObj(t, users)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, "/v1/staff", tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_staffApi_create(t *testing.T) {
	adminToken := getToken(t, adminUsr)

	tests := []httpTest{
		{
			name:     "no token",
			body:     []byte(`{"name": "New Clerk", "username": "clerk", "role": "ACCOUNTANT"}`),
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "teacher cannot manage accounts",
			token:    getToken(t, teacherUsr),
			body:     []byte(`{"name": "New Clerk", "username": "clerk", "role": "ACCOUNTANT"}`),
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, errForbidden),
		},
		{
			name:     "missing fields",
			token:    adminToken,
			body:     []byte("{}"),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"name":     "this field is required",
				"username": "this field is required",
				"role":     "this field is required",
			}),
		},
		{
			name:     "unknown role",
			token:    adminToken,
			body:     []byte(`{"name": "New Clerk", "username": "clerk", "role": "JANITOR"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "duplicate username",
			token:    adminToken,
			body:     []byte(`{"name": "Other Admin", "username": "Admin", "role": "ADMIN"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"username": staff.ErrUsernameExists.Error()}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/staff", tt.token, tt.body)
			app.ServeHTTP(rec, req)
			if tt.wantData == nil {
				assert.Equal(t, tt.wantCode, rec.Code)
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("create ok", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/staff", adminToken,
			[]byte(`{"name": "New Clerk", "username": "Clerk", "role": "ACCOUNTANT"}`))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		var usr staff.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &usr))
		assert.NotEmpty(t, usr.ID)
		assert.Equal(t, "clerk", usr.Username) // lowered
		assert.Equal(t, staff.RoleAccountant, usr.Role)
	})
}

func Test_staffApi_destroy(t *testing.T) {
	adminToken := getToken(t, adminUsr)

	victim, err := staffRepo.CreateUser(staff.User{Name: "Short Timer", Username: "shorttimer", Role: staff.RoleTeacher})
	require.NoError(t, err)

	t.Run("cannot delete own account", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/staff/"+adminUsr.ID, adminToken)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/staff/nope", adminToken)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete ok", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/staff/"+victim.ID, adminToken)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)

		_, err := staffRepo.GetUserByID(victim.ID)
		assert.Equal(t, staff.ErrNotFound, err)
	})
}
