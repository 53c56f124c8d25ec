package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pifah-api/models"
	"pifah-api/services"

	"github.com/gin-gonic/gin"
)

func permissionRequest(t *testing.T, role string, op services.Operation) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if role != "" {
		c.Set("role", role)
	}

	reached := false
	RequirePermission(op)(c)
	if !c.IsAborted() {
		reached = true
	}
	return w, reached
}

func TestRequirePermissionAllowsGrantedRole(t *testing.T) {
	_, reached := permissionRequest(t, models.RoleApprover, services.OpApproveRejectProject)
	if !reached {
		t.Error("approver should pass the approve/reject gate")
	}
}

func TestRequirePermissionRejectsDeniedRole(t *testing.T) {
	w, reached := permissionRequest(t, models.RolePublic, services.OpReviewProject)
	if reached {
		t.Error("public should not pass the review gate")
	}
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestRequirePermissionRejectsMissingRole(t *testing.T) {
	w, reached := permissionRequest(t, "", services.OpSubmitProject)
	if reached {
		t.Error("request without a role should be rejected")
	}
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		role string
		want int
	}{
		{models.RoleAdmin, http.StatusOK},
		{models.RoleApprover, http.StatusForbidden},
		{models.RoleFocalPerson, http.StatusForbidden},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)
		c.Set("role", tc.role)

		RequireAdmin()(c)

		aborted := c.IsAborted()
		if tc.want == http.StatusOK && aborted {
			t.Errorf("role %s should pass the admin gate", tc.role)
		}
		if tc.want == http.StatusForbidden && w.Code != http.StatusForbidden {
			t.Errorf("role %s: status = %d, want %d", tc.role, w.Code, http.StatusForbidden)
		}
	}
}
