package in_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	recordhttp "studytrack/internal/modules/record/adapter/in"
	recordout "studytrack/internal/modules/record/adapter/out"
	"studytrack/internal/modules/record/dto"
	"studytrack/internal/modules/record/service"
	"studytrack/internal/modules/record/usecase"
	"studytrack/internal/platform/clock"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := recordout.NewFileStateStore(filepath.Join(t.TempDir(), "student_data.json"))
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	svc, err := service.NewRecordService(context.Background(), clock.Fixed(now), store, service.WithStudentName("Ada"))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	r := gin.New()
	recordhttp.NewHTTPHandler(usecase.NewInteractor(svc), nil).Register(r)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAssignmentLifecycleOverHTTP(t *testing.T) {
	t.Parallel()
	r := newRouter(t)

	rec := do(r, http.MethodPost, "/api/assignments", `{"title":"Essay","subject":"History","deadline_days":3,"difficulty":"hard"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add status = %d body=%s", rec.Code, rec.Body)
	}
	var added dto.AssignmentResult
	if err := json.Unmarshal(rec.Body.Bytes(), &added); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !added.OK || added.Assignment.ID != 1 || added.Assignment.Difficulty != "Hard" {
		t.Fatalf("unexpected body %+v", added)
	}

	rec = do(r, http.MethodPost, "/api/assignments/1/complete", `{"score":91}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("complete status = %d body=%s", rec.Code, rec.Body)
	}

	rec = do(r, http.MethodPost, "/api/assignments/9/complete", `{"score":91}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing status = %d", rec.Code)
	}
	var missing dto.AssignmentResult
	if err := json.Unmarshal(rec.Body.Bytes(), &missing); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if missing.OK || missing.Reason != dto.ReasonNotFound {
		t.Fatalf("unexpected not found body %+v", missing)
	}

	rec = do(r, http.MethodGet, "/api/assignments", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"Completed"`) {
		t.Fatalf("list = %d %s", rec.Code, rec.Body)
	}
}

func TestInvalidEnumAnswersBadRequest(t *testing.T) {
	t.Parallel()
	r := newRouter(t)
	cases := []struct {
		path string
		body string
	}{
		{"/api/assignments", `{"title":"T","difficulty":"Brutal"}`},
		{"/api/projects", `{"title":"P","status":"Done"}`},
		{"/api/timetable", `{"day":"Funday","time":"09:00"}`},
		{"/api/timetable", `{"day":"Monday","time":"noon"}`},
		{"/api/sessions", `not json`},
	}
	for _, tc := range cases {
		if rec := do(r, http.MethodPost, tc.path, tc.body); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s %s: status = %d", tc.path, tc.body, rec.Code)
		}
	}
	if rec := do(r, http.MethodPost, "/api/assignments/abc/complete", `{"score":1}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id status = %d", rec.Code)
	}
}

func TestDashboardOverHTTP(t *testing.T) {
	t.Parallel()
	r := newRouter(t)
	if rec := do(r, http.MethodPost, "/api/sessions", `{"subject":"Math","duration_hours":2,"topics":"series"}`); rec.Code != http.StatusCreated {
		t.Fatalf("log status = %d", rec.Code)
	}
	if rec := do(r, http.MethodPost, "/api/timetable", `{"day":"monday","time":"09:00","subject":"Math","duration_hours":1}`); rec.Code != http.StatusCreated {
		t.Fatalf("timetable status = %d", rec.Code)
	}

	rec := do(r, http.MethodGet, "/api/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", rec.Code)
	}
	var dash dto.DashboardOutput
	if err := json.Unmarshal(rec.Body.Bytes(), &dash); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dash.StudentName != "Ada" || dash.Analytics.TotalStudyHours != 2 || len(dash.Timetable) != 1 {
		t.Fatalf("unexpected dashboard %+v", dash)
	}

	rec = do(r, http.MethodGet, "/api/timetable?day=Tuesday", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"timetable":[]`) {
		t.Fatalf("filtered timetable = %d %s", rec.Code, rec.Body)
	}
	rec = do(r, http.MethodGet, "/api/suggestions", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "study_more") {
		t.Fatalf("suggestions = %d %s", rec.Code, rec.Body)
	}
}

func TestEncouragementOverHTTP(t *testing.T) {
	t.Parallel()
	r := newRouter(t)
	rec := do(r, http.MethodGet, "/api/encouragement", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("encouragement status = %d", rec.Code)
	}
	var body struct {
		Encouragement string `json:"encouragement"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(body.Encouragement, "Ada") {
		t.Fatalf("encouragement %q does not name the student", body.Encouragement)
	}
}
