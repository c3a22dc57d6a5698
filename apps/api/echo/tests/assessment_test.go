package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/officialmikal/cbc-edutrac-automation/apps/api/echo"
	"github.com/officialmikal/cbc-edutrac-automation/core/assessment"
	"github.com/officialmikal/cbc-edutrac-automation/core/school"
	testutil "github.com/officialmikal/cbc-edutrac-automation/tests"
)

func Test_assessmentApi_upsert(t *testing.T) {
	st := testutil.CreateStudent(t, studentRepo, "Marks Target", "MRK001", school.Grade4)
	teacherToken := getToken(t, teacherUsr)

	tests := []httpTest{
		{
			name:     "no token",
			body:     marchallObj(t, assessment.Entry{StudentID: st.ID, SubjectID: "mat", Score: 45}),
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "marks entry is teachers only",
			token:    getToken(t, headUsr),
			body:     marchallObj(t, assessment.Entry{StudentID: st.ID, SubjectID: "mat", Score: 45}),
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, errForbidden),
		},
		{
			name:     "missing fields",
			token:    teacherToken,
			body:     []byte("{}"),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"studentId": "this field is required",
				"subjectId": "this field is required",
			}),
		},
		{
			name:     "score above range",
			token:    teacherToken,
			body:     []byte(`{"studentId": "` + st.ID + `", "subjectId": "mat", "score": 101}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown student",
			token:    teacherToken,
			body:     []byte(`{"studentId": "nope", "subjectId": "mat", "score": 50}`),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "subject outside catalog",
			token:    teacherToken,
			body:     []byte(`{"studentId": "` + st.ID + `", "subjectId": "mat_jss", "score": 50}`),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPut, "/v1/assessments", tt.token, tt.body)
			app.ServeHTTP(rec, req)
			if tt.wantData == nil {
				assert.Equal(t, tt.wantCode, rec.Code)
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("upsert derives the level", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPut, "/v1/assessments", teacherToken,
			marchallObj(t, assessment.Entry{StudentID: st.ID, SubjectID: "mat", Score: 45}))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var a assessment.Assessment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
		assert.Equal(t, school.LevelApproaching, a.PerformanceLevel)
		assert.Equal(t, st.Term, a.Term)
		assert.Equal(t, st.Year, a.Year)
	})

	t.Run("re-scoring replaces, never duplicates", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPut, "/v1/assessments", teacherToken,
			marchallObj(t, assessment.Entry{StudentID: st.ID, SubjectID: "mat", Score: 82}))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		req, rec = newAuthRequest(http.MethodGet, "/v1/assessments?studentId="+st.ID, teacherToken)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var assessments []assessment.Assessment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assessments))
		require.Len(t, assessments, 1)
		assert.Equal(t, 82, assessments[0].Score)
		assert.Equal(t, school.LevelExceeding, assessments[0].PerformanceLevel)
	})
}

func Test_assessmentApi_query(t *testing.T) {
	st := testutil.CreateStudent(t, studentRepo, "Filter Target", "FLT001", school.Grade4)
	teacherToken := getToken(t, teacherUsr)

	for _, subjID := range []string{"eng", "kis"} {
		req, rec := newAuthRequest(http.MethodPut, "/v1/assessments", teacherToken,
			marchallObj(t, assessment.Entry{StudentID: st.ID, SubjectID: subjID, Score: 60}))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	t.Run("by student", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/assessments?studentId="+st.ID, teacherToken)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var assessments []assessment.Assessment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assessments))
		assert.Len(t, assessments, 2)
	})

	t.Run("by student and subject", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/assessments?studentId="+st.ID+"&subjectId=eng", teacherToken)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var assessments []assessment.Assessment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assessments))
		require.Len(t, assessments, 1)
		assert.Equal(t, "eng", assessments[0].SubjectID)
	})

	t.Run("no matches is an empty list", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/assessments?studentId="+st.ID+"&term=3", teacherToken)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func Test_assessmentApi_generateRemark(t *testing.T) {
	st := testutil.CreateStudent(t, studentRepo, "Single Remark", "SRM001", school.Grade4)
	teacherToken := getToken(t, teacherUsr)

	req, rec := newAuthRequest(http.MethodPut, "/v1/assessments", teacherToken,
		marchallObj(t, assessment.Entry{StudentID: st.ID, SubjectID: "mat", Score: 65}))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := marchallObj(t, echoapi.RemarkRequest{StudentID: st.ID, SubjectID: "mat", Term: st.Term, Year: st.Year})

	t.Run("remark stored", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/assessments/remarks", teacherToken, body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var a assessment.Assessment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
		assert.Equal(t, dummyRemark, a.Remarks)
		assert.Equal(t, 65, a.Score)
	})

	t.Run("unknown assessment", func(t *testing.T) {
		unknown := marchallObj(t, echoapi.RemarkRequest{StudentID: st.ID, SubjectID: "kis", Term: st.Term, Year: st.Year})
		req, rec := newAuthRequest(http.MethodPost, "/v1/assessments/remarks", teacherToken, unknown)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
