package utils

import (
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"net"
	"net/http"
	"strconv"
	"strings"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	page, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPage))
	if err != nil || page <= 0 {
		page = constvars.DefaultPage
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPageSize))
	if err != nil || pageSize <= 0 {
		pageSize = constvars.DefaultPageSize
	}
	if pageSize > constvars.MaxPageSize {
		pageSize = constvars.MaxPageSize
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func BuildQueryUsersRequest(r *http.Request) *requests.QueryUsers {
	return &requests.QueryUsers{
		Role:       strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamRole)),
		Search:     strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamSearch)),
		Pagination: *BuildPaginationRequest(r),
	}
}

func BuildQueryAssessmentsRequest(r *http.Request, studentID string) *requests.QueryAssessments {
	return &requests.QueryAssessments{
		StudentID:       studentID,
		QuestionnaireID: strings.ToLower(strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamQuestionnaireID))),
		Pagination:      *BuildPaginationRequest(r),
	}
}

// GetClientIP prefers proxy headers over the socket address.
func GetClientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constvars.HeaderXForwardedFor); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := r.Header.Get(constvars.HeaderXRealIP); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func ExtractBearerToken(authorizationHeader string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(authorizationHeader, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authorizationHeader, prefix))
}
