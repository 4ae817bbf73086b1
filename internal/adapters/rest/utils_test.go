package rest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"classifieds-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat(t *testing.T) {
	cases := []struct {
		raw      string
		expected *float64
	}{
		{"100", ptr(100.0)},
		{"99.5", ptr(99.5)},
		{"0", ptr(0.0)},
		{"-10", ptr(-10.0)},
		// мусорный ввод молча опускается
		{"", nil},
		{"abc", nil},
		{"12abc", nil},
		{"NaN", nil},
		{"Inf", nil},
		{"-Inf", nil},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("value %q", tc.raw), func(t *testing.T) {
			query := url.Values{}
			if tc.raw != "" {
				query.Set("minPrice", tc.raw)
			}
			got := parseFloat(query, "minPrice")
			if tc.expected == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tc.expected, *got)
			}
		})
	}
}

func TestParsePage(t *testing.T) {
	cases := []struct {
		raw      string
		expected int
	}{
		{"", 1},
		{"0", 1},
		{"-3", 1},
		{"abc", 1},
		{"1", 1},
		{"12", 12},
	}

	for _, tc := range cases {
		query := url.Values{}
		if tc.raw != "" {
			query.Set("page", tc.raw)
		}
		assert.Equalf(t, tc.expected, parsePage(query), "page=%q", tc.raw)
	}
}

func TestWriteDomainError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrListingNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrTokenInvalid, http.StatusUnauthorized},
		{domain.ErrUserBanned, http.StatusUnauthorized},
		{domain.ErrEmailInUse, http.StatusConflict},
		{domain.ErrValidation, http.StatusUnprocessableEntity},
		// обернутые ошибки тоже распознаются
		{fmt.Errorf("payload: %w", domain.ErrValidation), http.StatusUnprocessableEntity},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		WriteDomainError(rec, tc.err)

		assert.Equalf(t, tc.status, rec.Code, "err=%v", tc.err)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		assert.Contains(t, rec.Body.String(), "error")
	}
}

func ptr(v float64) *float64 { return &v }
