package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/openroam/traveldiary/internal/diary/domain"
	"github.com/openroam/traveldiary/pkg/httpx"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeValid decodes a JSON body into T and runs struct validation. On
// failure it writes the 400 itself and returns false.
func decodeValid[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if err := validate.Struct(req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, validationMessage(err))
		return req, false
	}
	return req, true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		return fmt.Sprintf("Field '%s' failed validation on '%s'", e.Field(), e.Tag())
	}
	return "Invalid request body"
}

// pageParam reads ?page=N. Anything missing or unparseable falls back to the
// first page rather than erroring.
func pageParam(r *http.Request) domain.Page {
	n, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return domain.Page(1)
	}
	return domain.Page(n).Normalize()
}
