package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"profile_backend/internal/feature/profile/transport/http/dto"
	"profile_backend/internal/feature/profile/usecase"
	"profile_backend/internal/platform/http/middleware"
)

var registerTagNames sync.Once

// useJSONFieldNames はバリデーションエラーのフィールド名をJSONキー（st_...）にします。
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindErrorMessage はバインドエラーを "<field>: failed on '<tag>'" の一覧に整形します。
func bindErrorMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fmt.Sprintf("%s: failed on '%s'", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}

// writeError はusecaseのエラーをHTTPステータスに変換します。
// NotFoundは404、検証・制約違反は400、それ以外はfallbackです。
func writeError(c *gin.Context, op string, err error, notFoundMsg string, fallback int) {
	attrs := []any{"op", op, "error", err, middleware.ContextTraceID, c.GetString(middleware.ContextTraceID)}

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		slog.InfoContext(c.Request.Context(), "record not found", attrs...)
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: notFoundMsg})
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, usecase.ErrConstraintViolation):
		slog.WarnContext(c.Request.Context(), "write rejected", attrs...)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), "store operation failed", attrs...)
		msg := err.Error()
		if fallback >= http.StatusInternalServerError {
			// 5xxでは内部エラーの詳細を公開しない
			msg = "internal server error"
		}
		c.JSON(fallback, dto.ErrorResponse{Error: msg})
	}
}
