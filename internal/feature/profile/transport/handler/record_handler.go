// Package handler はprofileフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/samber/lo"

	"profile_backend/internal/feature/profile/domain/entity"
	"profile_backend/internal/feature/profile/transport/http/dto"
	"profile_backend/internal/feature/profile/usecase"
)

const (
	msgCompanyNotFound   = "Company not found"
	msgFundingNotFound   = "Funding valuation not found"
	msgOwnershipNotFound = "Ownership structure not found"
	msgScoringNotFound   = "Parametric scoring not found"
	msgNoCompanies       = "No companies found"
)

// RecordUsecase はprofileレコード操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type RecordUsecase interface {
	ListCompanies(ctx context.Context) ([]entity.Company, error)
	GetCompany(ctx context.Context, id uint) (*entity.Company, error)
	CreateCompany(ctx context.Context, c entity.Company) (uint, error)
	DeleteCompany(ctx context.Context, id uint) error

	ListFundings(ctx context.Context) ([]entity.FundingValuation, error)
	GetFunding(ctx context.Context, id uint) (*entity.FundingValuation, error)
	CreateFunding(ctx context.Context, f entity.FundingValuation) (uint, error)
	DeleteFunding(ctx context.Context, id uint) error

	ListOwnerships(ctx context.Context) ([]entity.OwnershipStructure, error)
	GetOwnership(ctx context.Context, id uint) (*entity.OwnershipStructure, error)
	CreateOwnerships(ctx context.Context, rows []entity.OwnershipStructure) ([]uint, error)
	DeleteOwnership(ctx context.Context, id uint) error

	ListScorings(ctx context.Context) ([]entity.ParametricScoring, error)
	GetScoring(ctx context.Context, id uint) (*entity.ParametricScoring, error)
	CreateScoring(ctx context.Context, s entity.ParametricScoring) (uint, error)
	DeleteScoring(ctx context.Context, id uint) error

	SubmitCombined(ctx context.Context, sub usecase.CombinedSubmission) (uint, error)
	LatestProfile(ctx context.Context) (*entity.CombinedProfile, error)
}

// RecordHandler は4種類のレコードとcombinedエンドポイントのHTTPリクエストを処理します。
type RecordHandler struct {
	svc RecordUsecase
}

// NewRecordHandler はRecordHandlerの新しいインスタンスを生成します。
func NewRecordHandler(svc RecordUsecase) *RecordHandler {
	useJSONFieldNames()
	return &RecordHandler{svc: svc}
}

// --- Company ---

func (h *RecordHandler) ListCompanies(c *gin.Context) {
	listJSON(c, "list companies", h.svc.ListCompanies, dto.NewCompanyResponse)
}

func (h *RecordHandler) GetCompany(c *gin.Context) {
	getJSON(c, "get company", msgCompanyNotFound, h.svc.GetCompany, dto.NewCompanyResponse)
}

func (h *RecordHandler) CreateCompany(c *gin.Context) {
	createOne(c, "create company", "Company created successfully", msgCompanyNotFound, dto.CompanyRequest.ToEntity, h.svc.CreateCompany)
}

func (h *RecordHandler) DeleteCompany(c *gin.Context) {
	deleteByID(c, "delete company", msgCompanyNotFound, h.svc.DeleteCompany)
}

// --- FundingValuation ---

func (h *RecordHandler) ListFundings(c *gin.Context) {
	listJSON(c, "list funding valuations", h.svc.ListFundings, dto.NewFundingResponse)
}

func (h *RecordHandler) GetFunding(c *gin.Context) {
	getJSON(c, "get funding valuation", msgFundingNotFound, h.svc.GetFunding, dto.NewFundingResponse)
}

func (h *RecordHandler) CreateFunding(c *gin.Context) {
	createOne(c, "create funding valuation", "Funding Valuation created successfully", msgFundingNotFound, dto.FundingRequest.ToEntity, h.svc.CreateFunding)
}

func (h *RecordHandler) DeleteFunding(c *gin.Context) {
	deleteByID(c, "delete funding valuation", msgFundingNotFound, h.svc.DeleteFunding)
}

// --- OwnershipStructure ---

func (h *RecordHandler) ListOwnerships(c *gin.Context) {
	listJSON(c, "list ownership structures", h.svc.ListOwnerships, dto.NewOwnershipResponse)
}

func (h *RecordHandler) GetOwnership(c *gin.Context) {
	getJSON(c, "get ownership structure", msgOwnershipNotFound, h.svc.GetOwnership, dto.NewOwnershipResponse)
}

// CreateOwnership は単一オブジェクトまたは配列のボディを受け付け、全件を1トランザクションで作成します。
// 配列の場合、エラーメッセージには要素のインデックスを付与します。
func (h *RecordHandler) CreateOwnership(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	raw := bytes.TrimSpace(body)
	isArray := len(raw) > 0 && raw[0] == '['
	items := []json.RawMessage{raw}
	if isArray {
		// 空配列は0件の作成として201を返す
		if err := json.Unmarshal(raw, &items); err != nil {
			badRequest(c, err.Error())
			return
		}
	}

	rows := make([]entity.OwnershipStructure, 0, len(items))
	for i, item := range items {
		var req dto.OwnershipRequest
		if err := binding.JSON.BindBody(item, &req); err != nil {
			msg := bindErrorMessage(err)
			if isArray {
				msg = fmt.Sprintf("[%d] %s", i, msg)
			}
			slog.Warn("ownership validation failed", "error", err, "remote_addr", c.ClientIP())
			badRequest(c, msg)
			return
		}
		rows = append(rows, req.ToEntity())
	}

	ids, err := h.svc.CreateOwnerships(c.Request.Context(), rows)
	if err != nil {
		writeError(c, "create ownership structure", err, msgOwnershipNotFound, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Ownership structure created successfully", IDs: ids})
}

func (h *RecordHandler) DeleteOwnership(c *gin.Context) {
	deleteByID(c, "delete ownership structure", msgOwnershipNotFound, h.svc.DeleteOwnership)
}

// --- ParametricScoring ---

// ListScorings は各行にconfidence_levelを付与して返します。
func (h *RecordHandler) ListScorings(c *gin.Context) {
	listJSON(c, "list parametric scorings", h.svc.ListScorings, dto.NewScoringListItem)
}

func (h *RecordHandler) GetScoring(c *gin.Context) {
	getJSON(c, "get parametric scoring", msgScoringNotFound, h.svc.GetScoring, dto.NewScoringResponse)
}

func (h *RecordHandler) CreateScoring(c *gin.Context) {
	createOne(c, "create parametric scoring", "Parametric scoring created successfully", msgScoringNotFound, dto.ScoringRequest.ToEntity, h.svc.CreateScoring)
}

func (h *RecordHandler) DeleteScoring(c *gin.Context) {
	deleteByID(c, "delete parametric scoring", msgScoringNotFound, h.svc.DeleteScoring)
}

// --- Combined ---

// SubmitCombined はcompany_overviewと3つの依存セクションを1トランザクションで作成します。
func (h *RecordHandler) SubmitCombined(c *gin.Context) {
	var req dto.CombinedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("combined submission validation failed", "error", err, "remote_addr", c.ClientIP())
		badRequest(c, bindErrorMessage(err))
		return
	}
	id, err := h.svc.SubmitCombined(c.Request.Context(), req.ToSubmission())
	if err != nil {
		writeError(c, "submit combined", err, msgCompanyNotFound, http.StatusBadRequest)
		return
	}
	slog.Info("combined profile submitted", "st_company_id", id)
	c.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Forms submitted successfully", IDs: []uint{id}})
}

// LatestCombined は最新の会社とその依存レコードを返します。
func (h *RecordHandler) LatestCombined(c *gin.Context) {
	p, err := h.svc.LatestProfile(c.Request.Context())
	if err != nil {
		writeError(c, "latest combined", err, msgNoCompanies, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewCombinedResponse(p))
}

// NotImplemented はPUTルートに501を返します。
func NotImplemented(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, dto.ErrorResponse{Error: "update is not supported"})
}

// parseID は :id パラメータを正の整数として解釈します。不正な場合は400を書き込みfalseを返します。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil || id == 0 {
		badRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func listJSON[E, R any](c *gin.Context, op string, fetch func(context.Context) ([]E, error), conv func(E) R) {
	rows, err := fetch(c.Request.Context())
	if err != nil {
		writeError(c, op, err, "", http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, lo.Map(rows, func(e E, _ int) R { return conv(e) }))
}

func getJSON[E, R any](c *gin.Context, op, notFound string, fetch func(context.Context, uint) (*E, error), conv func(E) R) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := fetch(c.Request.Context(), id)
	if err != nil {
		writeError(c, op, err, notFound, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, conv(*e))
}

func createOne[Req, E any](c *gin.Context, op, message, notFound string, toEntity func(Req) E, create func(context.Context, E) (uint, error)) {
	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("request validation failed", "op", op, "error", err, "remote_addr", c.ClientIP())
		badRequest(c, bindErrorMessage(err))
		return
	}
	id, err := create(c.Request.Context(), toEntity(req))
	if err != nil {
		writeError(c, op, err, notFound, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{Message: message, IDs: []uint{id}})
}

func deleteByID(c *gin.Context, op, notFound string, del func(context.Context, uint) error) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := del(c.Request.Context(), id); err != nil {
		writeError(c, op, err, notFound, http.StatusBadRequest)
		return
	}
	c.Status(http.StatusNoContent)
}
