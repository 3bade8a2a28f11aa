package router

import (
	"context"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	profilehandler "profile_backend/internal/feature/profile/transport/handler"
	"profile_backend/internal/platform/http/handler"
	"profile_backend/internal/platform/http/middleware"
	jwtmw "profile_backend/internal/platform/jwt"
	"profile_backend/internal/platform/metrics"
)

// Options はルーター構築時の任意設定です。
type Options struct {
	Logger *slog.Logger
	// Metrics がnilの場合、/metrics とリクエスト計測は登録しない
	Metrics *metrics.HTTPMetrics
	// Ready は /readyz で疎通確認する依存先です。nilなら常にready
	Ready handler.Pinger
	// JWTSecret が空でなければ書き込みルートにJWTを要求する
	JWTSecret string
	// CORSOrigins が空の場合CORSは無効
	CORSOrigins []string
}

// recordRoutes は1種類のレコードに対するハンドラー群です。
type recordRoutes struct {
	path   string
	list   gin.HandlerFunc
	create gin.HandlerFunc
	get    gin.HandlerFunc
	delete gin.HandlerFunc
}

func NewRouter(records *profilehandler.RecordHandler, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.TraceID(), middleware.AccessLog(log))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
	}
	if len(opts.CORSOrigins) > 0 {
		r.Use(newCORS(opts.CORSOrigins))
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	ready := opts.Ready
	if ready == nil {
		ready = handler.PingerFunc(func(context.Context) error { return nil })
	}
	r.GET("/readyz", handler.Readiness(ready))
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	// 読み取りは常に公開、書き込みはJWT_SECRET設定時のみ認証必須
	read := r.Group("/")
	write := r.Group("/")
	if opts.JWTSecret != "" {
		write.Use(jwtmw.AuthRequired(opts.JWTSecret))
	} else {
		log.Warn("JWT_SECRET is not set; write routes are unauthenticated")
	}

	for _, rr := range []recordRoutes{
		{"/companies", records.ListCompanies, records.CreateCompany, records.GetCompany, records.DeleteCompany},
		{"/funding", records.ListFundings, records.CreateFunding, records.GetFunding, records.DeleteFunding},
		{"/ownership", records.ListOwnerships, records.CreateOwnership, records.GetOwnership, records.DeleteOwnership},
		{"/scoring", records.ListScorings, records.CreateScoring, records.GetScoring, records.DeleteScoring},
	} {
		read.GET(rr.path, rr.list)
		read.GET(rr.path+"/:id", rr.get)
		write.POST(rr.path, rr.create)
		write.PUT(rr.path+"/:id", profilehandler.NotImplemented)
		write.DELETE(rr.path+"/:id", rr.delete)
	}

	read.GET("/combined", records.LatestCombined)
	write.POST("/combined", records.SubmitCombined)

	return r
}

func newCORS(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.HeaderTraceID)
	cfg.ExposeHeaders = []string{middleware.HeaderTraceID}
	return cors.New(cfg)
}
