package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	CronSecret string
	// AdminToken protects the admin routes when set.
	AdminToken     string
	RequestTimeout time.Duration
	RateLimit      int // requests per minute per IP
	Feed           FeedConfig
}

type FeedConfig struct {
	Title       string
	Link        string
	Description string
	Author      string
	Size        int
}

// Services groups what the handlers delegate to.
type Services struct {
	Articles ArticleService
	Catalog  CatalogService
	Tags     TagService
	Posts    PostService
	Sources  SourceService
	Batch    BatchRunner
}

type Handler struct {
	articles ArticleService
	catalog  CatalogService
	tags     TagService
	posts    PostService
	sources  SourceService
	batch    BatchRunner
	feed     FeedConfig
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandler(svc Services, feed FeedConfig, logger *slog.Logger) *Handler {
	return &Handler{
		articles: svc.Articles,
		catalog:  svc.Catalog,
		tags:     svc.Tags,
		posts:    svc.Posts,
		sources:  svc.Sources,
		batch:    svc.Batch,
		feed:     feed,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.With("component", "http"),
	}
}

func NewRouter(h *Handler, cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger(h.logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", h.health)
	r.Handle("/metrics", promhttp.Handler())
	r.With(httprate.LimitByIP(cfg.RateLimit, time.Minute)).Get("/feed.xml", h.feedXML)

	r.Route("/api", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(cfg.RequestTimeout))

		r.Route("/cron", func(r chi.Router) {
			r.Use(BearerAuth(cfg.CronSecret))
			r.Post("/fetch", h.cronFetch)
			r.Post("/translate", h.cronTranslate)
			r.Post("/generate", h.cronGenerate)
			r.Post("/post", h.cronPost)
		})

		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))
			if cfg.AdminToken != "" {
				r.Use(BearerAuth(cfg.AdminToken))
			}

			r.Route("/articles", func(r chi.Router) {
				r.Get("/", h.listArticles)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.getArticle)
					r.Patch("/", h.updateArticle)
					r.Delete("/", h.deleteArticle)
					r.Post("/translate", h.translateArticle)
					r.Post("/generate", h.generateArticle)
					r.Post("/process", h.processArticle)
					r.Post("/unpublish", h.unpublishArticle)
					r.Post("/skip", h.skipArticle)
					r.Get("/posts", h.listArticlePosts)
					r.Get("/tags", h.listArticleTags)
					r.Put("/tags", h.setArticleTags)
					r.Post("/tags", h.addArticleTag)
					r.Delete("/tags", h.removeArticleTag)
				})
			})

			r.Route("/admin", func(r chi.Router) {
				r.Get("/metadata", h.previewMetadata)
				r.Post("/articles/manual", h.createManual)
				r.Post("/articles/original", h.createOriginal)
				r.Post("/articles/track", h.createTrack)
				r.Post("/articles/scrape", h.createScraped)
			})

			r.Route("/sources/{id}", func(r chi.Router) {
				r.Post("/fetch", h.fetchSource)
				r.Post("/preview", h.previewSource)
				r.Post("/import", h.importSource)
			})

			r.Route("/posts/{id}", func(r chi.Router) {
				r.Get("/", h.getPost)
				r.Patch("/", h.updatePost)
				r.Post("/ready", h.markPostReady)
				r.Post("/post", h.publishPost)
				r.Post("/cancel", h.cancelPost)
			})

			r.Get("/tags", h.listTags)
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
