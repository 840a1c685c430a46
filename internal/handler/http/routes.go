package http

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressLevel is the gzip/deflate level used for HTML and text responses.
const compressLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(compressLevel, "text/html", "text/plain", "text/css"))

	h.mountStatic(router)

	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)

		r.Get("/", h.index)
		r.Get("/users/{user_id}", h.purchaseHistory)
		r.Get("/products/{product_id}", h.product)
		r.Post("/products/buy/{product_id}", h.buy)
		r.Post("/comments/{product_id}", h.comment)
	})

	router.Get("/initialize", h.initialize)

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}

// mountStatic serves /css and /images from the public directory when it
// exists.
func (h *Handler) mountStatic(router chi.Router) {
	if h.publicDir == "" {
		return
	}
	if info, err := os.Stat(h.publicDir); err != nil || !info.IsDir() {
		h.logger.Info().Str("public_dir", h.publicDir).Msg("public directory not found, static assets disabled")
		return
	}

	files := http.FileServer(http.Dir(h.publicDir))
	router.Get("/css/*", files.ServeHTTP)
	router.Get("/images/*", files.ServeHTTP)
}
