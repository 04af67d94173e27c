package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/emrekoca/mealweek-server/internal/auth"
	"github.com/emrekoca/mealweek-server/internal/catalog"
	"github.com/emrekoca/mealweek-server/internal/export"
	"github.com/emrekoca/mealweek-server/internal/middleware"
	"github.com/emrekoca/mealweek-server/internal/models"
	"github.com/emrekoca/mealweek-server/internal/planner"
	"github.com/emrekoca/mealweek-server/internal/store"
)

// ExportHandler renders the weekly plan as a downloadable PDF. The
// download endpoint is public but gated by a short-lived signed token,
// because the export link is a plain anchor tag that cannot carry the
// Authorization header.
type ExportHandler struct {
	Store   *store.Store
	Catalog *catalog.Catalog
	Plans   *planner.Manager
	Secret  []byte
}

func NewExportHandler(st *store.Store, cat *catalog.Catalog, plans *planner.Manager, secret []byte) *ExportHandler {
	return &ExportHandler{Store: st, Catalog: cat, Plans: plans, Secret: secret}
}

// Token handles POST /api/export/token.
func (h *ExportHandler) Token(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	token, err := auth.NewDownloadToken(h.Secret, uid)
	if err != nil {
		log.Printf("api: minting download token for %s failed: %v", uid, err)
		http.Error(w, "Failed to create download token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.TokenResponse{Token: token})
}

// Download handles GET /api/export/pdf?token=...
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	uid, err := auth.ParseDownloadToken(h.Secret, r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "Invalid download token", http.StatusUnauthorized)
		return
	}

	if err := h.Catalog.Load(r.Context()); err != nil {
		log.Printf("api: refreshing catalog for export failed: %v", err)
	}
	personal, err := h.Store.UserRecipes(r.Context(), uid)
	if err != nil {
		log.Printf("api: loading personal recipes for %s failed: %v", uid, err)
		personal = []models.Recipe{}
	}

	session := h.Plans.Session(r.Context(), uid)
	lookup := func(mealID string) []models.Recipe {
		return h.Catalog.RecipesForMeal(mealID, personal)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="haftalik-yemek-plani.pdf"`)
	if err := export.RenderPlan(w, session.Plan(), lookup, time.Now()); err != nil {
		// Headers are already out; all we can do is log.
		log.Printf("api: rendering plan PDF for %s failed: %v", uid, err)
	}
}
