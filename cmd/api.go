package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/quality-care/careview/internal/aggregate"
	"github.com/quality-care/careview/internal/config"
	"github.com/quality-care/careview/internal/dashboard"
	"github.com/quality-care/careview/internal/model"
)

// buildRouter wires the dashboard API around one build of the dashboard
// state. Static views are served as computed; only the two selection
// endpoints trigger recomputation.
func buildRouter(dash *dashboard.Dashboard, server config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(requestLogger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(throttle(rate.NewLimiter(rate.Limit(server.RatePerSecond), server.RateBurst)))

		api.Get("/summary", handleSummary(dash))
		api.Get("/categories", handleCategories)
		api.Get("/tables/company-counts", handleCompanyCounts(dash))
		api.Get("/tables/review-volume", handleReviewVolume(dash))
		api.Get("/overview/shares", handleShares(dash))
		api.Get("/overview/volume-by-type", handleVolumeByType(dash))
		api.Get("/selections", handleSelections(dash))
		api.Put("/selections/distribution", handleSelectDistribution(dash))
		api.Put("/selections/directory", handleSelectDirectory(dash))
	})

	return r
}

// requestLogger logs one line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		zap.L().Info("request",
			zap.String("component", "api"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// throttle applies a shared token bucket across the API group.
func throttle(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type distributionResponse struct {
	Category model.Category             `json:"category"`
	View     aggregate.TypeDistribution `json:"view"`
}

type directoryResponse struct {
	Category  model.Category         `json:"category"`
	Companies []aggregate.CompanyRef `json:"companies"`
	Empty     bool                   `json:"empty"`
}

type selectionRequest struct {
	Category string `json:"category"`
}

func handleSummary(dash *dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, struct {
			Snapshot string            `json:"snapshot"`
			Summary  aggregate.Summary `json:"summary"`
		}{dash.ID().String(), dash.Summary()})
	}
}

func handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Categories   []model.Category    `json:"categories"`
		CompanyTypes []model.CompanyType `json:"company_types"`
	}{model.Categories, model.CompanyTypes})
}

func handleCompanyCounts(dash *dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, struct {
			Rows aggregate.TotalsTable `json:"rows"`
		}{dash.CompanyCounts()})
	}
}

func handleReviewVolume(dash *dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		rows := dash.ReviewTotals()
		writeJSON(w, http.StatusOK, struct {
			Rows    aggregate.TotalsTable  `json:"rows"`
			Display []aggregate.DisplayRow `json:"display"`
		}{rows, aggregate.DisplayTable(rows)})
	}
}

func handleShares(dash *dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, struct {
			TotalReviews int                       `json:"total_reviews"`
			Shares       []aggregate.CategoryShare `json:"shares"`
		}{dash.Summary().TotalReviews, dash.Shares()})
	}
}

func handleVolumeByType(dash *dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, struct {
			Cells []aggregate.TypeVolume `json:"cells"`
		}{dash.VolumeMatrix()})
	}
}

func handleSelections(dash *dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		distCat, dist := dash.CurrentDistribution()
		dirCat, companies := dash.CurrentDirectory()
		writeJSON(w, http.StatusOK, struct {
			Snapshot     string               `json:"snapshot"`
			Distribution distributionResponse `json:"distribution"`
			Directory    directoryResponse    `json:"directory"`
		}{
			Snapshot:     dash.ID().String(),
			Distribution: distributionResponse{Category: distCat, View: dist},
			Directory:    directoryResponse{Category: dirCat, Companies: companies, Empty: len(companies) == 0},
		})
	}
}

func handleSelectDistribution(dash *dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, ok := decodeSelection(w, r)
		if !ok {
			return
		}
		view, applied := dash.SelectDistribution(category)
		writeJSON(w, http.StatusOK, struct {
			distributionResponse
			Applied bool `json:"applied"`
		}{distributionResponse{Category: category, View: view}, applied})
	}
}

func handleSelectDirectory(dash *dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, ok := decodeSelection(w, r)
		if !ok {
			return
		}
		companies, applied := dash.SelectDirectory(category)
		writeJSON(w, http.StatusOK, struct {
			directoryResponse
			Applied bool `json:"applied"`
		}{directoryResponse{Category: category, Companies: companies, Empty: len(companies) == 0}, applied})
	}
}

// decodeSelection parses a selection request body. A category outside the
// fixed vocabulary is accepted and recomputes to the empty-shaped view; the
// selector UI only offers the fixed eight, so that path is unreachable
// through intended use.
func decodeSelection(w http.ResponseWriter, r *http.Request) (model.Category, bool) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return "", false
	}
	if req.Category == "" {
		writeJSONError(w, http.StatusBadRequest, "category is required")
		return "", false
	}
	return model.Category(req.Category), true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
