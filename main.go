package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	auth "github.com/Thenmitch/pad-foundation-tool/internal/auth"
	pad "github.com/Thenmitch/pad-foundation-tool/internal/calc/pad"
	autodesign "github.com/Thenmitch/pad-foundation-tool/internal/calc/premium/autodesign"
	batch "github.com/Thenmitch/pad-foundation-tool/internal/calc/premium/batch"
	importer "github.com/Thenmitch/pad-foundation-tool/internal/calc/premium/importer"
	recommend "github.com/Thenmitch/pad-foundation-tool/internal/calc/premium/recommend"
	report "github.com/Thenmitch/pad-foundation-tool/internal/calc/report"
	profile "github.com/Thenmitch/pad-foundation-tool/internal/profile"
	repo "github.com/Thenmitch/pad-foundation-tool/internal/repo"
	schedule "github.com/Thenmitch/pad-foundation-tool/internal/schedule"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresRepository(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTKey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}
	scheduleH := &schedule.Handler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")

	padH := &pad.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	recommendH := &recommend.Handler{}
	autoH := &autodesign.Handler{}

	secureApi.HandleFunc("/tools/pad/calc", padH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/pad/assumptions", padH.Assumptions).Methods("GET")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/tools-premium/batch/calc", batchH.Pads).Methods("POST")
	secureApi.HandleFunc("/tools-premium/import/xlsx", importerH.Pads).Methods("POST")
	secureApi.HandleFunc("/tools-premium/recommend/bearing", recommendH.Bearing).Methods("POST")
	secureApi.HandleFunc("/tools-premium/autodesign/pad", autoH.Pad).Methods("POST")

	secureApi.HandleFunc("/schedule/pads", scheduleH.Save).Methods("POST")
	secureApi.HandleFunc("/schedule/pads", scheduleH.List).Methods("GET")
	secureApi.HandleFunc("/schedule/pads/{id:[0-9]+}", scheduleH.Delete).Methods("DELETE")
	secureApi.HandleFunc("/schedule/pads/export", scheduleH.ExportXLSX).Methods("GET")
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":443"
	}
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
