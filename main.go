package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"pix-checkout-api/config"
	"pix-checkout-api/diagnostics"
	"pix-checkout-api/handlers"
	"pix-checkout-api/services/payment"
	"pix-checkout-api/services/payment/gestaopay"
)

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		// Registrar apenas requisições lentas ou com erro
		elapsed := time.Since(start)
		if elapsed > 500*time.Millisecond || wrapper.status >= 400 {
			log.Printf(
				"%s %s %s %d %v",
				r.Method,
				r.RequestURI,
				r.RemoteAddr,
				wrapper.status,
				elapsed,
			)
		}
	})
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds | log.LUTC)

	cfg := config.Load()
	log.Printf("Configuration loaded successfully")

	// Cliente do gateway. Chave ausente é erro fatal de configuração:
	// o relay não sobe sem credencial.
	gatewayClient, err := gestaopay.NewClient(cfg.Gateway)
	if err != nil {
		log.Fatalf("Failed to initialize GestaoPay client: %v", err)
	}

	paymentService := payment.NewService(gatewayClient)

	// Recorder de diagnóstico é opcional; sem REDIS_URL o relay roda
	// sem ele.
	var recorder *diagnostics.Recorder
	if cfg.Redis.URL != "" {
		recorder, err = diagnostics.NewRecorder(cfg.Redis.URL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer recorder.Close()
		log.Println("Successfully connected to Redis")
	} else {
		log.Printf("Warning: REDIS_URL not set, diagnostics recording disabled")
	}

	paymentHandler, err := handlers.NewPaymentHandler(paymentService, recorder)
	if err != nil {
		log.Fatalf("Failed to initialize payment handler: %v", err)
	}

	router := mux.NewRouter()
	router.Use(loggingMiddleware)

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/process-payment", paymentHandler.ProcessPayment).Methods("POST", "OPTIONS")

	startTime := time.Now()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		health := struct {
			Status    string `json:"status"`
			Time      string `json:"time"`
			Uptime    string `json:"uptime"`
			GoVersion string `json:"go_version"`
		}{
			Status:    "ok",
			Time:      time.Now().Format(time.RFC3339),
			Uptime:    fmt.Sprintf("%v", time.Since(startTime)),
			GoVersion: runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(health)
	}).Methods("GET")

	// CORS permissivo: o checkout é servido de qualquer origem e o
	// preflight é respondido pelo middleware.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
	}).Handler(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-stop
	log.Println("Shutdown signal received, gracefully shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Drena eventos de diagnóstico pendentes antes de sair
	recorder.Close()

	log.Println("Server exited properly")
}
