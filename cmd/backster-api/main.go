package main

import (
	"context"
	"log"
	"net/http"

	"github.com/parksandresorts/backster-agent/internal/app/audit"
	"github.com/parksandresorts/backster-agent/internal/app/capabilities"
	"github.com/parksandresorts/backster-agent/internal/app/conversation"
	"github.com/parksandresorts/backster-agent/internal/config"

	httpadapter "github.com/parksandresorts/backster-agent/internal/adapters/http"
	"github.com/parksandresorts/backster-agent/internal/adapters/llm"
	"github.com/parksandresorts/backster-agent/internal/adapters/mail"
	"github.com/parksandresorts/backster-agent/internal/adapters/parkdata"
	"github.com/parksandresorts/backster-agent/internal/adapters/search"
	firestorestore "github.com/parksandresorts/backster-agent/internal/adapters/storage/firestore"
	memstore "github.com/parksandresorts/backster-agent/internal/adapters/storage/memory"
	"github.com/parksandresorts/backster-agent/internal/domain"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// LLM: mock or Vertex by config (useful for dev)
	var (
		llmClient domain.LLMClient
		embedder  domain.Embedder
		err       error
	)

	if cfg.UseMockLLM {
		log.Println("[LLM] Using MOCK LLM client")
		llmClient = llm.NewMockLLM()
	} else {
		log.Println("[LLM] Using Vertex LLM client")
		llmClient, err = llm.NewGeminiClient(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.ModelName)
		if err != nil {
			log.Fatalf("error initializing Vertex LLM client: %v", err)
		}

		embedder, err = llm.NewGenAIEmbedder(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.EmbeddingModel)
		if err != nil {
			log.Fatalf("error initializing embedding client: %v", err)
		}
	}

	// Storage: Firestore or Memory
	var sessionStore domain.SessionStore
	var dispatchLog domain.DispatchLog

	switch cfg.StorageBackend {
	case "firestore":
		log.Printf("[STORE] Using Firestore storage (project=%s)", cfg.GCPProjectID)
		fsStore, err := firestorestore.NewStore(ctx, cfg.GCPProjectID)
		if err != nil {
			log.Fatalf("error initializing Firestore store: %v", err)
		}

		// 1 store, implements 2 interfaces
		sessionStore = fsStore
		dispatchLog = fsStore

	default:
		log.Println("[STORE] Using in-memory storage")
		sessionStore = memstore.NewSessionStore()
		dispatchLog = memstore.NewDispatchLog()
	}

	// External collaborators
	searcher := search.NewAzureClient(cfg.SearchEndpoint, cfg.SearchIndex, cfg.SearchAPIKey, embedder)
	parkData := parkdata.NewClient(cfg.ParkDataBaseURL)
	mailer := audit.NewRecordingSender(mail.NewSendGridSender(cfg.SendGridAPIKey), dispatchLog)

	// Capability registry: fixed at startup, immutable thereafter
	registry := capabilities.NewRegistry(
		capabilities.NewLookupFAQ(searcher),
		capabilities.NewDailyParkData(parkData),
		capabilities.NewResignation(mailer, cfg.OpsEmail),
		capabilities.NewLostBackstagePass(mailer, cfg.OpsEmail),
		capabilities.NewIllnessInsurance(mailer, cfg.OpsEmail),
		capabilities.NewGiveAwayShift(mailer),
		capabilities.NewWorkCertificateRequest(mailer, cfg.OpsEmail),
	)

	// Services
	svc := conversation.NewService(llmClient, registry, sessionStore)
	auditSvc := audit.NewService(dispatchLog)

	// HTTP server
	handler := httpadapter.NewServer(svc, auditSvc, httpadapter.Config{
		BackendKey:     cfg.BackendKey,
		JWTSecret:      []byte(cfg.JWTSecret),
		AllowedReferer: cfg.AllowedReferer,
	})

	port := ":" + cfg.Port
	log.Println("Backster API listening on port:", port)
	if err := http.ListenAndServe(port, handler); err != nil {
		log.Fatal(err)
	}
}
