package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"interview-insights-go/internal/api"
	"interview-insights-go/internal/logger"
	"interview-insights-go/internal/store"
	"interview-insights-go/internal/types"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "interview-insights-go").Info("starting service")

	interviewPath := envOr("INTERVIEW_DATASET_PATH", "interview_questions.xlsx")
	log.WithField("dataset_path", interviewPath).Info("loading interview questions")
	interviewRecs, err := store.LoadInterviewWorkbook(interviewPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load interview questions")
	}
	log.WithField("interview_questions", len(interviewRecs)).Info("interview questions loaded")

	// a missing secondary dump degrades to an empty collection
	leetcodePath := envOr("LEETCODE_DATASET_PATH", "leetcode_questions.xlsx")
	var leetcodeRecs []types.LeetcodeRecord
	leetcodeRecs, err = store.LoadLeetcodeWorkbook(leetcodePath)
	if err != nil {
		log.WithError(err).WithField("dataset_path", leetcodePath).Warn("leetcode questions unavailable, continuing without secondary source")
		leetcodeRecs = nil
	} else {
		log.WithField("leetcode_questions", len(leetcodeRecs)).Info("leetcode questions loaded")
	}

	server := api.NewServer(
		store.NewMemoryInterviewStore(interviewRecs),
		store.NewMemoryLeetcodeStore(leetcodeRecs),
		log,
	)

	addr := fmt.Sprintf(":%s", envOr("PORT", "8080"))
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
