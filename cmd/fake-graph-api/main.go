package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Local stand-in for the Graph API feed endpoint. Point GRAPH_API_BASE at it to
// exercise the relay without touching a real group.
func main() {
	addr := flag.String("addr", ":8081", "listen address")
	failStatus := flag.Int("fail-status", 0, "answer every post with this status instead of 200")
	flag.Parse()

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("app", "fake-graph-api").Logger()
	var posts atomic.Int64

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if r.Method != http.MethodPost || len(parts) < 2 || parts[len(parts)-1] != "feed" {
			http.Error(w, `{"error":{"message":"Unsupported request"}}`, http.StatusBadRequest)
			return
		}
		groupID := parts[len(parts)-2]
		if r.URL.Query().Get("access_token") == "" {
			http.Error(w, `{"error":{"message":"An access token is required"}}`, http.StatusUnauthorized)
			return
		}

		logger.Info().Str("groupId", groupID).Str("message", r.URL.Query().Get("message")).Msg("Feed post received")

		w.Header().Set("Content-Type", "application/json")
		if *failStatus != 0 {
			w.WriteHeader(*failStatus)
			_, _ = fmt.Fprint(w, `{"error":{"message":"Simulated failure"}}`)
			return
		}
		_, _ = fmt.Fprintf(w, `{"id":"%s_%d"}`, groupID, posts.Add(1))
	})

	logger.Info().Str("addr", *addr).Msg("Fake Graph API listening")
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logger.Fatal().Err(err).Msg("Fake Graph API stopped")
	}
}
