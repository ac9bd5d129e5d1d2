// Command matchserver exposes a small HTTP API reporting on completed
// matches: POST one in, list and fetch them back. It never drives a match
// itself or exchanges prompts with an agent — live multiplayer is out of
// scope (see SPEC_FULL.md); this only reports on matches run elsewhere
// (typically by cmd/wingspan) and submitted here for aggregation.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aviary-games/wingspan-engine/internal/logging"
)

// MatchReport is the payload a completed match is recorded under.
type MatchReport struct {
	ID          string         `json:"id"`
	MatchID     string         `json:"matchId"`
	Seed        int64          `json:"seed"`
	PlayerIDs   []string       `json:"playerIds"`
	FinalScores map[string]int `json:"finalScores"`
	WinnerID    string         `json:"winnerId"`
	ReceivedAt  time.Time      `json:"receivedAt"`
}

type store struct {
	mu      sync.RWMutex
	reports map[string]MatchReport
}

func newStore() *store {
	return &store{reports: make(map[string]MatchReport)}
}

func (s *store) add(r MatchReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[r.ID] = r
}

func (s *store) list() []MatchReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]MatchReport, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, r)
	}
	return out
}

func (s *store) get(id string) (MatchReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[id]
	return r, ok
}

func main() {
	addr := flag.String("addr", ":8090", "listen address")
	logLevel := flag.String("log-level", "info", "debug, info, warn, or error")
	flag.Parse()

	if err := logging.Init(*logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "init logging:", err)
		os.Exit(1)
	}
	defer logging.Sync()
	logger := logging.Get()

	s := newStore()

	router := gin.Default()
	router.Use(cors.Default())

	router.POST("/matches", func(c *gin.Context) {
		var r MatchReport
		if err := c.ShouldBindJSON(&r); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		r.ID = uuid.NewString()
		r.ReceivedAt = time.Now()
		s.add(r)
		logger.Info("match report received", zap.String("match_id", r.MatchID))
		c.JSON(http.StatusCreated, r)
	})

	router.GET("/matches", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.list())
	})

	router.GET("/matches/:id", func(c *gin.Context) {
		r, ok := s.get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, r)
	})

	logger.Info("matchserver listening", zap.String("addr", *addr))
	if err := router.Run(*addr); err != nil {
		logger.Fatal(err.Error())
	}
}
