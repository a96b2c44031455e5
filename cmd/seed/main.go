package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

type bookPayload struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
	Year   int    `json:"year"`
}

func main() {
	var (
		addr    = flag.String("addr", envOr("SEED_API_URL", "http://localhost:3000"), "Base URL of the catalog API")
		count   = flag.Int("count", 100, "Number of books to create")
		rps     = flag.Float64("rps", 15, "Requests per second, kept below the server's rate limit (0 disables pacing)")
		retries = flag.Int("retries", 5, "Retries per book after a 429 response")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s := newSeeder(&http.Client{Timeout: 5 * time.Second}, *addr, *rps)
	s.maxRetries = *retries
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	log.Printf("Creating %d books at %s...", *count, *addr)
	created, err := s.run(ctx, generateBooks(rng, *count))
	if err != nil {
		log.Fatalf("Seeding stopped after %d books: %v", created, err)
	}
	log.Printf("Successfully created %d books! (%d rate-limited retries)", created, s.retried)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

const defaultRetryAfter = time.Second

// seeder posts books one at a time. Requests are paced by limiter and a 429
// is retried after the server's Retry-After delay.
type seeder struct {
	client     *http.Client
	url        string
	limiter    *rate.Limiter
	maxRetries int

	retried int
}

// newSeeder paces requests at rps with a matching burst. rps <= 0 disables
// pacing.
func newSeeder(client *http.Client, baseURL string, rps float64) *seeder {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), max(1, int(rps)))
	}
	return &seeder{
		client:     client,
		url:        strings.TrimRight(baseURL, "/") + "/api/books",
		limiter:    limiter,
		maxRetries: 5,
	}
}

// run posts every book and returns how many the API accepted.
func (s *seeder) run(ctx context.Context, books []bookPayload) (int, error) {
	created := 0
	for i, b := range books {
		if err := s.post(ctx, b); err != nil {
			return created, fmt.Errorf("post book %d: %w", i+1, err)
		}
		created++

		if created%1000 == 0 {
			log.Printf("Created %d/%d books", created, len(books))
		}
	}
	return created, nil
}

func (s *seeder) post(ctx context.Context, b bookPayload) error {
	body, err := json.Marshal(b)
	if err != nil {
		return err
	}

	for attempt := 0; ; attempt++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			return err
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusCreated:
			return nil
		case resp.StatusCode == http.StatusTooManyRequests && attempt < s.maxRetries:
			s.retried++
			if err := sleep(ctx, retryAfter(resp.Header.Get("Retry-After"))); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unexpected status %s", resp.Status)
		}
	}
}

// retryAfter reads a delay in seconds, falling back to defaultRetryAfter.
func retryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs <= 0 {
		return defaultRetryAfter
	}
	return time.Duration(secs) * time.Second
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func generateBooks(rng *rand.Rand, count int) []bookPayload {
	authors := []string{"Ursula K. Le Guin", "Octavia Butler", "Italo Calvino", "Toni Morrison", "Jorge Luis Borges", "Chinua Achebe", "Virginia Woolf", "Haruki Murakami"}

	out := make([]bookPayload, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, bookPayload{
			Title:  fmt.Sprintf("%s of %s", getRandomWord(rng), getRandomWord(rng)),
			Author: authors[rng.Intn(len(authors))],
			ISBN:   fmt.Sprintf("978%010d", rng.Int63n(1e10)),
			Year:   1950 + rng.Intn(75),
		})
	}
	return out
}

func getRandomWord(rng *rand.Rand) string {
	words := []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
	return words[rng.Intn(len(words))]
}
