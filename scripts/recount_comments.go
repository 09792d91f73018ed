// Command recount_comments audits the denormalized comment counters.
//
// articles.comment_count is adjusted incrementally on comment creation
// and deletion; a crash between the two writes can leave it out of sync
// with the comments table. This script reports every drifted article as
// JSON and, with -fix, rewrites the counter from the authoritative count.
//
// Usage:
//
//	DATABASE_URL=postgres://... go run scripts/recount_comments.go [-fix]
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Drift describes one article whose stored counter disagrees with the
// actual number of comments.
type Drift struct {
	ArticleID int64 `json:"article_id"`
	Stored    int64 `json:"stored"`
	Actual    int64 `json:"actual"`
	Fixed     bool  `json:"fixed"`
}

const driftQuery = `
SELECT a.id, a.comment_count, COUNT(c.id)
FROM articles a
LEFT JOIN comments c ON c.article_id = a.id
GROUP BY a.id, a.comment_count
HAVING a.comment_count <> COUNT(c.id)
ORDER BY a.id`

func main() {
	fix := flag.Bool("fix", false, "rewrite drifted counters from the comments table")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	rows, err := db.QueryContext(ctx, driftQuery)
	if err != nil {
		log.Fatalf("query drift: %v", err)
	}
	defer func() { _ = rows.Close() }()

	var drifts []Drift
	for rows.Next() {
		var d Drift
		if err := rows.Scan(&d.ArticleID, &d.Stored, &d.Actual); err != nil {
			log.Fatalf("scan drift row: %v", err)
		}
		drifts = append(drifts, d)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("iterate drift rows: %v", err)
	}

	if *fix {
		for i := range drifts {
			_, err := db.ExecContext(ctx,
				`UPDATE articles SET comment_count = $1 WHERE id = $2`,
				drifts[i].Actual, drifts[i].ArticleID)
			if err != nil {
				log.Printf("fix article %d: %v", drifts[i].ArticleID, err)
				continue
			}
			drifts[i].Fixed = true
		}
	}

	out, err := json.MarshalIndent(map[string]any{
		"checked_at": time.Now().UTC().Format(time.RFC3339),
		"drifted":    len(drifts),
		"articles":   drifts,
	}, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))

	if len(drifts) > 0 && !*fix {
		os.Exit(1)
	}
}
