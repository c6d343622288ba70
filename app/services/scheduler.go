package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger shortly after midnight (00:05)
			if now.Hour() == 0 && now.Minute() == 5 {
				log.Println("Triggering scheduled tasks [00:05]...")

				// Refresh the holiday-derived columns of the current
				// month's summaries
				if err := RefreshMonthSummaries(db, now); err != nil {
					log.Printf("Error refreshing month summaries: %v", err)
				}
			}
		}
	}()
}
