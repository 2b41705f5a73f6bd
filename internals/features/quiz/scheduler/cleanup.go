package scheduler

import (
	"log"
	"time"

	"quizku_backend/internals/configs"
	"quizku_backend/internals/features/quiz/store"
)

// StartSessionCleanupScheduler periodically evicts quiz sessions abandoned
// mid-quiz. Without this the in-memory store grows forever.
func StartSessionCleanupScheduler(sessions *store.SessionStore) {
	go func() {
		ttl := time.Duration(configs.GetEnvInt("QUIZ_SESSION_TTL_MINUTES", 30)) * time.Minute
		interval := time.Duration(configs.GetEnvInt("QUIZ_SESSION_SWEEP_MINUTES", 5)) * time.Minute

		for {
			time.Sleep(interval)

			if removed := sessions.SweepIdle(ttl); removed > 0 {
				log.Printf("[CLEANUP] evicted %d abandoned quiz sessions (idle > %s)", removed, ttl)
			}
		}
	}()
}
