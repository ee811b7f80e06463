// Package app wires the repositories and the planning engine into the
// operations exposed by the HTTP API and the Telegram bot.
package app

import (
	"errors"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"kondate/internal/database"
	"kondate/internal/favorites"
	"kondate/internal/history"
	"kondate/internal/household"
	"kondate/internal/inventory"
	"kondate/internal/metrics"
	"kondate/internal/planner"
	"kondate/internal/shopping"
)

// ErrNotFound is returned when the requested entity does not exist.
var ErrNotFound = errors.New("not found")

const dateLayout = "2006-01-02"

// App holds the application's dependencies.
type App struct {
	households *household.Repository
	plans      *planner.PlanRepository
	inventory  *inventory.Repository
	favorites  *favorites.Repository
	history    *history.Repository
	checks     *shopping.CheckRepository
	cache      *shopping.Cache
	metrics    *metrics.Store
	logger     *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// New creates an App over the shared database connection. cache may be nil.
func New(db *database.DB, cache *shopping.Cache, logger *zap.Logger) *App {
	return &App{
		households: household.NewRepository(db.SQL),
		plans:      planner.NewPlanRepository(db.SQL),
		inventory:  inventory.NewRepository(db.SQL),
		favorites:  favorites.NewRepository(db.SQL),
		history:    history.NewRepository(db.SQL),
		checks:     shopping.NewCheckRepository(db.SQL),
		cache:      cache,
		metrics:    metrics.NewStore(db.SQL),
		logger:     logger,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		now:        time.Now,
	}
}

// familySize parses the stored household size, defaulting to 2.
func familySize(s *household.Settings) int {
	if s == nil {
		return 2
	}
	n, err := strconv.Atoi(s.FamilySize)
	if err != nil {
		return 2
	}
	return n
}

// effectiveMembers returns the roster, or a synthetic member carrying the
// household-level likes/dislikes when no individual members exist.
func effectiveMembers(members []household.FamilyMember, s *household.Settings) []household.FamilyMember {
	if len(members) > 0 || s == nil {
		return members
	}
	if s.Likes == "" && s.Dislikes == "" {
		return nil
	}
	return []household.FamilyMember{{Likes: s.Likes, Dislikes: s.Dislikes}}
}
