package services

import (
	"context"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/applibrary/shared"
	"go.uber.org/fx"
)

const (
	leaderElectionKey = "leaderElection"
	// a leader which did not ping for this long is considered dead
	leaderTimeout = 360 * time.Second
)

type leaderElectionConfig struct {
	LeaderID string `json:"leaderId"`
	LastPing int64  `json:"lastPing"`
}

type databaseLeaderElector struct {
	leaderElectorID string
	configService   shared.ConfigService
	isLeader        atomic.Bool // this variable gets updated by a daemon goroutine. Usage of atomic is required.
	now             func() time.Time
}

var _ shared.LeaderElector = (*databaseLeaderElector)(nil)

func newDatabaseLeaderElector(configService shared.ConfigService) *databaseLeaderElector {
	return &databaseLeaderElector{
		configService: configService,
		// generate a random ID for this leader elector
		leaderElectorID: uuid.New().String(),
		now:             time.Now,
	}
}

// NewDatabaseLeaderElector elects a single instance among all replicas sharing the database.
// The election loop runs while the fx app is running.
func NewDatabaseLeaderElector(lc fx.Lifecycle, configService shared.ConfigService) *databaseLeaderElector {
	leaderElector := newDatabaseLeaderElector(configService)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go leaderElector.daemon(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return leaderElector
}

func randomNumberBetween(min, max int) int {
	return rand.Intn(max-min) + min // #nosec
}

func (e *databaseLeaderElector) daemon(ctx context.Context) {
	for {
		isLeader, err := e.checkIfLeader()
		if err != nil {
			slog.Error("could not check if leader", "err", err)
		}
		e.isLeader.Store(isLeader)

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(randomNumberBetween(60, 180)) * time.Second):
		}
	}
}

func (e *databaseLeaderElector) IsLeader() bool {
	return e.isLeader.Load()
}

func (e *databaseLeaderElector) ping() error {
	return e.configService.SetJSONConfig(leaderElectionKey, leaderElectionConfig{
		LeaderID: e.leaderElectorID,
		LastPing: e.now().Unix(),
	})
}

func (e *databaseLeaderElector) checkIfLeader() (bool, error) {
	var config leaderElectionConfig

	err := e.configService.GetJSONConfig(leaderElectionKey, &config)
	if err != nil {
		slog.Info("could not get leader election config", "err", err)
		// there is no leader yet - take over.
		return true, e.ping()
	}

	if config.LeaderID == e.leaderElectorID {
		// keep the lease alive
		return true, e.ping()
	}

	if e.now().Unix()-config.LastPing > int64(leaderTimeout.Seconds()) {
		// probably the leader died - take over.
		return true, e.ping()
	}

	return false, nil
}
